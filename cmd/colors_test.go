package cmd

import (
	"testing"

	"github.com/fatih/color"

	"github.com/StephanGoldberg/startup-launch-checker/internal/checklist"
)

func TestColorVerdict(t *testing.T) {
	original := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		color.NoColor = original
	})

	tests := []struct {
		name    string
		verdict checklist.Verdict
		want    string
	}{
		{name: "ready", verdict: checklist.VerdictReady, want: "LAUNCH READY"},
		{name: "almost", verdict: checklist.VerdictAlmost, want: "ALMOST READY"},
		{name: "not ready", verdict: checklist.VerdictNotReady, want: "NOT READY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorVerdict(tt.verdict); got != tt.want {
				t.Fatalf("colorVerdict(%q) = %q, want %q", tt.verdict, got, tt.want)
			}
		})
	}
}
