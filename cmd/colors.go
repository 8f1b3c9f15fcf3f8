package cmd

import (
	"github.com/fatih/color"

	"github.com/StephanGoldberg/startup-launch-checker/internal/checklist"
)

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
)

func colorVerdict(v checklist.Verdict) string {
	switch v {
	case checklist.VerdictReady:
		return colorSuccess(string(v))
	case checklist.VerdictAlmost:
		return colorWarn(string(v))
	default:
		return colorError(string(v))
	}
}
