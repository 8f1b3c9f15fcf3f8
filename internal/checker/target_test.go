package checker

import "testing"

func TestNormalizeTarget(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		domain string
	}{
		{"bare domain", "mystartup.com", "mystartup.com"},
		{"https scheme stripped", "https://mystartup.com", "mystartup.com"},
		{"http scheme stripped", "http://mystartup.com", "mystartup.com"},
		{"trailing slash trimmed", "mystartup.com/", "mystartup.com"},
		{"scheme and slash", "https://mystartup.com/", "mystartup.com"},
		{"surrounding whitespace", "  mystartup.com ", "mystartup.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NormalizeTarget(tt.input)

			if info.Domain != tt.domain {
				t.Errorf("Domain: expected %q, got %q", tt.domain, info.Domain)
			}
			if info.BaseURL != "https://"+tt.domain {
				t.Errorf("BaseURL: expected %q, got %q", "https://"+tt.domain, info.BaseURL)
			}
			if info.Original != tt.input {
				t.Errorf("Original: expected %q, got %q", tt.input, info.Original)
			}
		})
	}
}

func TestEnsureScheme(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"mystartup.com", "https://mystartup.com"},
		{"https://mystartup.com", "https://mystartup.com"},
		{"http://127.0.0.1:8080", "http://127.0.0.1:8080"},
	}

	for _, tt := range tests {
		if got := EnsureScheme(tt.input); got != tt.expected {
			t.Errorf("EnsureScheme(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}

func TestStartupName(t *testing.T) {
	if got := StartupName("mystartup.com"); got != "mystartup" {
		t.Errorf("expected 'mystartup', got %q", got)
	}
	if got := StartupName("app.mystartup.io"); got != "app" {
		t.Errorf("expected 'app', got %q", got)
	}
	if got := StartupName("localhost"); got != "localhost" {
		t.Errorf("expected 'localhost', got %q", got)
	}
}
