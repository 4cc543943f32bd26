package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestCurrentReflectsOverrides(t *testing.T) {
	orig := Current()
	t.Cleanup(func() {
		Version, GitCommit, GitMessage, BuildDate = orig.Version, orig.GitCommit, orig.GitMessage, orig.BuildDate
	})

	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	info := Current()
	if info.Version != "1.2.3" || info.GitCommit != "abc123def456" || info.BuildDate != "2024-01-15T10:30:00Z" {
		t.Fatalf("Current() = %+v", info)
	}
	if info.GitMessage != "" {
		t.Fatalf("GitMessage = %q, want empty", info.GitMessage)
	}
}

func TestColoredPlain(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	tests := []struct{ in, want string }{
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.2.3", "1.2.3"},
		{"1.0.0-beta.1", "1.0.0-beta.1"},
		{"nightly", "nightly"},
		{"1.2", "1.2"},
	}
	for _, tt := range tests {
		if got := Colored(tt.in); got != tt.want {
			t.Errorf("Colored(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestColoredWithColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	got := Colored("1.2.3")
	if got == "1.2.3" {
		t.Fatal("expected escape sequences in coloured version")
	}
}
