package models

import "testing"

func TestLaunchMode_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode LaunchMode
		want bool
	}{
		{LaunchTerminal, true},
		{LaunchTmux, true},
		{"", false},
		{"screen", false},
	}
	for _, tt := range tests {
		if got := tt.mode.IsValid(); got != tt.want {
			t.Errorf("LaunchMode(%q).IsValid() = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

func TestValidLaunchModes(t *testing.T) {
	t.Parallel()

	for _, m := range ValidLaunchModes() {
		if !m.IsValid() {
			t.Errorf("ValidLaunchModes() returned invalid mode %q", m)
		}
	}
}

func TestUsageSnapshot(t *testing.T) {
	t.Parallel()

	var zero UsageSnapshot
	if !zero.IsZero() {
		t.Error("zero snapshot should report IsZero")
	}

	s := UsageSnapshot{Input: 120, Output: 55, Sessions: 2}
	if s.IsZero() {
		t.Error("non-zero snapshot should not report IsZero")
	}
	if s.Total() != 175 {
		t.Errorf("Total() = %d, want 175", s.Total())
	}
}
