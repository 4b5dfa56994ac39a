package main

import "testing"

func TestNeedsStore(t *testing.T) {
	tests := []struct {
		command string
		want    bool
	}{
		{"init", false},
		{"keyring set <connection-string>", false},
		{"keyring status", false},
		{"write <text>", true},
		{"tui", true},
		{"premium status", true},
		{"backup restore <backup-file>", true},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			if got := needsStore(tt.command); got != tt.want {
				t.Errorf("needsStore(%q) = %v, want %v", tt.command, got, tt.want)
			}
		})
	}
}
