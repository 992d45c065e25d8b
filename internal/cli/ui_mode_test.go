package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestResolveUIMode(t *testing.T) {
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })

	tests := []struct {
		name        string
		mode        string
		tty         bool
		interactive bool
		warning     bool
		wantErr     bool
	}{
		{name: "auto on tty", mode: "auto", tty: true, interactive: true},
		{name: "auto off tty", mode: "", tty: false, interactive: false},
		{name: "tui on tty", mode: "TUI", tty: true, interactive: true},
		{name: "tui off tty", mode: "tui", tty: false, interactive: false, warning: true},
		{name: "plain", mode: "plain", tty: true, interactive: false},
		{name: "invalid", mode: "web", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			isTerminal = func(any) bool { return tc.tty }

			decision, err := ResolveUIMode(tc.mode, strings.NewReader(""), &bytes.Buffer{})
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for mode %q", tc.mode)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveUIMode() error = %v", err)
			}
			if decision.Interactive != tc.interactive {
				t.Fatalf("Interactive = %v, want %v", decision.Interactive, tc.interactive)
			}
			if (decision.Warning != "") != tc.warning {
				t.Fatalf("Warning = %q, want warning=%v", decision.Warning, tc.warning)
			}
		})
	}
}

func TestDefaultIsTerminalOnBuffer(t *testing.T) {
	if defaultIsTerminal(&bytes.Buffer{}) {
		t.Fatalf("a buffer is never a terminal")
	}
	if defaultIsTerminal(nil) {
		t.Fatalf("nil is never a terminal")
	}
}
