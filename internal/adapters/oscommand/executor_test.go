package oscommand

import (
	"context"
	"strings"
	"testing"
)

func TestShellPath(t *testing.T) {
	tests := []struct {
		name      string
		shellEnv  string
		shellName string
		want      string
	}{
		{"SHELL wins", "/usr/local/bin/fish", "bash", "/usr/local/bin/fish"},
		{"bash fallback", "", "bash", "/bin/bash"},
		{"zsh fallback", "", "zsh", "/bin/zsh"},
		{"unknown fallback", "", "tcsh", "/bin/sh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SHELL", tt.shellEnv)
			if got := shellPath(tt.shellName); got != tt.want {
				t.Errorf("shellPath(%q) = %q, want %q", tt.shellName, got, tt.want)
			}
		})
	}
}

func TestOSCommandExecutor_Execute(t *testing.T) {
	t.Setenv("SHELL", "/bin/sh")
	exec := NewOSCommandExecutor()

	t.Run("success", func(t *testing.T) {
		stdout, _, err := exec.Execute(context.Background(), "sh", "printf '1 2\\n'")
		if err != nil {
			t.Fatalf("Execute() unexpected error = %v", err)
		}
		if stdout != "1 2\n" {
			t.Errorf("Execute() stdout = %q, want %q", stdout, "1 2\n")
		}
	})

	t.Run("failure includes stderr", func(t *testing.T) {
		_, _, err := exec.Execute(context.Background(), "sh", "echo oops >&2; exit 3")
		if err == nil {
			t.Fatal("Execute() expected error, got nil")
		}
		if !strings.Contains(err.Error(), "oops") {
			t.Errorf("Execute() error = %q, want it to contain stderr", err.Error())
		}
	})
}
