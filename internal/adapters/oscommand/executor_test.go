package oscommand

import (
	"os/exec"
	"strings"
	"testing"
)

func TestOSCommandExecutor_Execute(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}

	stdout, _, err := NewOSCommandExecutor().Execute("echo", "hello", "world")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if strings.TrimSpace(stdout) != "hello world" {
		t.Errorf("Execute() stdout = %q, want %q", stdout, "hello world")
	}
}

func TestOSCommandExecutor_ExecuteMissingProgram(t *testing.T) {
	_, _, err := NewOSCommandExecutor().Execute("wordfreq-definitely-not-installed")
	if err == nil || !strings.Contains(err.Error(), "not found in PATH") {
		t.Errorf("Execute() error = %v, want not found in PATH", err)
	}
}
