package executor

import (
	"context"
	"os/exec"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	e := New()
	ctx := context.Background()

	out, err := e.Execute(ctx, "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "hello\n" {
		t.Errorf("Execute() = %q, want %q", out, "hello\n")
	}

	_, err = e.Execute(ctx, "sh", "-c", "echo oops >&2; exit 3")
	if err == nil {
		t.Fatal("Execute() should fail on non-zero exit")
	}
	if !strings.Contains(err.Error(), "oops") {
		t.Errorf("error %q should carry stderr", err)
	}
}
