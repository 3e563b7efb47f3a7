package exec

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCommandExists(t *testing.T) {
	if !CommandExists("go") {
		t.Error("CommandExists(\"go\") = false, want true")
	}
	if CommandExists("nonexistent-binary-xyz-123") {
		t.Error("CommandExists(\"nonexistent-binary-xyz-123\") = true, want false")
	}
}

func TestShell(t *testing.T) {
	var out bytes.Buffer
	if err := Shell(context.Background(), "", "echo hello && echo world", &out, &out); err != nil {
		t.Fatalf("Shell() error: %v", err)
	}
	if out.String() != "hello\nworld\n" {
		t.Errorf("Shell() output = %q, want %q", out.String(), "hello\nworld\n")
	}
}

func TestShell_Dir(t *testing.T) {
	dir := t.TempDir()
	if err := Shell(context.Background(), dir, "echo box > marker", nil, nil); err != nil {
		t.Fatalf("Shell() error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "marker"))
	if err != nil {
		t.Fatalf("marker not written in dir: %v", err)
	}
	if strings.TrimSpace(string(data)) != "box" {
		t.Errorf("marker = %q, want \"box\"", data)
	}
}

func TestShell_NonZeroExit(t *testing.T) {
	if err := Shell(context.Background(), "", "exit 3", nil, nil); err == nil {
		t.Error("Shell(\"exit 3\") error = nil, want non-nil")
	}
}

func TestShell_ParseError(t *testing.T) {
	if err := Shell(context.Background(), "", "echo 'unterminated", nil, nil); err == nil {
		t.Error("Shell() with unterminated quote error = nil, want parse error")
	}
}

func TestRunInDir_Missing(t *testing.T) {
	if err := RunInDir(context.Background(), t.TempDir(), "nonexistent-binary-xyz-123"); err == nil {
		t.Error("RunInDir() with missing binary error = nil, want non-nil")
	}
}
