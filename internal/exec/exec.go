package exec

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// CommandExists checks if a command is available in PATH.
func CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// RunInDir executes a command in a specific directory with stdout/stderr
// connected to the terminal.
func RunInDir(ctx context.Context, dir string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	return cmd.Run()
}

// Shell parses script as a POSIX shell program and runs it with the
// embedded interpreter. An empty dir means the current directory.
func Shell(ctx context.Context, dir, script string, stdout, stderr io.Writer) error {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "")
	if err != nil {
		return errors.Wrapf(err, "parse %q", script)
	}

	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	opts := []interp.RunnerOption{interp.StdIO(os.Stdin, stdout, stderr)}
	if dir != "" {
		opts = append(opts, interp.Dir(dir))
	}
	runner, err := interp.New(opts...)
	if err != nil {
		return errors.Wrap(err, "init shell")
	}
	return runner.Run(ctx, prog)
}
