// Package provision re-provisions the Homestead virtual machine.
package provision

import (
	"context"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/yansircc/lochost/internal/exec"
)

// ErrCommandFailed marks a provisioning command that could not be started
// or exited non-zero.
var ErrCommandFailed = errors.New("provision command failed")

// Policy decides what happens when the provisioning command fails.
type Policy int

const (
	// Ignore logs the failure and reports success.
	Ignore Policy = iota
	// Surface returns the failure to the caller.
	Surface
)

// Invoker runs the provisioning step.
type Invoker interface {
	Provision(ctx context.Context) error
}

// Shell runs Command through the embedded shell interpreter, or
// "vagrant provision" inside BoxPath when Command is empty.
type Shell struct {
	Command string
	BoxPath string
	Policy  Policy
	Stdout  io.Writer
	Stderr  io.Writer
	Log     *zap.Logger

	// runDefault is swapped in tests to avoid calling vagrant.
	runDefault func(ctx context.Context, dir string) error
}

func (s *Shell) Provision(ctx context.Context) error {
	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}

	var err error
	if s.Command != "" {
		log.Debug("running provision command", zap.String("command", s.Command))
		err = exec.Shell(ctx, "", s.Command, s.writer(s.Stdout, os.Stdout), s.writer(s.Stderr, os.Stderr))
	} else {
		log.Debug("running vagrant provision", zap.String("dir", s.BoxPath))
		run := s.runDefault
		if run == nil {
			run = vagrantProvision
		}
		err = run(ctx, s.BoxPath)
	}
	if err == nil {
		return nil
	}

	err = errors.Mark(errors.Wrap(err, "provision"), ErrCommandFailed)
	if s.Policy == Surface {
		return err
	}
	log.Warn("provisioning failed, continuing", zap.Error(err))
	return nil
}

func (s *Shell) writer(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}

func vagrantProvision(ctx context.Context, dir string) error {
	return exec.RunInDir(ctx, dir, "vagrant", "provision")
}
