// Package prompt asks the operator questions on a line-oriented terminal.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Prompter asks for free-form answers and yes/no confirmations. A blank
// answer selects the default.
type Prompter interface {
	Ask(ctx context.Context, label, def string) (string, error)
	Confirm(ctx context.Context, label string, def bool) (bool, error)
}

// Line reads one answer per line from In and writes labels to Out.
type Line struct {
	in  *bufio.Reader
	out io.Writer
	log *zap.Logger
}

// NewLine returns a Line prompter. A nil log disables logging.
func NewLine(in io.Reader, out io.Writer, log *zap.Logger) *Line {
	if log == nil {
		log = zap.NewNop()
	}
	if f, ok := in.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		log.Debug("stdin is not a terminal, reading answers from input stream")
	}
	return &Line{in: bufio.NewReader(in), out: out, log: log}
}

func (l *Line) Ask(ctx context.Context, label, def string) (string, error) {
	answer, err := l.readLine(ctx, label)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Confirm treats any answer starting with y or Y as yes.
func (l *Line) Confirm(ctx context.Context, label string, def bool) (bool, error) {
	answer, err := l.readLine(ctx, label)
	if err != nil {
		return false, err
	}
	if answer == "" {
		return def, nil
	}
	return strings.HasPrefix(strings.ToLower(answer), "y"), nil
}

// readLine returns the trimmed answer. EOF counts as a blank answer.
func (l *Line) readLine(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(l.out, label); err != nil {
		return "", errors.Wrap(err, "write prompt")
	}

	text, err := l.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		l.log.Error("failed to read answer", zap.String("label", label), zap.Error(err))
		return "", errors.Wrap(err, "read answer")
	}
	if errors.Is(err, io.EOF) && text == "" {
		fmt.Fprintln(l.out)
	}

	answer := strings.TrimSpace(text)
	l.log.Debug("answer received", zap.String("label", label), zap.String("value", answer))
	return answer, nil
}
