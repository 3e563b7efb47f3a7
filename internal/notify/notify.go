// Package notify prints user-facing progress messages.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// MessageType determines the symbol and colour of a message.
type MessageType int

const (
	ErrorType MessageType = iota
	WarningType
	ActivityType
	SuccessType
)

var styles = map[MessageType]struct {
	symbol string
	color  *color.Color
}{
	ErrorType:    {"✗", color.New(color.FgRed)},
	WarningType:  {"⚠", color.New(color.FgYellow)},
	ActivityType: {"►", color.New(color.Reset)},
	SuccessType:  {"✔", color.New(color.FgGreen)},
}

// Write prints one formatted message of type mt to w, or os.Stdout when w
// is nil.
func Write(w io.Writer, mt MessageType, format string, args ...any) {
	if w == nil {
		w = os.Stdout
	}
	st := styles[mt]
	msg := fmt.Sprintf(format, args...)
	_, _ = st.color.Fprintf(w, "%s %s\n", st.symbol, msg)
}

func Errorf(w io.Writer, format string, args ...any)    { Write(w, ErrorType, format, args...) }
func Warningf(w io.Writer, format string, args ...any)  { Write(w, WarningType, format, args...) }
func Activityf(w io.Writer, format string, args ...any) { Write(w, ActivityType, format, args...) }
func Successf(w io.Writer, format string, args ...any)  { Write(w, SuccessType, format, args...) }
