// Package notify displays the status message produced by a command.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Terminal prints messages to a writer, highlighted in the given color.
type Terminal struct {
	writer io.Writer
	color  *color.Color
}

func NewTerminal() *Terminal {
	return &Terminal{
		writer: os.Stdout,
		color:  color.New(color.FgCyan, color.Bold),
	}
}

// SetWriter sets a custom writer (used in tests)
func (t *Terminal) SetWriter(w io.Writer) {
	t.writer = w
}

func (t *Terminal) Notify(message string) {
	_, _ = t.color.Fprint(t.writer, message)
	fmt.Fprintln(t.writer)
}

// Recorder keeps every message it receives.
type Recorder struct {
	Messages []string
}

func (r *Recorder) Notify(message string) {
	r.Messages = append(r.Messages, message)
}

// Last returns the most recent message, or "" when none was sent.
func (r *Recorder) Last() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[len(r.Messages)-1]
}

// Discard drops every message.
type Discard struct{}

func (Discard) Notify(string) {}
