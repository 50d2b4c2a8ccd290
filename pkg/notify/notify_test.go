package notify

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
)

func TestTerminal_Notify(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	term := NewTerminal()
	term.SetWriter(&buf)

	term.Notify("Pasted into 2 field(s)")

	if got, want := buf.String(), "Pasted into 2 field(s)\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	if r.Last() != "" {
		t.Errorf("Last() on empty recorder = %q, want \"\"", r.Last())
	}

	r.Notify("one")
	r.Notify("two")

	if len(r.Messages) != 2 {
		t.Fatalf("len(Messages) = %d, want 2", len(r.Messages))
	}
	if r.Last() != "two" {
		t.Errorf("Last() = %q, want %q", r.Last(), "two")
	}
}
