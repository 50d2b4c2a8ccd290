// Package clipboard bridges the copy and paste commands with the operating
// system clipboard.
package clipboard

import (
	"fmt"
	"runtime"

	atotto "github.com/atotto/clipboard"
)

// Backend is the system clipboard. Tests replace it.
type Backend interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type system struct{}

func (system) ReadAll() (string, error)   { return atotto.ReadAll() }
func (system) WriteAll(text string) error { return atotto.WriteAll(text) }

var backend Backend = system{}

// SetBackend swaps the clipboard implementation and returns the previous one.
func SetBackend(b Backend) Backend {
	prev := backend
	backend = b
	return prev
}

func unsupported() error {
	return fmt.Errorf("clipboard operations not supported on %s", runtime.GOOS)
}

// WriteText copies text to the system clipboard.
func WriteText(text string) error {
	if _, ok := backend.(system); ok && atotto.Unsupported {
		return unsupported()
	}
	return backend.WriteAll(text)
}

// ReadText reads the system clipboard as plain text.
func ReadText() (string, error) {
	if _, ok := backend.(system); ok && atotto.Unsupported {
		return "", unsupported()
	}
	return backend.ReadAll()
}

// SystemSlot serves the system clipboard as a read-only settings slot, so a
// paste can take its value from outside the extension. An empty clipboard
// reads as an absent slot.
type SystemSlot struct{}

func (SystemSlot) Get(string) (string, bool, error) {
	text, err := ReadText()
	if err != nil {
		return "", false, err
	}
	return text, text != "", nil
}
