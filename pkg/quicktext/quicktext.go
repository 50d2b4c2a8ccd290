// Package quicktext implements the copy and paste commands: copying the text
// of a single selected text layer into a persisted slot, and pasting the slot
// into every text field reachable from the selection, including component
// instance overrides.
//
// Host services are consumed through the Selection, SlotReader, Settings and
// Notifier interfaces so the commands run the same against a live host or a
// document file.
package quicktext

import "quicktext/pkg/layer"

// ClipboardKey is the settings key holding the copied text.
const ClipboardKey = "com.example.quick-text-copy.clipboard"

// Selection exposes the layers currently selected in the host document.
type Selection interface {
	SelectedLayers() []layer.Node
	IsEmpty() bool
}

// SlotReader reads a persisted value. ok is false when the key was never set.
type SlotReader interface {
	Get(key string) (value string, ok bool, err error)
}

// Settings is a persisted key-value store scoped to the extension.
type Settings interface {
	SlotReader
	Set(key, value string) error
}

// Notifier shows a transient status message.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(string)

func (f NotifierFunc) Notify(message string) { f(message) }

// Status classifies how a command invocation ended.
type Status string

const (
	StatusCopied         Status = "copied"
	StatusNoText         Status = "no-text"
	StatusMultipleText   Status = "multiple-text"
	StatusEmptySlot      Status = "empty-slot"
	StatusEmptySelection Status = "empty-selection"
	StatusPasted         Status = "pasted"
	StatusAmbiguous      Status = "ambiguous"
	StatusNoTarget       Status = "no-target"
)
