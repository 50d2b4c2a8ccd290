package quicktext

import (
	"fmt"

	"quicktext/pkg/layer"
)

const (
	MsgNoTarget        = "No layer in the selection can take the pasted text."
	msgPastedTemplate  = "🎉 Pasted into %d field(s)!"
	msgSkippedSuffix   = " (some complex components were skipped)"
	msgAmbiguousFormat = "The component has several text fields. Change the target text to %q and try again."
)

// Report renders the single status message for a paste outcome.
func Report(o Outcome) string {
	switch {
	case o.Updated > 0 && o.Ambiguous:
		return fmt.Sprintf(msgPastedTemplate, o.Updated) + msgSkippedSuffix
	case o.Updated > 0:
		return fmt.Sprintf(msgPastedTemplate, o.Updated)
	case o.Ambiguous:
		return fmt.Sprintf(msgAmbiguousFormat, layer.PasteKeyword)
	default:
		return MsgNoTarget
	}
}
