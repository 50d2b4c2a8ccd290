package quicktext

import (
	"fmt"

	"quicktext/pkg/layer"
	"quicktext/pkg/logger"
)

const (
	MsgNoTextLayer    = "Select a text layer to copy ☝️"
	MsgMultipleText   = "Select only one text layer to copy 🧐"
	msgCopiedTemplate = "✅ Copied: \"%s\""
)

// CopyResult describes a Copy invocation.
type CopyResult struct {
	Status  Status `json:"status" yaml:"status"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
	LayerID string `json:"layer_id,omitempty" yaml:"layer_id,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// Copy stores the text of the single selected text layer under ClipboardKey.
// Only the immediate selection is considered; groups are not searched. The
// returned error is non-nil only when the settings store fails, in which case
// no message is emitted.
func Copy(sel Selection, store Settings, n Notifier) (*CopyResult, error) {
	var texts []*layer.Text
	for _, node := range sel.SelectedLayers() {
		if t, ok := node.(*layer.Text); ok {
			texts = append(texts, t)
		}
	}

	var result *CopyResult
	switch len(texts) {
	case 0:
		result = &CopyResult{Status: StatusNoText, Message: MsgNoTextLayer}
	case 1:
		t := texts[0]
		if err := store.Set(ClipboardKey, t.Text); err != nil {
			return nil, fmt.Errorf("failed to store copied text: %w", err)
		}
		logger.Debug().Str("layer", t.ID).Int("length", len(t.Text)).Msg("copied text layer")
		result = &CopyResult{
			Status:  StatusCopied,
			Value:   t.Text,
			LayerID: t.ID,
			Message: fmt.Sprintf(msgCopiedTemplate, t.Text),
		}
	default:
		result = &CopyResult{Status: StatusMultipleText, Message: MsgMultipleText}
	}

	n.Notify(result.Message)
	return result, nil
}
