package quicktext

import (
	"fmt"

	"quicktext/pkg/layer"
	"quicktext/pkg/logger"
)

const (
	MsgNothingToPaste = "Nothing to paste 🤷"
	MsgSelectTarget   = "Select the layers to paste into 🎯"
)

// Outcome aggregates the effect of one paste over a selection.
type Outcome struct {
	Updated   int  `json:"updated" yaml:"updated"`
	Ambiguous bool `json:"ambiguous" yaml:"ambiguous"`
}

// Change records a single field written by Resolve. OverrideID is empty for
// plain text layers.
type Change struct {
	LayerID    string `json:"layer_id" yaml:"layer_id"`
	LayerName  string `json:"layer_name,omitempty" yaml:"layer_name,omitempty"`
	OverrideID string `json:"override_id,omitempty" yaml:"override_id,omitempty"`
	Old        string `json:"old" yaml:"old"`
	New        string `json:"new" yaml:"new"`
}

// Resolve writes value into every text field reachable from nodes and returns
// the aggregated outcome. visit, when non-nil, is called for every write in
// traversal order.
//
// Text layers are always written. For component instances, overrides whose
// value is PasteKeyword win; otherwise a lone text override is written; an
// instance with several text overrides and no keyword is left untouched and
// marks the outcome ambiguous. Groups are descended in child order.
func Resolve(nodes []layer.Node, value string, visit func(Change)) Outcome {
	var out Outcome
	for _, n := range nodes {
		resolveNode(n, value, &out, visit)
	}
	return out
}

func resolveNode(n layer.Node, value string, out *Outcome, visit func(Change)) {
	switch n := n.(type) {
	case *layer.Text:
		old := n.Text
		n.Text = value
		out.Updated++
		record(visit, Change{LayerID: n.ID, LayerName: n.Name, Old: old, New: value})
	case *layer.Instance:
		candidates := n.TextOverrides()
		var keyword []*layer.Override
		for _, o := range candidates {
			if o.IsKeyword() {
				keyword = append(keyword, o)
			}
		}
		switch {
		case len(keyword) > 0:
			for _, o := range keyword {
				setOverride(n, o, value, visit)
			}
			out.Updated += len(keyword)
		case len(candidates) == 1:
			setOverride(n, candidates[0], value, visit)
			out.Updated++
		case len(candidates) > 1:
			logger.Debug().Str("layer", n.ID).Int("candidates", len(candidates)).Msg("skipping ambiguous instance")
			out.Ambiguous = true
		}
	case *layer.Group:
		for _, child := range n.Layers {
			resolveNode(child, value, out, visit)
		}
	case *layer.Other:
	}
}

func setOverride(inst *layer.Instance, o *layer.Override, value string, visit func(Change)) {
	old := o.Value
	o.Value = value
	record(visit, Change{LayerID: inst.ID, LayerName: inst.Name, OverrideID: o.ID, Old: old, New: value})
}

func record(visit func(Change), c Change) {
	logger.Debug().Str("layer", c.LayerID).Str("override", c.OverrideID).Msg("pasted text")
	if visit != nil {
		visit(c)
	}
}

// PasteResult describes a Paste invocation.
type PasteResult struct {
	Status  Status   `json:"status" yaml:"status"`
	Outcome Outcome  `json:"outcome" yaml:"outcome"`
	Value   string   `json:"value,omitempty" yaml:"value,omitempty"`
	Changes []Change `json:"changes,omitempty" yaml:"changes,omitempty"`
	Message string   `json:"message" yaml:"message"`
}

// Paste reads the slot and resolves it across the selection, then emits
// exactly one message. The returned error is non-nil only when the slot
// cannot be read; nothing is mutated in that case.
func Paste(sel Selection, slot SlotReader, n Notifier) (*PasteResult, error) {
	value, ok, err := slot.Get(ClipboardKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read clipboard slot: %w", err)
	}

	var result *PasteResult
	switch {
	case !ok:
		result = &PasteResult{Status: StatusEmptySlot, Message: MsgNothingToPaste}
	case sel.IsEmpty():
		result = &PasteResult{Status: StatusEmptySelection, Message: MsgSelectTarget}
	default:
		result = &PasteResult{Value: value}
		result.Outcome = Resolve(sel.SelectedLayers(), value, func(c Change) {
			result.Changes = append(result.Changes, c)
		})
		result.Status = outcomeStatus(result.Outcome)
		result.Message = Report(result.Outcome)
	}

	n.Notify(result.Message)
	return result, nil
}

func outcomeStatus(o Outcome) Status {
	switch {
	case o.Updated > 0:
		return StatusPasted
	case o.Ambiguous:
		return StatusAmbiguous
	default:
		return StatusNoTarget
	}
}
