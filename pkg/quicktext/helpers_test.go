package quicktext

import (
	"errors"
	"fmt"

	"quicktext/pkg/layer"
)

type selection []layer.Node

func (s selection) SelectedLayers() []layer.Node { return s }
func (s selection) IsEmpty() bool                { return len(s) == 0 }

type failingStore struct{ err error }

func (f failingStore) Get(string) (string, bool, error) { return "", false, f.err }
func (f failingStore) Set(string, string) error         { return f.err }

var errStoreDown = errors.New("store down")

func text(id, value string) *layer.Text {
	return &layer.Text{Meta: layer.Meta{ID: id, Name: id, Type: layer.TypeText}, Text: value}
}

func group(id string, children ...layer.Node) *layer.Group {
	return &layer.Group{Meta: layer.Meta{ID: id, Name: id, Type: layer.TypeGroup}, Layers: children}
}

func other(id string) *layer.Other {
	return &layer.Other{Meta: layer.Meta{ID: id, Name: id, Type: "ShapePath"}}
}

func textOverride(id, value string) *layer.Override {
	return &layer.Override{
		ID:            id,
		Property:      layer.PropertyStringValue,
		AffectedLayer: layer.AffectedLayer{ID: id + "-inner", Type: layer.TypeText},
		Value:         value,
	}
}

func imageOverride(id string) *layer.Override {
	return &layer.Override{
		ID:            id,
		Property:      "image",
		AffectedLayer: layer.AffectedLayer{ID: id + "-inner", Type: "Bitmap"},
	}
}

func instance(id string, overrides ...*layer.Override) *layer.Instance {
	return &layer.Instance{
		Meta:      layer.Meta{ID: id, Name: id, Type: layer.TypeSymbolInstance},
		SymbolID:  "sym-" + id,
		Overrides: overrides,
	}
}

func values(overrides []*layer.Override) []string {
	out := make([]string, len(overrides))
	for i, o := range overrides {
		out[i] = o.Value
	}
	return out
}

func nestIn(n layer.Node, depth int) layer.Node {
	for i := 0; i < depth; i++ {
		n = group(fmt.Sprintf("g%d", i), n)
	}
	return n
}
