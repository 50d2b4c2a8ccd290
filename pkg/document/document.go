// Package document loads a design document's layer tree from a YAML or JSON
// file and exposes its selection to the copy and paste commands.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quicktext/pkg/errors"
	"quicktext/pkg/filter"
	"quicktext/pkg/layer"
	"quicktext/pkg/logger"
	"quicktext/pkg/utils"

	"github.com/google/uuid"
)

// layerIDSpace is the namespace of ids derived for layers saved without one.
var layerIDSpace = uuid.MustParse("5b0e6f3a-8c1d-4e27-9a46-2f7d3c91b8e4")

// Document is a layer tree plus the ids of the selected layers.
type Document struct {
	Name   string
	Layers []layer.Node

	selection []layer.Node
	index     map[string]layer.Node
	order     []string

	source    *fileDocument
	layers    map[layer.Node]*fileLayer
	overrides map[*layer.Override]*fileOverride
	assigned  int
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.DocumentError(path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, errors.DocumentError(path, err)
	}
	logger.Debug().Str("path", path).Int("layers", len(doc.order)).Msg("loaded document")
	return doc, nil
}

// Parse builds a Document from YAML or JSON bytes. Layers without an id get a
// UUID derived from their position in the tree, so the same file yields the
// same ids on every load. Duplicate ids are rejected.
func Parse(data []byte) (*Document, error) {
	src, err := decode(data)
	if err != nil {
		return nil, err
	}

	d := &Document{
		Name:      src.Name,
		source:    src,
		index:     make(map[string]layer.Node),
		layers:    make(map[layer.Node]*fileLayer),
		overrides: make(map[*layer.Override]*fileOverride),
	}

	for i, fl := range src.Layers {
		n, err := d.build(fl, fmt.Sprint(i))
		if err != nil {
			return nil, err
		}
		d.Layers = append(d.Layers, n)
	}

	if err := d.Select(src.Selection); err != nil {
		return nil, err
	}

	return d, nil
}

// derivedID returns the id of the layer at path, a slash separated list of
// child indexes from the document root.
func derivedID(path string) string {
	return uuid.NewSHA1(layerIDSpace, []byte(path)).String()
}

func (d *Document) build(fl *fileLayer, path string) (layer.Node, error) {
	if fl == nil {
		return nil, fmt.Errorf("document contains an empty layer entry")
	}
	if fl.ID == "" {
		fl.ID = derivedID(path)
		d.assigned++
	}
	if _, dup := d.index[fl.ID]; dup {
		return nil, fmt.Errorf("duplicate layer id '%s'", fl.ID)
	}

	meta := layer.Meta{ID: fl.ID, Name: fl.Name, Type: fl.Type}

	var n layer.Node
	switch {
	case fl.Type == layer.TypeText:
		t := &layer.Text{Meta: meta}
		if fl.Text != nil {
			t.Text = *fl.Text
		}
		n = t
	case fl.Type == layer.TypeSymbolInstance:
		inst := &layer.Instance{Meta: meta, SymbolID: fl.SymbolID}
		for _, fo := range fl.Overrides {
			if fo == nil {
				continue
			}
			o := &layer.Override{
				ID:       fo.ID,
				Property: fo.Property,
				AffectedLayer: layer.AffectedLayer{
					ID:   fo.AffectedLayer.ID,
					Type: fo.AffectedLayer.Type,
				},
			}
			if fo.Value != nil {
				o.Value = *fo.Value
			}
			inst.Overrides = append(inst.Overrides, o)
			d.overrides[o] = fo
		}
		n = inst
	case layer.IsContainer(fl.Type):
		g := &layer.Group{Meta: meta}
		// Register before children so ids are indexed in document order.
		d.register(g, fl)
		for i, child := range fl.Layers {
			cn, err := d.build(child, fmt.Sprintf("%s/%d", path, i))
			if err != nil {
				return nil, err
			}
			g.Layers = append(g.Layers, cn)
		}
		return g, nil
	default:
		n = &layer.Other{Meta: meta, Payload: fl}
	}

	d.register(n, fl)
	return n, nil
}

func (d *Document) register(n layer.Node, fl *fileLayer) {
	d.index[fl.ID] = n
	d.order = append(d.order, fl.ID)
	d.layers[n] = fl
}

// AssignedIDs reports how many layers received a generated id on load.
func (d *Document) AssignedIDs() int {
	return d.assigned
}

// Find returns the layer with the given id anywhere in the tree.
func (d *Document) Find(id string) (layer.Node, bool) {
	n, ok := d.index[id]
	return n, ok
}

// IDs returns every layer id in document order.
func (d *Document) IDs() []string {
	return append([]string(nil), d.order...)
}

// Select replaces the selection with the layers named by ids, in the given
// order. Unknown ids leave the selection unchanged.
func (d *Document) Select(ids []string) error {
	ids = utils.Deduplicate(ids)

	var missing []string
	nodes := make([]layer.Node, 0, len(ids))
	for _, id := range ids {
		n, ok := d.index[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		nodes = append(nodes, n)
	}

	if len(missing) > 0 {
		var suggestions []string
		for _, id := range missing {
			suggestions = append(suggestions, filter.Similar(id, d.order, 0.5, 3)...)
		}
		return errors.LayerNotFoundError(missing, utils.Deduplicate(suggestions))
	}

	d.selection = nodes
	return nil
}

// SelectMatching selects every layer matching f. Descendants of a matching
// group are not selected separately. It returns the number of selected layers.
func (d *Document) SelectMatching(f *filter.LayerFilter) int {
	var nodes []layer.Node
	for _, root := range d.Layers {
		layer.Walk(root, func(n layer.Node, _ int) bool {
			if f.MatchesLayer(n) {
				nodes = append(nodes, n)
				return false
			}
			return true
		})
	}
	d.selection = nodes
	return len(nodes)
}

// SelectedLayers returns the selected layers in selection order.
func (d *Document) SelectedLayers() []layer.Node {
	return d.selection
}

func (d *Document) IsEmpty() bool {
	return len(d.selection) == 0
}

// SelectionIDs returns the ids of the selected layers.
func (d *Document) SelectionIDs() []string {
	ids := make([]string, 0, len(d.selection))
	for _, n := range d.selection {
		ids = append(ids, n.Info().ID)
	}
	return ids
}

// Marshal encodes the document, including any text written by the commands.
func (d *Document) Marshal(format Format) ([]byte, error) {
	d.sync()
	return encode(d.source, format)
}

// Save writes the document to path, choosing JSON for .json files and YAML
// otherwise.
func (d *Document) Save(path string) error {
	data, err := d.Marshal(FormatForPath(path))
	if err != nil {
		return errors.NewWithError(errors.ExitCodeDocument, errors.ErrMsgDocumentSave, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.NewWithError(errors.ExitCodeFileOperation, "failed to create document directory", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, errors.ErrMsgDocumentSave, err)
	}

	logger.Debug().Str("path", path).Msg("saved document")
	return nil
}

// FormatForPath picks the encoding from the file extension.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// sync copies mutable node state back into the file representation.
func (d *Document) sync() {
	d.source.Selection = d.SelectionIDs()
	if len(d.source.Selection) == 0 {
		d.source.Selection = nil
	}

	for n, fl := range d.layers {
		switch n := n.(type) {
		case *layer.Text:
			if fl.Text != nil || n.Text != "" {
				fl.Text = utils.Ptr(n.Text)
			}
		case *layer.Instance:
			for _, o := range n.Overrides {
				fo := d.overrides[o]
				if fo.Value != nil || o.Value != "" {
					fo.Value = utils.Ptr(o.Value)
				}
			}
		case *layer.Group, *layer.Other:
		}
	}
}
