// Package layer models the subset of a design document's layer tree that the
// copy and paste commands operate on. The set of node variants is closed:
// every host layer kind decodes into exactly one of Text, Instance, Group or
// Other.
package layer

import "strings"

// Host type tags.
const (
	TypeText           = "Text"
	TypeSymbolInstance = "SymbolInstance"
	TypeGroup          = "Group"
	TypeArtboard       = "Artboard"
	TypeSymbolMaster   = "SymbolMaster"
	TypePage           = "Page"
)

// PropertyStringValue is the override property kind carrying a text value.
const PropertyStringValue = "stringValue"

// PasteKeyword marks an override as the explicit paste target.
const PasteKeyword = "//paste"

// Node is implemented only by the variants in this package.
type Node interface {
	Info() *Meta
	node()
}

// Meta holds the attributes shared by every variant.
type Meta struct {
	ID   string
	Name string
	Type string
}

type Text struct {
	Meta
	Text string
}

type Instance struct {
	Meta
	SymbolID  string
	Overrides []*Override
}

type Group struct {
	Meta
	Layers []Node
}

// Other is any layer kind the commands do not act on. Payload carries the
// host representation so adapters can write it back unchanged.
type Other struct {
	Meta
	Payload any
}

func (m *Meta) Info() *Meta { return m }

func (*Text) node()     {}
func (*Instance) node() {}
func (*Group) node()    {}
func (*Other) node()    {}

// AffectedLayer identifies the inner layer an override customizes.
type AffectedLayer struct {
	ID   string
	Type string
}

type Override struct {
	ID            string
	Property      string
	AffectedLayer AffectedLayer
	Value         string
}

// IsTextCandidate reports whether the override customizes the string value of
// an inner text layer.
func (o *Override) IsTextCandidate() bool {
	return o.Property == PropertyStringValue && o.AffectedLayer.Type == TypeText
}

// IsKeyword reports whether the override's value, trimmed of surrounding
// whitespace, is exactly PasteKeyword.
func (o *Override) IsKeyword() bool {
	return strings.TrimSpace(o.Value) == PasteKeyword
}

// TextOverrides returns the instance's text candidates in native order.
func (i *Instance) TextOverrides() []*Override {
	var candidates []*Override
	for _, o := range i.Overrides {
		if o.IsTextCandidate() {
			candidates = append(candidates, o)
		}
	}
	return candidates
}

// IsContainer reports whether a host type tag decodes into a Group.
func IsContainer(hostType string) bool {
	switch hostType {
	case TypeGroup, TypeArtboard, TypeSymbolMaster, TypePage:
		return true
	default:
		return false
	}
}

// Walk visits n and, for groups, every descendant in native order. Returning
// false from fn stops descent below the current node.
func Walk(n Node, fn func(Node, int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	if g, ok := n.(*Group); ok {
		for _, child := range g.Layers {
			walk(child, depth+1, fn)
		}
	}
}
