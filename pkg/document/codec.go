package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// File layout. Keys the commands do not understand are kept in Extra so a
// load/save cycle leaves them untouched.
type fileDocument struct {
	Name      string         `yaml:"name,omitempty"`
	Selection []string       `yaml:"selection,omitempty"`
	Layers    []*fileLayer   `yaml:"layers"`
	Extra     map[string]any `yaml:",inline"`
}

type fileLayer struct {
	ID        string          `yaml:"id"`
	Type      string          `yaml:"type"`
	Name      string          `yaml:"name,omitempty"`
	Text      *string         `yaml:"text,omitempty"`
	SymbolID  string          `yaml:"symbolId,omitempty"`
	Overrides []*fileOverride `yaml:"overrides,omitempty"`
	Layers    []*fileLayer    `yaml:"layers,omitempty"`
	Extra     map[string]any  `yaml:",inline"`
}

type fileOverride struct {
	ID            string            `yaml:"id,omitempty"`
	Property      string            `yaml:"property"`
	AffectedLayer fileAffectedLayer `yaml:"affectedLayer"`
	Value         *string           `yaml:"value"`
	Extra         map[string]any    `yaml:",inline"`
}

type fileAffectedLayer struct {
	ID    string         `yaml:"id,omitempty"`
	Type  string         `yaml:"type"`
	Extra map[string]any `yaml:",inline"`
}

// Format is the on-disk encoding of a document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

func decode(data []byte) (*fileDocument, error) {
	var doc fileDocument
	// JSON documents parse as YAML.
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &doc, nil
}

func encode(doc *fileDocument, format Format) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	if format != FormatJSON {
		return buf.Bytes(), nil
	}

	var generic any
	if err := yaml.Unmarshal(buf.Bytes(), &generic); err != nil {
		return nil, fmt.Errorf("failed to convert document to JSON: %w", err)
	}
	out, err := json.MarshalIndent(generic, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document as JSON: %w", err)
	}
	return append(out, '\n'), nil
}
