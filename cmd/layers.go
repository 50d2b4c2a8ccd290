package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"quicktext/pkg/layer"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// layerRow is one line of the layers listing.
type layerRow struct {
	ID            string `json:"id" yaml:"id"`
	Type          string `json:"type" yaml:"type"`
	Kind          string `json:"kind" yaml:"kind"`
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	Depth         int    `json:"depth" yaml:"depth"`
	Text          string `json:"text,omitempty" yaml:"text,omitempty"`
	TextOverrides int    `json:"text_overrides,omitempty" yaml:"text_overrides,omitempty"`
	Keywords      int    `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Selected      bool   `json:"selected" yaml:"selected"`
}

var layersCmd = NewCommand("layers", "List the document's layers",
	`Print the layer tree with ids, kinds and, for component instances, how many
text overrides they have and how many are marked with "//paste". Selected
layers are marked with *.`).
	WithExample(`  quicktext layers --doc home.yaml
  quicktext layers --doc home.yaml --match card --match-mode contains --format json`).
	WithSelection().
	WithSession(func(cmd *cobra.Command, s *Session) error {
		rows := collectLayerRows(s.Doc.Layers, s.Doc.SelectionIDs())
		if s.Out.IsStructured() {
			return s.Out.Write(rows)
		}
		printLayerRows(s, rows)
		return nil
	}).
	Build()

func collectLayerRows(roots []layer.Node, selected []string) []layerRow {
	isSelected := make(map[string]bool, len(selected))
	for _, id := range selected {
		isSelected[id] = true
	}

	var rows []layerRow
	for _, root := range roots {
		layer.Walk(root, func(n layer.Node, depth int) bool {
			meta := n.Info()
			row := layerRow{
				ID:       meta.ID,
				Type:     meta.Type,
				Name:     meta.Name,
				Depth:    depth,
				Selected: isSelected[meta.ID],
			}
			switch n := n.(type) {
			case *layer.Text:
				row.Kind = "text"
				row.Text = n.Text
			case *layer.Instance:
				row.Kind = "instance"
				candidates := n.TextOverrides()
				row.TextOverrides = len(candidates)
				for _, o := range candidates {
					if o.IsKeyword() {
						row.Keywords++
					}
				}
			case *layer.Group:
				row.Kind = "group"
			case *layer.Other:
				row.Kind = "other"
			}
			rows = append(rows, row)
			return true
		})
	}
	return rows
}

func printLayerRows(s *Session, rows []layerRow) {
	if len(rows) == 0 {
		fmt.Fprintln(s.Out.Writer(), "Document has no layers.")
		return
	}

	green := color.New(color.FgGreen, color.Bold)
	tw := tabwriter.NewWriter(s.Out.Writer(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  \tLAYER\tID\tKIND\tDETAIL")
	for _, r := range rows {
		mark := " "
		if r.Selected {
			mark = green.Sprint("*")
		}
		name := r.Name
		if name == "" {
			name = "(" + r.Type + ")"
		}
		fmt.Fprintf(tw, "%s\t%s%s\t%s\t%s\t%s\n",
			mark, strings.Repeat("  ", r.Depth), Truncate(name, 40), r.ID, r.Kind, layerDetail(r))
	}
	tw.Flush()
}

func layerDetail(r layerRow) string {
	switch r.Kind {
	case "text":
		return fmt.Sprintf("%q", Truncate(r.Text, 40))
	case "instance":
		detail := fmt.Sprintf("%d text override(s)", r.TextOverrides)
		if r.Keywords > 0 {
			detail += fmt.Sprintf(", %d marked", r.Keywords)
		} else if r.TextOverrides > 1 {
			detail += ", ambiguous"
		}
		return detail
	case "group", "other":
		return r.Type
	default:
		return ""
	}
}
