package completions

import (
	"fmt"
	"strings"

	"quicktext/pkg/config"
	"quicktext/pkg/document"
	"quicktext/pkg/filter"
	"quicktext/pkg/layer"

	"github.com/spf13/cobra"
)

type Completer struct {
	formats []string
	// loadDocument is replaced in tests.
	loadDocument func(path string) (*document.Document, error)
}

// NewCompleter returns a Completer offering formats for --format.
func NewCompleter(formats []string) *Completer {
	return &Completer{formats: formats, loadDocument: document.Load}
}

// documentFor resolves the --doc flag, falling back to the configured default.
func (c *Completer) documentFor(cmd *cobra.Command) (*document.Document, error) {
	path, _ := cmd.Flags().GetString("doc")
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		path = cfg.Document.Path
	}
	if path == "" {
		return nil, fmt.Errorf("no document")
	}
	return c.loadDocument(path)
}

func (c *Completer) CompleteLayerIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	doc, err := c.documentFor(cmd)
	if err != nil {
		return []string{}, cobra.ShellCompDirectiveNoFileComp
	}

	// --select takes a comma separated list; complete the last element.
	prefix := ""
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix, toComplete = toComplete[:i+1], toComplete[i+1:]
	}

	var items []string
	for _, id := range doc.IDs() {
		n, _ := doc.Find(id)
		items = append(items, fmt.Sprintf("%s%s\t%s", prefix, id, describe(n)))
	}

	return c.filterPrefix(items, prefix+toComplete), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

func (c *Completer) CompleteLayerTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	types := []string{
		layer.TypeText + "\tText layer",
		layer.TypeSymbolInstance + "\tComponent instance",
		layer.TypeGroup + "\tGroup",
		layer.TypeArtboard + "\tArtboard",
		layer.TypeSymbolMaster + "\tComponent definition",
		layer.TypePage + "\tPage",
	}
	return c.filterPrefix(types, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func (c *Completer) CompleteMatchMode(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	results := c.filterPrefix(filter.ModeNames, toComplete)

	for i, mode := range results {
		results[i] = fmt.Sprintf("%s\t%s", mode, getMatchModeDescription(mode))
	}

	return results, cobra.ShellCompDirectiveNoFileComp
}

func (c *Completer) CompleteFormat(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	results := c.filterPrefix(c.formats, toComplete)

	for i, format := range results {
		results[i] = fmt.Sprintf("%s\t%s", format, getFormatDescription(format))
	}

	return results, cobra.ShellCompDirectiveNoFileComp
}

func (c *Completer) filterPrefix(items []string, prefix string) []string {
	result := []string{}
	for _, item := range items {
		itemName := strings.Split(item, "\t")[0]
		if strings.HasPrefix(strings.ToLower(itemName), strings.ToLower(prefix)) {
			result = append(result, item)
		}
	}
	return result
}

func describe(n layer.Node) string {
	meta := n.Info()
	if meta.Name == "" {
		return meta.Type
	}
	return fmt.Sprintf("%s %s", meta.Type, meta.Name)
}

func getMatchModeDescription(mode string) string {
	switch mode {
	case "exact":
		return "Whole name, case insensitive"
	case "contains":
		return "Name contains the pattern"
	case "regex":
		return "Regular expression"
	case "fuzzy":
		return "Pattern characters appear in order"
	default:
		return ""
	}
}

func getFormatDescription(format string) string {
	switch format {
	case "table":
		return "Human readable output"
	case "json":
		return "JSON document"
	case "yaml":
		return "YAML document"
	default:
		return ""
	}
}

func RegisterCompletions(rootCmd *cobra.Command, formats []string) {
	completer := NewCompleter(formats)

	rootCmd.RegisterFlagCompletionFunc("format", completer.CompleteFormat)

	for _, name := range []string{"copy", "paste", "layers"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd == nil || cmd == rootCmd {
			continue
		}
		cmd.RegisterFlagCompletionFunc("select", completer.CompleteLayerIDs)
		cmd.RegisterFlagCompletionFunc("match-mode", completer.CompleteMatchMode)
		cmd.RegisterFlagCompletionFunc("type", completer.CompleteLayerTypes)
	}
}
