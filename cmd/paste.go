package cmd

import (
	"fmt"

	"quicktext/pkg/clipboard"
	"quicktext/pkg/errors"
	"quicktext/pkg/logger"
	"quicktext/pkg/quicktext"

	"github.com/spf13/cobra"
)

var (
	pasteOutPath    string
	pasteFromSystem bool
)

var pasteCmd = NewCommand("paste", "Paste the clipboard slot into the selected layers",
	`Writes the clipboard slot into every text field reachable from the selection.

Text layers are always written and groups are searched recursively. For a
component instance, text overrides whose value is "//paste" are written;
without such a marker a lone text override is written, and an instance with
several text overrides is skipped so no field is overwritten by guesswork.

The document is saved in place when a field was written. With --out the
result always goes to that file, unchanged when nothing was written, and
--doc is left as is. --dry-run writes nothing.`).
	WithExample(`  # Paste into the saved selection
  quicktext paste --doc home.yaml

  # Paste into every layer named like "Card" and preview the result
  quicktext paste --doc home.yaml --match card --match-mode contains --dry-run

  # Paste the system clipboard instead of the slot
  quicktext paste --doc home.yaml --select title --from-system`).
	WithSelection().
	WithSession(runPaste).
	Build()

func runPaste(cmd *cobra.Command, s *Session) error {
	var slot quicktext.SlotReader = s.Store
	if pasteFromSystem {
		slot = clipboard.SystemSlot{}
	}

	result, err := quicktext.Paste(s.Doc, slot, s.Notifier)
	if err != nil {
		if pasteFromSystem {
			return errors.NewWithError(errors.ExitCodeClipboard, errors.ErrMsgClipboardRead, err)
		}
		return errors.StoreError(err)
	}

	logger.Info().
		Str("status", string(result.Status)).
		Int("updated", result.Outcome.Updated).
		Bool("ambiguous", result.Outcome.Ambiguous).
		Msg("paste finished")

	pasted := result.Status == quicktext.StatusPasted
	switch {
	case IsDryRun():
		if pasted && !s.Out.IsStructured() {
			printChanges(s, result.Changes)
		}
	case pasteOutPath != "":
		if err := saveDocument(s, pasteOutPath); err != nil {
			return err
		}
	case pasted:
		if err := saveDocument(s, s.DocPath); err != nil {
			return err
		}
	}

	return s.Out.Write(result)
}

func saveDocument(s *Session, path string) error {
	if err := s.Doc.Save(path); err != nil {
		return errors.WrapWithCode(err, errors.ExitCodeFileOperation, fmt.Sprintf("paste into '%s'", path))
	}
	logger.Debug().Str("path", path).Msg("saved document")
	return nil
}

func printChanges(s *Session, changes []quicktext.Change) {
	details := make([]Detail, 0, len(changes))
	for _, c := range changes {
		key := c.LayerID
		if c.OverrideID != "" {
			key = fmt.Sprintf("%s › %s", c.LayerID, c.OverrideID)
		}
		details = append(details, Detail{
			Key:   key,
			Value: fmt.Sprintf("%q → %q", Truncate(c.Old, 40), Truncate(c.New, 40)),
		})
	}
	PrintDryRunAction(s.Out.Writer(), fmt.Sprintf("write %d field(s) in %s", len(changes), s.DocPath), details)
}

func init() {
	pasteCmd.Flags().StringVarP(&pasteOutPath, "out", "o", "", "Write the pasted document here instead of overwriting --doc")
	pasteCmd.Flags().BoolVar(&pasteFromSystem, "from-system", false, "Paste the system clipboard instead of the slot")
}
