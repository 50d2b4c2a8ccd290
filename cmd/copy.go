package cmd

import (
	"quicktext/pkg/clipboard"
	"quicktext/pkg/errors"
	"quicktext/pkg/logger"
	"quicktext/pkg/quicktext"
	"quicktext/pkg/settings"

	"github.com/spf13/cobra"
)

var copySystemFlag bool

var copyCmd = NewCommand("copy", "Copy the selected text layer into the clipboard slot",
	`Stores the text of the single selected text layer in the clipboard slot.
Only the top-level selection is considered: text inside a selected group is
not picked up. Selecting no text layer, or more than one, leaves the slot
unchanged.`).
	WithExample(`  # Copy the layer saved as selected in the document
  quicktext copy --doc home.yaml

  # Copy a specific layer and mirror it to the system clipboard
  quicktext copy --doc home.yaml --select title --system`).
	WithSelection().
	WithSession(runCopy).
	Build()

func runCopy(cmd *cobra.Command, s *Session) error {
	var store quicktext.Settings = s.Store
	if IsDryRun() {
		store = settings.NewMemoryStore()
	}

	result, err := quicktext.Copy(s.Doc, store, s.Notifier)
	if err != nil {
		return errors.StoreError(err)
	}

	logger.Info().Str("status", string(result.Status)).Str("layer", result.LayerID).Msg("copy finished")

	if result.Status == quicktext.StatusCopied {
		if IsDryRun() {
			PrintDryRun(s.Out.Writer(), "Slot was not written; it would hold %q", result.Value)
		} else if copySystemFlag || s.Config.Clipboard.MirrorSystem {
			if err := clipboard.WriteText(result.Value); err != nil {
				return errors.WrapWithCode(err, errors.ExitCodeClipboard, "failed to copy to system clipboard")
			}
		}
	}

	return s.Out.Write(result)
}

func init() {
	copyCmd.Flags().BoolVar(&copySystemFlag, "system", false, "Also copy the text to the system clipboard")
}
