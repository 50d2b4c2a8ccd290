package cmd

import (
	"fmt"

	"quicktext/pkg/errors"
	"quicktext/pkg/quicktext"

	"github.com/spf13/cobra"
)

var slotCmd = &cobra.Command{
	Use:   "slot",
	Short: "Inspect or clear the clipboard slot",
	Long:  `Show or clear the persisted clipboard slot used by copy and paste.`,
}

type slotView struct {
	Key     string `json:"key" yaml:"key"`
	Present bool   `json:"present" yaml:"present"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
	Updated string `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

var slotShowCmd = NewCommand("show", "Show the clipboard slot", `Display the text currently held in the clipboard slot.`).
	WithSession(func(cmd *cobra.Command, s *Session) error {
		entry, err := s.Store.Entry(quicktext.ClipboardKey)
		if err != nil {
			return errors.StoreError(err)
		}

		view := slotView{Key: quicktext.ClipboardKey}
		if entry != nil {
			view.Present = true
			view.Value = entry.Value
			view.Updated = entry.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
		}

		if s.Out.IsStructured() {
			return s.Out.Write(view)
		}

		w := s.Out.Writer()
		if entry == nil {
			fmt.Fprintln(w, "Slot is empty. Use 'quicktext copy' to fill it.")
			return nil
		}
		fmt.Fprintf(w, "Slot:    %s\n", view.Key)
		fmt.Fprintf(w, "Value:   %q\n", entry.Value)
		fmt.Fprintf(w, "Updated: %s\n", FormatTimestamp(entry.UpdatedAt))
		return nil
	}).
	Build()

var slotClearCmd = NewCommand("clear", "Clear the clipboard slot",
	`Delete the clipboard slot. Paste reports "nothing to paste" until the next copy.`).
	WithSession(func(cmd *cobra.Command, s *Session) error {
		entry, err := s.Store.Entry(quicktext.ClipboardKey)
		if err != nil {
			return errors.StoreError(err)
		}
		w := s.Out.Writer()
		if entry == nil {
			fmt.Fprintln(w, "Slot is already empty.")
			return nil
		}

		confirmed, err := ConfirmDestructive(w, "clear the clipboard slot", []Detail{
			{Key: "Value", Value: fmt.Sprintf("%q", Truncate(entry.Value, 60))},
		})
		if err != nil {
			return err
		}
		if IsDryRun() {
			return nil
		}
		if !confirmed {
			return errors.CancelledError("slot clear")
		}

		if err := s.Store.Delete(quicktext.ClipboardKey); err != nil {
			return errors.StoreError(err)
		}
		fmt.Fprintln(w, "✓ Slot cleared.")
		return nil
	}).
	Build()
