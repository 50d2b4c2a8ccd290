package cmd

import "github.com/spf13/cobra"

func RegisterCommands(root *cobra.Command) {
	root.AddCommand(versionCmd)

	root.AddCommand(copyCmd)
	root.AddCommand(pasteCmd)
	root.AddCommand(layersCmd)
	root.AddCommand(slotCmd)
	root.AddCommand(configCmd)

	slotCmd.AddCommand(
		slotShowCmd,
		slotClearCmd,
	)

	configCmd.AddCommand(
		configShowCmd,
		configPathCmd,
	)
}
