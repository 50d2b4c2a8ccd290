package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"quicktext/pkg/completions"
	"quicktext/pkg/errors"
	"quicktext/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const (
	unknownValue = "unknown"
)

var (
	Version   string
	BuildTime string
	GitCommit string
)

var outputFormat string
var dryRunFlag bool
var assumeYesFlag bool
var logLevel string
var storePathFlag string

var rootCmd = &cobra.Command{
	Use:   "quicktext",
	Short: "Copy and paste text between design layers",
	Long: `Copies the text of one text layer into a persisted clipboard slot and pastes
it into any number of target layers, including the text overrides of
component instances. Documents are YAML or JSON layer trees; the slot lives
in a SQLite settings store under the user config directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set log level: explicit flag takes precedence over env var
		level := logLevel
		if !cmd.Flags().Changed("log-level") {
			if envLevel := os.Getenv("QUICKTEXT_LOG_LEVEL"); envLevel != "" {
				level = envLevel
			}
		}
		logger.SetLevel(level)

		if !slices.Contains(ValidFormats(), outputFormat) {
			return errors.ValidationError(fmt.Sprintf("unknown output format '%s' (expected %s)",
				outputFormat, strings.Join(ValidFormats(), ", ")))
		}
		logger.WithInvocation(uuid.NewString())
		logger.Debug().Str("command", cmd.CommandPath()).Msg("starting")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		ver := Version
		if ver == "" {
			ver = "dev"
		}
		bt := BuildTime
		if bt == "" {
			bt = unknownValue
		}
		gc := GitCommit
		if gc == "" {
			gc = unknownValue
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "quicktext version %s\n", ver)
		fmt.Fprintf(out, "Built: %s\n", bt)
		fmt.Fprintf(out, "Git commit: %s\n", gc)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitCode := errors.HandleReturn(err)
		os.Exit(int(exitCode))
	}
}

func init() {
	RegisterCommands(rootCmd)

	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "table", "Output format ("+strings.Join(ValidFormats(), ", ")+")")
	rootCmd.PersistentFlags().BoolVar(&dryRunFlag, "dry-run", false, "Show what would be done without making changes")
	rootCmd.PersistentFlags().BoolVarP(&assumeYesFlag, "yes", "y", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error, off)")
	rootCmd.PersistentFlags().StringVar(&storePathFlag, "store", "", "Settings database path (overrides config)")

	completions.RegisterCompletions(rootCmd, ValidFormats())
}
