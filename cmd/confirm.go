package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

const (
	responseYes = "yes"
	responseY   = "y"
)

var promptInput io.Reader = os.Stdin

// IsDryRun returns true if dry-run mode is enabled
func IsDryRun() bool {
	return dryRunFlag
}

// IsAssumeYes returns true if we should skip confirmation prompts
func IsAssumeYes() bool {
	return assumeYesFlag
}

// PrintDryRun prints a message indicating what would happen in dry-run mode
func PrintDryRun(w io.Writer, format string, args ...interface{}) {
	yellow := color.New(color.FgYellow, color.Bold)
	_, _ = yellow.Fprint(w, "[DRY-RUN] ")
	fmt.Fprintf(w, format+"\n", args...)
}

// Detail is one labelled line of a dry-run action.
type Detail struct {
	Key   string
	Value string
}

// PrintDryRunAction prints a dry-run action with details
func PrintDryRunAction(w io.Writer, action string, details []Detail) {
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan)

	_, _ = yellow.Fprintf(w, "[DRY-RUN] Would %s:\n", action)
	for _, d := range details {
		_, _ = cyan.Fprintf(w, "  %s: ", d.Key)
		fmt.Fprintln(w, d.Value)
	}
}

// ConfirmPrompt asks the user for confirmation
func ConfirmPrompt(w io.Writer, message string) (bool, error) {
	if assumeYesFlag {
		return true, nil
	}

	yellow := color.New(color.FgYellow)
	_, _ = yellow.Fprintf(w, "%s [y/N]: ", message)

	reader := bufio.NewReader(promptInput)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false, err
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == responseY || response == responseYes, nil
}

// ConfirmDestructive prompts for confirmation before a destructive action.
// In dry-run mode it prints the action and reports false.
func ConfirmDestructive(w io.Writer, action string, details []Detail) (bool, error) {
	if dryRunFlag {
		PrintDryRunAction(w, action, details)
		return false, nil
	}

	red := color.New(color.FgRed, color.Bold)
	_, _ = red.Fprintf(w, "Warning: You are about to %s\n\n", action)

	if len(details) > 0 {
		for _, d := range details {
			fmt.Fprintf(w, "  %s: %s\n", d.Key, d.Value)
		}
		fmt.Fprintln(w)
	}

	return ConfirmPrompt(w, "Do you want to continue")
}
