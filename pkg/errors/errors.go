package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"quicktext/pkg/logger"

	"github.com/fatih/color"
)

type ExitCode int

const (
	ExitCodeSuccess       ExitCode = 0
	ExitCodeGeneral       ExitCode = 1
	ExitCodeConfig        ExitCode = 2
	ExitCodeValidation    ExitCode = 3
	ExitCodeFileOperation ExitCode = 4
	ExitCodeDocument      ExitCode = 5
	ExitCodeStore         ExitCode = 6
	ExitCodeClipboard     ExitCode = 7
	ExitCodeCancellation  ExitCode = 8
)

// Standardized error messages for consistent user-facing errors
const (
	ErrMsgDocumentLoad  = "Failed to load document"
	ErrMsgDocumentSave  = "Failed to save document"
	ErrMsgStoreOpen     = "Failed to open settings store"
	ErrMsgStoreFailed   = "Settings store operation failed"
	ErrMsgClipboardRead = "Failed to read system clipboard"
)

// stderr is swapped in tests.
var stderr io.Writer = os.Stderr

type Error struct {
	Code       ExitCode
	Message    string
	Underlying error
	Suggestion string
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Underlying)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

func NewWithError(code ExitCode, message string, err error) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
	}
}

func NewWithAll(code ExitCode, message string, err error, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
		Suggestion: suggestion,
	}
}

// WrapWithCode wraps err under message and code. An *Error keeps its own code
// and suggestion so the most specific exit code wins.
func WrapWithCode(err error, code ExitCode, message string) *Error {
	if err == nil {
		return nil
	}

	if e, ok := err.(*Error); ok {
		return &Error{
			Code:       e.Code,
			Message:    message + ": " + e.Message,
			Underlying: e.Underlying,
			Suggestion: e.Suggestion,
		}
	}

	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
	}
}

// HandleReturn logs err, prints it to stderr and returns the exit code the
// process should terminate with.
func HandleReturn(err error) ExitCode {
	if err == nil {
		return ExitCodeSuccess
	}

	var exitCode ExitCode = ExitCodeGeneral
	var message string
	var suggestion string

	if e, ok := err.(*Error); ok {
		exitCode = e.Code
		message = e.Error()
		suggestion = e.Suggestion

		if e.Underlying != nil {
			logger.Error().Err(e.Underlying).Msg(e.Message)
		} else {
			logger.Error().Msg(e.Message)
		}
	} else {
		message = err.Error()
		logger.Error().Msg(message)
	}

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	fmt.Fprintln(stderr)
	red.Fprint(stderr, "Error: ")
	fmt.Fprintln(stderr, message)

	if suggestion != "" {
		yellow.Fprint(stderr, "Suggestion: ")
		lines := strings.Split(suggestion, "\n")
		for i, line := range lines {
			if i == 0 {
				fmt.Fprintln(stderr, line)
			} else if strings.HasPrefix(line, "  -") {
				cyan.Fprintln(stderr, line)
			} else {
				fmt.Fprintln(stderr, "           "+line)
			}
		}
	}

	fmt.Fprintln(stderr)

	return exitCode
}

func ConfigError(message string) *Error {
	return &Error{
		Code:       ExitCodeConfig,
		Message:    message,
		Suggestion: "Check ~/.config/quicktext/config.yaml or the QUICKTEXT_* environment variables.",
	}
}

func ValidationError(message string) *Error {
	return &Error{
		Code:    ExitCodeValidation,
		Message: message,
	}
}

func DocumentError(path string, err error) *Error {
	return &Error{
		Code:       ExitCodeDocument,
		Message:    fmt.Sprintf("%s '%s'", ErrMsgDocumentLoad, path),
		Underlying: err,
		Suggestion: "Pass a YAML or JSON document with --doc or set QUICKTEXT_DOCUMENT.",
	}
}

func StoreError(err error) *Error {
	return &Error{
		Code:       ExitCodeStore,
		Message:    ErrMsgStoreFailed,
		Underlying: err,
	}
}

// LayerNotFoundError reports selection ids missing from the document.
func LayerNotFoundError(ids []string, known []string) *Error {
	suggestionText := "Use 'quicktext layers' to list layer ids."
	if len(known) > 0 {
		suggestionText = "Did you mean:\n"
		for _, k := range known {
			suggestionText += fmt.Sprintf("  - %s\n", k)
		}
		suggestionText += "\nOr use 'quicktext layers' to see all layers."
	}
	return &Error{
		Code:       ExitCodeValidation,
		Message:    fmt.Sprintf("Layer not found: %s", strings.Join(ids, ", ")),
		Suggestion: suggestionText,
	}
}

func CancelledError(operation string) *Error {
	return &Error{
		Code:       ExitCodeCancellation,
		Message:    fmt.Sprintf("Operation cancelled: %s", operation),
		Suggestion: "The operation was interrupted. No changes were made.",
	}
}
