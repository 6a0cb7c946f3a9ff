// Package errors defines the proxy's fatal-error taxonomy. It is only
// ever consulted at startup (socket bind, config load, host channel
// setup) — per-message protocol errors in the core are logged and
// skipped in place, never routed through here (see pkg/server).
package errors

import (
	"fmt"
	"os"

	"waylink/pkg/logger"

	"github.com/fatih/color"
)

type ExitCode int

const (
	ExitCodeSuccess      ExitCode = 0
	ExitCodeGeneral      ExitCode = 1
	ExitCodeConfig       ExitCode = 2
	ExitCodeBind         ExitCode = 3
	ExitCodeHostChannel  ExitCode = 4
	ExitCodeFileOperation ExitCode = 5
)

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

func New(code ExitCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

func NewWithError(code ExitCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Underlying: err}
}

func NewWithSuggestion(code ExitCode, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion}
}

// BindError reports a failure to set up the listening endpoint.
func BindError(path string, err error) *Error {
	return &Error{
		Code:       ExitCodeBind,
		Message:    fmt.Sprintf("failed to bind listening endpoint %s", path),
		Underlying: err,
		Suggestion: "check that XDG_RUNTIME_DIR is writable and no other process holds the socket",
	}
}

// HostChannelError reports a failure to establish the host channel transport.
func HostChannelError(mode string, err error) *Error {
	return &Error{
		Code:       ExitCodeHostChannel,
		Message:    fmt.Sprintf("failed to establish host channel (mode=%s)", mode),
		Underlying: err,
	}
}

func ConfigError(message string) *Error {
	return &Error{
		Code:       ExitCodeConfig,
		Message:    message,
		Suggestion: "check your configuration file or the relevant environment variable",
	}
}

// Handle prints err to stderr and exits the process with its exit code.
// Only ever called from cmd/ on a fatal startup error.
func Handle(err error) {
	if err == nil {
		return
	}

	exitCode := ExitCodeGeneral
	message := err.Error()
	suggestion := ""

	if e, ok := err.(*Error); ok {
		exitCode = e.Code
		message = e.Message
		suggestion = e.Suggestion
		if e.Underlying != nil {
			logger.Error().Err(e.Underlying).Msg(e.Message)
		} else {
			logger.Error().Msg(e.Message)
		}
	} else {
		logger.Error().Msg(message)
	}

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(os.Stderr)
	red.Fprint(os.Stderr, "Error: ")
	fmt.Fprintln(os.Stderr, message)
	if suggestion != "" {
		yellow.Fprint(os.Stderr, "Suggestion: ")
		fmt.Fprintln(os.Stderr, suggestion)
	}
	fmt.Fprintln(os.Stderr)

	os.Exit(int(exitCode))
}
