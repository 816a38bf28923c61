package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for the pick CLI.
const (
	ExitSuccess      = 0 // A choice was accepted and saved
	ExitFailure      = 1 // No pick happened (aborted, or every choice exhausted)
	ExitCommandError = 2 // Command error (bad config, missing category, IO failure)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// PickResponse is the structured result for --format json.
type PickResponse struct {
	Status   string `json:"status"`             // "ok" or "error"
	Outcome  string `json:"outcome,omitempty"`  // "picked" | "aborted" | "exhausted"
	Category string `json:"category,omitempty"` // category the pick ran against
	Pick     string `json:"pick,omitempty"`     // accepted choice name
	Token    string `json:"token,omitempty"`    // pick correlation token
	Error    string `json:"error,omitempty"`    // error message (status "error")
}

// WriteJSON encodes the response on one line.
func (r PickResponse) WriteJSON(w io.Writer) error {
	return json.NewEncoder(w).Encode(r)
}
