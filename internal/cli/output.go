package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"mini-rules/internal/model"
	"mini-rules/internal/rules"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Rejected input (invalid price, failed validation, ...)
	ExitCommandError = 2 // Command error (bad configuration, unreachable source, ...)
)

// ExitError carries an exit code. Reported errors were already written by
// the formatter and must not be printed again.
type ExitError struct {
	Code     int
	Message  string
	Err      error
	Reported bool
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

// GetExitCode extracts the exit code from an error.
// Returns ExitCommandError if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// IsReported reports whether err was already written to the output.
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Reported
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Response is the JSON envelope for every command.
type Response struct {
	Status string         `json:"status"` // "ok" or "error"
	Data   any            `json:"data,omitempty"`
	Error  *ResponseError `json:"error,omitempty"`
}

// ResponseError describes a rejected command.
type ResponseError struct {
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Messages []string `json:"messages,omitempty"`
}

// Success writes text in text mode and data in JSON mode.
func (f *OutputFormatter) Success(text string, data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(Response{Status: "ok", Data: data})
	}
	_, err := fmt.Fprintln(f.Writer, text)
	return err
}

// Fail writes err and returns a reported ExitError with ExitFailure.
// Domain errors keep their code.
func (f *OutputFormatter) Fail(err error, messages ...string) error {
	code := "ERROR"
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		code = domainErr.Code
	} else if rules.ExtractValidationErrors(err) != nil {
		code = "VALIDATION_FAILED"
	}

	if f.Format == "json" {
		if encErr := json.NewEncoder(f.Writer).Encode(Response{
			Status: "error",
			Error:  &ResponseError{Code: code, Message: err.Error(), Messages: messages},
		}); encErr != nil {
			return encErr
		}
	} else {
		fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, err.Error())
	}

	return &ExitError{Code: ExitFailure, Message: "command rejected", Err: err, Reported: true}
}
