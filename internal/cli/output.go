package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/swima/internal/swid"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Collection failure (generator, database, extraction)
	ExitCommandError = 2 // Command error (bad flags, unreadable target file)
)

// ExitError represents an error with a specific exit code.
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

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`    // status code (NOT_FOUND, FAILED, ...)
	Message string `json:"message"` // human-readable message
}

// inventoryPayload is the JSON shape of an inventory listing.
type inventoryPayload struct {
	Watermark swid.Watermark `json:"watermark"`
	Records   []swid.Record  `json:"records"`
}

// eventsPayload is the JSON shape of an event-delta listing.
type eventsPayload struct {
	Watermark swid.Watermark `json:"watermark"`
	Events    []swid.Event   `json:"events"`
}

// writeInventory renders an inventory in the requested format.
func writeInventory(w io.Writer, format string, inv *swid.Inventory) error {
	if format == "json" {
		return json.NewEncoder(w).Encode(CLIResponse{
			Status: "ok",
			Data: inventoryPayload{
				Watermark: inv.Watermark(),
				Records:   inv.Records(),
			},
		})
	}

	wm := inv.Watermark()
	fmt.Fprintf(w, "%d software records (eid %d, epoch %d)\n", inv.Count(), wm.EID, wm.Epoch)
	for _, rec := range inv.Records() {
		fmt.Fprintf(w, "[%s] %s", rec.Source, rec.SoftwareID)
		if rec.Locator != "" {
			fmt.Fprintf(w, " locator=%s", rec.Locator)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// writeEvents renders an event delta in the requested format.
func writeEvents(w io.Writer, format string, log *swid.EventLog) error {
	if format == "json" {
		return json.NewEncoder(w).Encode(CLIResponse{
			Status: "ok",
			Data: eventsPayload{
				Watermark: log.Watermark(),
				Events:    log.Events(),
			},
		})
	}

	wm := log.Watermark()
	fmt.Fprintf(w, "%d events since eid %d (epoch %d)\n", log.Count(), wm.EID, wm.Epoch)
	for _, ev := range log.Events() {
		fmt.Fprintf(w, "eid %d %s %s %s\n", ev.EventID, ev.Timestamp, ev.Action, ev.Record.SoftwareID)
	}
	return nil
}

// writeError renders a failure in the requested format.
func writeError(w io.Writer, format string, err error) {
	if format == "json" {
		_ = json.NewEncoder(w).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    string(swid.StatusOf(err)),
				Message: err.Error(),
			},
		})
		return
	}
	fmt.Fprintf(w, "Error [%s]: %v\n", swid.StatusOf(err), err)
}
