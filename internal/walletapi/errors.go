package walletapi

import (
	"encoding/json"
	"fmt"
)

// ErrorEntry is one structured error in a wallet service error body.
// A non-empty Description marks the error as description-bearing.
type ErrorEntry struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

type errorBody struct {
	Errors []ErrorEntry `json:"errors"`
}

// StatusError is the typed failure returned by every client call. Status 0
// means the request never produced an HTTP response (transport failure).
// Entries is nil when the error body could not be parsed.
type StatusError struct {
	Status  int
	Entries []ErrorEntry
	Body    []byte
	Cause   error
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Status == 0 {
		if e.Cause != nil {
			return fmt.Sprintf("wallet api unreachable: %v", e.Cause)
		}
		return "wallet api unreachable"
	}
	if len(e.Entries) > 0 {
		return fmt.Sprintf("wallet api status %d: %s", e.Status, e.Entries[0].Message)
	}
	return fmt.Sprintf("wallet api status %d", e.Status)
}

// Unwrap exposes the transport cause, if any.
func (e *StatusError) Unwrap() error {
	return e.Cause
}

func newStatusError(status int, body []byte) *StatusError {
	se := &StatusError{Status: status, Body: body}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		se.Entries = eb.Errors
	}
	return se
}
