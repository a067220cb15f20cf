package agent

import (
	"errors"
	"fmt"
)

// ErrEmptyMessage is returned before any network call when the chat message
// is empty.
var ErrEmptyMessage = errors.New("message cannot be empty")

// DirectoryError reports a non-success HTTP status from the agent directory.
// Name is empty for list requests.
type DirectoryError struct {
	Name       string
	StatusCode int
}

func (e *DirectoryError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("agent %q not found: HTTP %d", e.Name, e.StatusCode)
	}
	return fmt.Sprintf("failed to list agents: HTTP %d", e.StatusCode)
}

// StreamError reports a transport failure while consuming an event stream.
type StreamError struct {
	Err error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("event stream failed: %v", e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}
