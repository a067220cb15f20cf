package agent

import "github.com/google/uuid"

// NewSessionID returns a fresh session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// ValidSessionID reports whether s is a well-formed session identifier.
func ValidSessionID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
