package utils

import "github.com/google/uuid"

// NewID returns a fresh UUID v4 string, used for note and project
// identifiers and request trace ids.
func NewID() string {
	return uuid.NewString()
}
