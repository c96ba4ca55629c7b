package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized indicates the configured API token was rejected.
var ErrUnauthorized = errors.New("vault API token rejected")

// ValidationError is the structured 400 response for a rejected import
// batch. Keys are shaped like "Ciphers[3].Name", "Folders[1]" or
// "Collections[0]"; the orchestrator remaps them onto the original
// canonical entities for display.
type ValidationError struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"validationErrors"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("import rejected: %s (%d invalid entries)", e.Message, len(e.Errors))
}

// ServerError represents a 5xx response from the vault API.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("vault server error: HTTP %d", e.StatusCode)
}
