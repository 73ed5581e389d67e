package client

import (
	"fmt"
	"net/http"
)

// APIError is a non-2xx backend response, carrying the decoded error
// envelope when one was present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("api: %s (status %d)", msg, e.Status)
}

// IsConflict reports whether the backend rejected the request because the
// resource already exists, e.g. a quiz generated twice for one document.
func (e *APIError) IsConflict() bool {
	return e.Status == http.StatusConflict
}
