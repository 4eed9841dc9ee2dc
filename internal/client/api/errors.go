package api

import (
	"fmt"

	"github.com/mkornilov/tastebook/internal/common"
)

// ServerError is a non-2xx response from a backend service. Code and Message
// come from the error body when the server sent one.
type ServerError struct {
	Status  int
	Code    string
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server error %d", e.Status)
}

// Unwrap maps well-known statuses onto shared sentinels so call sites can
// use errors.Is without inspecting status codes.
func (e *ServerError) Unwrap() error {
	switch e.Status {
	case 401, 403:
		return common.ErrUnauthorized
	case 404:
		return common.ErrNotFound
	}
	return nil
}
