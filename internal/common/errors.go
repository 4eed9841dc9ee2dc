// Package common defines shared constants and sentinel errors used across
// the Tastebook client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist on the
	// backend or in local storage.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized covers rejected credentials and expired access tokens
	// that could not be transparently renewed.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable covers transport-level failures: the server could not
	// be reached or did not answer in time.
	ErrUnavailable = errors.New("server unavailable")

	// ErrMissingCredentials is returned by token renewal when no member id
	// or refresh token is stored locally. Renewal cannot succeed until the
	// user logs in again, so this failure is terminal.
	ErrMissingCredentials = errors.New("missing stored credentials")
)
