// Package credentials persists the login state of the Tastebook client:
// access token, refresh token and member id, stored as three independent
// key-value pairs. Values are opaque; no validation or encryption happens
// client-side, and there is no atomicity guarantee across the three keys.
package credentials

import (
	"context"
	"strconv"
	"strings"
)

// Kind names one stored credential.
type Kind string

const (
	KindAccessToken  Kind = "access_token"
	KindRefreshToken Kind = "refresh_token"
	KindMemberID     Kind = "member_id"
)

// Store is the narrow capability interface handed to components that need
// credential access. Writes must be durable before the call returns.
// Load returns ("", nil) when the key is absent.
type Store interface {
	Save(ctx context.Context, kind Kind, value string) error
	Load(ctx context.Context, kind Kind) (string, error)
	Clear(ctx context.Context) error
}

// HasValid reports whether a usable access token is stored. A non-blank
// token is the sole validity signal; expiry is left to the backend.
func HasValid(ctx context.Context, s Store) bool {
	token, err := s.Load(ctx, KindAccessToken)
	if err != nil {
		return false
	}
	return strings.TrimSpace(token) != ""
}

// MemberID loads the stored member id. Returns 0 when absent or unparsable.
func MemberID(ctx context.Context, s Store) (int64, error) {
	raw, err := s.Load(ctx, KindMemberID)
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, nil
	}
	return id, nil
}
