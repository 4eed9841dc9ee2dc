// Package models mirrors the JSON payloads exchanged with the Tastebook
// backend services. The backend owns every schema; these types exist only
// for (de)serialization and carry no client-side behavior.
package models

// Envelope is the uniform response wrapper for single-value endpoints.
type Envelope[T any] struct {
	ResultCode string `json:"resultCode"`
	Result     T      `json:"result"`
}

// Page is one immutable slice of a server-side ordered list.
type Page[T any] struct {
	Content    []T   `json:"content"`
	TotalCount int64 `json:"totalCount"`
}

// Credentials is the token triple returned by login and persisted locally.
type Credentials struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	MemberID     int64  `json:"memberId"`
}
