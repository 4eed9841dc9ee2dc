package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/mkornilov/tastebook/internal/client/credentials"
	"github.com/mkornilov/tastebook/internal/logging"
)

// BearerTransport attaches the stored access token to every outgoing request
// as an Authorization: Bearer header. When no non-blank token is stored the
// request passes through unmodified. A failed store read degrades to an
// unauthenticated request rather than an error; the backend is the one that
// rejects, not the client.
type BearerTransport struct {
	Store credentials.Store
	Base  http.RoundTripper
	Log   logging.Logger
}

func (t *BearerTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.Store.Load(req.Context(), credentials.KindAccessToken)
	if err != nil {
		if t.Log != nil {
			t.Log.Warn(req.Context(), "credential read failed, sending request unauthenticated", "error", err)
		}
		token = ""
	}
	if strings.TrimSpace(token) != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return t.base().RoundTrip(req)
}

// RenewTransport turns an expired access token into exactly one transparent
// renew-and-retry per request, invisible to the caller. Base is expected to
// be a BearerTransport so the retried request picks up the fresh token.
type RenewTransport struct {
	Base    http.RoundTripper
	Renewer *Renewer
	Log     logging.Logger
}

func (t *RenewTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.Base.RoundTrip(req)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}

	// A consumed body without GetBody cannot be replayed.
	if req.Body != nil && req.GetBody == nil {
		return resp, nil
	}

	if _, rerr := t.Renewer.Renew(req.Context()); rerr != nil {
		if t.Log != nil {
			t.Log.Warn(req.Context(), "token renewal failed", "error", rerr, "retryable", Retryable(rerr))
		}
		return resp, nil
	}

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, berr := req.GetBody()
		if berr != nil {
			return resp, nil
		}
		retry.Body = body
	}

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	resp.Body.Close()

	// The retry goes through Base directly, so a second 401 is returned
	// as-is instead of triggering another renewal.
	return t.Base.RoundTrip(retry)
}
