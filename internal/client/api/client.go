// Package api contains the HTTP plumbing shared by the per-feature remote
// services, plus the services themselves: member, recipe, chat and search.
//
// Two response shapes exist backend-wide: single-value endpoints wrap their
// payload in {resultCode, result}, paginated endpoints return
// {content, totalCount}. The generic helpers below decode both and map
// failures onto the sentinels in internal/common.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/mkornilov/tastebook/internal/client/models"
	"github.com/mkornilov/tastebook/internal/common"
)

// Doer is the request-execution seam. Production code passes an *http.Client
// whose transport chain attaches the bearer token and handles 401 renewal;
// tests pass whatever they need.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// maxErrorBody bounds how much of an error response body is read when
// extracting a server-provided message.
const maxErrorBody = 1 << 16

// errorBody is the best-effort shape of backend error payloads.
type errorBody struct {
	ResultCode string `json:"resultCode"`
	Message    string `json:"message"`
}

func withQuery(rawurl string, q url.Values) string {
	if len(q) == 0 {
		return rawurl
	}
	return rawurl + "?" + q.Encode()
}

func send(d Doer, req *http.Request) (*http.Response, error) {
	req.Header.Set("X-Request-ID", uuid.NewString())
	req.Header.Set("Accept", "application/json")
	resp, err := d.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	return resp, nil
}

// newServerError drains the response body looking for a structured message.
func newServerError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	serr := &ServerError{Status: resp.StatusCode}
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		serr.Code = body.ResultCode
		serr.Message = body.Message
	}
	return serr
}

// getSingle issues a GET against a single-value endpoint and unwraps the
// {resultCode, result} envelope.
func getSingle[T any](ctx context.Context, d Doer, rawurl string, q url.Values) (T, error) {
	var zero T
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, withQuery(rawurl, q), nil)
	if err != nil {
		return zero, fmt.Errorf("failed to build request: %w", err)
	}
	return roundTripSingle[T](d, req)
}

// postSingle issues a request with an optional JSON body against a
// single-value endpoint.
func postSingle[T any](ctx context.Context, d Doer, method, rawurl string, q url.Values, body any) (T, error) {
	var zero T
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("failed to encode request body: %w", err)
		}
		rd = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, withQuery(rawurl, q), rd)
	if err != nil {
		return zero, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return roundTripSingle[T](d, req)
}

// postMultipart issues a multipart/form-data request against a single-value
// endpoint. Scalar fields travel as named text parts, images as file parts.
func postMultipart[T any](ctx context.Context, d Doer, method, rawurl string, form *Form) (T, error) {
	var zero T
	data, contentType, err := form.Encode()
	if err != nil {
		return zero, fmt.Errorf("failed to encode multipart form: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawurl, bytes.NewReader(data))
	if err != nil {
		return zero, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	return roundTripSingle[T](d, req)
}

func roundTripSingle[T any](d Doer, req *http.Request) (T, error) {
	var zero T
	resp, err := send(d, req)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return zero, newServerError(resp)
	}

	var env models.Envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return zero, fmt.Errorf("failed to decode response: %w", err)
	}
	return env.Result, nil
}

// getPage issues a GET against a paginated endpoint and decodes the
// {content, totalCount} envelope.
func getPage[T any](ctx context.Context, d Doer, rawurl string, q url.Values) (models.Page[T], error) {
	var zero models.Page[T]
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, withQuery(rawurl, q), nil)
	if err != nil {
		return zero, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := send(d, req)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return zero, newServerError(resp)
	}

	var page models.Page[T]
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return zero, fmt.Errorf("failed to decode page: %w", err)
	}
	return page, nil
}

// doVoid issues a request whose response body carries nothing the client
// needs beyond the status code. Some void endpoints answer with an empty
// body rather than an envelope, so no decoding is attempted.
func doVoid(ctx context.Context, d Doer, method, rawurl string, q url.Values, body any) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		rd = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, withQuery(rawurl, q), rd)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := send(d, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newServerError(resp)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	return nil
}
