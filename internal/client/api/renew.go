package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/mkornilov/tastebook/internal/client/credentials"
	"github.com/mkornilov/tastebook/internal/common"
	"github.com/mkornilov/tastebook/internal/logging"
)

// Renewer exchanges the stored member id + refresh token for a fresh access
// token and persists it. The mutex serializes concurrent renewals so a burst
// of 401s produces one republish call at a time instead of a stampede.
type Renewer struct {
	endpoint string
	hc       Doer
	store    credentials.Store
	log      logging.Logger

	mu sync.Mutex
}

// NewRenewer builds a Renewer against the member server. hc must be a plain
// client without the renewal transport, or a renewal failure would recurse.
func NewRenewer(memberBaseURL string, hc Doer, store credentials.Store, log logging.Logger) *Renewer {
	return &Renewer{
		endpoint: strings.TrimRight(memberBaseURL, "/") + "/member/jwt/republish",
		hc:       hc,
		store:    store,
		log:      log,
	}
}

type renewRequest struct {
	MemberID     int64  `json:"memberId"`
	RefreshToken string `json:"refreshToken"`
}

type renewResult struct {
	AccessToken string `json:"accessToken"`
}

// Renew performs one renewal round-trip. On success the new access token is
// persisted before Renew returns. On failure the previously stored token is
// left untouched. Use Retryable to classify the returned error.
func (r *Renewer) Renew(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	memberID, err := credentials.MemberID(ctx, r.store)
	if err != nil {
		return "", fmt.Errorf("failed to read member id: %w", err)
	}
	refresh, err := r.store.Load(ctx, credentials.KindRefreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to read refresh token: %w", err)
	}
	if memberID == 0 || strings.TrimSpace(refresh) == "" {
		return "", common.ErrMissingCredentials
	}

	res, err := postSingle[renewResult](ctx, r.hc, http.MethodPost, r.endpoint, nil,
		renewRequest{MemberID: memberID, RefreshToken: refresh})
	if err != nil {
		return "", fmt.Errorf("token renewal failed: %w", err)
	}
	if strings.TrimSpace(res.AccessToken) == "" {
		return "", fmt.Errorf("token renewal returned an empty token")
	}

	if err := r.store.Save(ctx, credentials.KindAccessToken, res.AccessToken); err != nil {
		return "", fmt.Errorf("failed to persist renewed token: %w", err)
	}
	if r.log != nil {
		r.log.Debug(ctx, "access token renewed", "member_id", memberID)
	}
	return res.AccessToken, nil
}

// Retryable reports whether a failed renewal is worth attempting again.
// Missing local credentials are terminal until the user logs in again;
// transport failures and server rejections may clear up later.
func Retryable(err error) bool {
	return !errors.Is(err, common.ErrMissingCredentials)
}
