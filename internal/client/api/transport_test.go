package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkornilov/tastebook/internal/client/credentials"
)

// memStore is an in-memory credentials.Store for transport tests.
type memStore struct {
	mu      sync.Mutex
	vals    map[credentials.Kind]string
	loadErr error
}

func newMemStore() *memStore {
	return &memStore{vals: map[credentials.Kind]string{}}
}

func (m *memStore) Save(_ context.Context, kind credentials.Kind, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vals[kind] = value
	return nil
}

func (m *memStore) Load(_ context.Context, kind credentials.Kind) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return "", m.loadErr
	}
	return m.vals[kind], nil
}

func (m *memStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vals = map[credentials.Kind]string{}
	return nil
}

func TestBearerTransport_AttachesStoredToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	t.Cleanup(srv.Close)

	store := newMemStore()
	require.NoError(t, store.Save(context.Background(), credentials.KindAccessToken, "T1"))

	hc := &http.Client{Transport: &BearerTransport{Store: store}}
	resp, err := hc.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, "Bearer T1", gotAuth)
}

func TestBearerTransport_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, present = r.Header["Authorization"]
	}))
	t.Cleanup(srv.Close)

	hc := &http.Client{Transport: &BearerTransport{Store: newMemStore()}}
	resp, err := hc.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	require.Empty(t, gotAuth)
	require.False(t, present, "Authorization header must be absent, not blank")
}

func TestBearerTransport_BlankTokenNoHeader(t *testing.T) {
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header["Authorization"]
	}))
	t.Cleanup(srv.Close)

	store := newMemStore()
	require.NoError(t, store.Save(context.Background(), credentials.KindAccessToken, "   "))

	hc := &http.Client{Transport: &BearerTransport{Store: store}}
	resp, err := hc.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	require.False(t, present)
}

func TestBearerTransport_StoreFailureFailsOpen(t *testing.T) {
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header["Authorization"]
	}))
	t.Cleanup(srv.Close)

	store := newMemStore()
	store.loadErr = errors.New("disk on fire")

	hc := &http.Client{Transport: &BearerTransport{Store: store}}
	resp, err := hc.Get(srv.URL)
	require.NoError(t, err, "request must proceed unauthenticated, not fail")
	resp.Body.Close()

	require.False(t, present)
}

// renewBackend is a member+recipe stand-in: /member/jwt/republish issues
// fresh tokens, everything else requires the current one.
func renewBackend(t *testing.T, validToken *string, renewed *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/member/jwt/republish" {
			*renewed++
			*validToken = "T2"
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"resultCode":"SUCCESS","result":{"accessToken":"T2"}}`))
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+*validToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"resultCode":"SUCCESS","result":"ok"}`))
	}))
}

func TestRenewTransport_TransparentRenewAndRetry(t *testing.T) {
	validToken := "T2-not-yet"
	renewed := 0
	srv := renewBackend(t, &validToken, &renewed)
	t.Cleanup(srv.Close)

	ctx := context.Background()
	store := newMemStore()
	require.NoError(t, store.Save(ctx, credentials.KindAccessToken, "T1-expired"))
	require.NoError(t, store.Save(ctx, credentials.KindRefreshToken, "R1"))
	require.NoError(t, store.Save(ctx, credentials.KindMemberID, "42"))

	renewer := NewRenewer(srv.URL, &http.Client{}, store, nil)
	bearer := &BearerTransport{Store: store}
	hc := &http.Client{Transport: &RenewTransport{Base: bearer, Renewer: renewer}}

	got, err := getSingle[string](ctx, hc, srv.URL+"/recipe/getRecipeDetail", nil)
	require.NoError(t, err)
	require.Equal(t, "ok", got)
	require.Equal(t, 1, renewed, "exactly one renewal per request")

	token, err := store.Load(ctx, credentials.KindAccessToken)
	require.NoError(t, err)
	require.Equal(t, "T2", token, "renewed token must be persisted")
}

func TestRenewTransport_SecondUnauthorizedSurfaces(t *testing.T) {
	renewCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/member/jwt/republish" {
			renewCalls++
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"resultCode":"SUCCESS","result":{"accessToken":"T2"}}`))
			return
		}
		// Token is rejected no matter what: renewal must not loop.
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	ctx := context.Background()
	store := newMemStore()
	require.NoError(t, store.Save(ctx, credentials.KindAccessToken, "T1"))
	require.NoError(t, store.Save(ctx, credentials.KindRefreshToken, "R1"))
	require.NoError(t, store.Save(ctx, credentials.KindMemberID, "42"))

	renewer := NewRenewer(srv.URL, &http.Client{}, store, nil)
	hc := &http.Client{Transport: &RenewTransport{Base: &BearerTransport{Store: store}, Renewer: renewer}}

	_, err := getSingle[string](ctx, hc, srv.URL+"/recipe/list", nil)
	require.Error(t, err)
	var serr *ServerError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, http.StatusUnauthorized, serr.Status)
	require.Equal(t, 1, renewCalls)
}

func TestRenewTransport_RenewalFailureReturnsOriginalResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/member/jwt/republish" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	ctx := context.Background()
	store := newMemStore()
	require.NoError(t, store.Save(ctx, credentials.KindAccessToken, "T1"))
	require.NoError(t, store.Save(ctx, credentials.KindRefreshToken, "R1"))
	require.NoError(t, store.Save(ctx, credentials.KindMemberID, "42"))

	renewer := NewRenewer(srv.URL, &http.Client{}, store, nil)
	hc := &http.Client{Transport: &RenewTransport{Base: &BearerTransport{Store: store}, Renewer: renewer}}

	_, err := getSingle[string](ctx, hc, srv.URL+"/recipe/list", nil)
	var serr *ServerError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, http.StatusUnauthorized, serr.Status)
}
