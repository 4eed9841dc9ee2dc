// Package services contains the application services behind each screen of
// the Tastebook client: they glue the remote API clients, the paginated
// state holders and the credential store together.
package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mkornilov/tastebook/internal/client/api"
	"github.com/mkornilov/tastebook/internal/client/credentials"
	"github.com/mkornilov/tastebook/internal/client/models"
	"github.com/mkornilov/tastebook/internal/logging"
)

// memberAPI is the slice of the member service the auth flow needs.
type memberAPI interface {
	Login(ctx context.Context, email, password string) (models.Credentials, error)
	Logout(ctx context.Context) error
	Signup(ctx context.Context, form api.SignupForm) error
	Deactivate(ctx context.Context) error
}

// AuthService owns the login state of the client.
//
// Contract:
//   - Login: authenticate and persist the credential triple.
//   - Logout: invalidate the server session and wipe local credentials.
//   - Signup: create a new account (no implicit login).
//   - Deactivate: close the account and wipe local credentials.
//   - IsLoggedIn / MemberID: read the stored state.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	Signup(ctx context.Context, form api.SignupForm) error
	Deactivate(ctx context.Context) error
	IsLoggedIn(ctx context.Context) bool
	MemberID(ctx context.Context) int64
}

type authService struct {
	members memberAPI
	store   credentials.Store
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the given member API
// client and credential store.
func NewAuthService(members memberAPI, store credentials.Store, log logging.Logger) AuthService {
	return &authService{members: members, store: store, log: log}
}

// Login authenticates against the member server and persists the access
// token, refresh token and member id. The three writes are independent;
// a failure partway leaves earlier keys written.
func (a *authService) Login(ctx context.Context, email, password string) error {
	creds, err := a.members.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := a.store.Save(ctx, credentials.KindAccessToken, creds.AccessToken); err != nil {
		return fmt.Errorf("failed to persist access token: %w", err)
	}
	if err := a.store.Save(ctx, credentials.KindRefreshToken, creds.RefreshToken); err != nil {
		return fmt.Errorf("failed to persist refresh token: %w", err)
	}
	if err := a.store.Save(ctx, credentials.KindMemberID, strconv.FormatInt(creds.MemberID, 10)); err != nil {
		return fmt.Errorf("failed to persist member id: %w", err)
	}

	a.log.Info(ctx, "logged in", "member_id", creds.MemberID)
	return nil
}

// Logout tells the server to drop the session, then wipes local
// credentials. A failed server call still wipes: the local state is what
// keeps the user logged in.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.members.Logout(ctx); err != nil {
		a.log.Warn(ctx, "server logout failed, clearing local credentials anyway", "error", err)
	}
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}

func (a *authService) Signup(ctx context.Context, form api.SignupForm) error {
	if err := a.members.Signup(ctx, form); err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}
	return nil
}

// Deactivate closes the account server-side and wipes local credentials.
// Unlike Logout, a failed server call aborts: the account still exists.
func (a *authService) Deactivate(ctx context.Context) error {
	if err := a.members.Deactivate(ctx); err != nil {
		return fmt.Errorf("deactivation failed: %w", err)
	}
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}

func (a *authService) IsLoggedIn(ctx context.Context) bool {
	return credentials.HasValid(ctx, a.store)
}

func (a *authService) MemberID(ctx context.Context) int64 {
	id, err := credentials.MemberID(ctx, a.store)
	if err != nil {
		return 0
	}
	return id
}
