package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// APIFactory builds a service client for a token. Login needs it because
// the token to validate is not stored yet.
type APIFactory func(token string) domain.API

// LoginInput contains the token to validate and store.
type LoginInput struct {
	Token string
}

// LoginOutput contains the user the token belongs to.
type LoginOutput struct {
	User domain.User
}

// Login validates an API token against the service and persists it.
type Login struct {
	newAPI APIFactory
	tokens domain.TokenStore
}

// NewLogin creates a new Login use case.
func NewLogin(newAPI APIFactory, tokens domain.TokenStore) *Login {
	return &Login{newAPI: newAPI, tokens: tokens}
}

// Execute validates the token and stores it. An invalid token is never
// stored.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	token := strings.TrimSpace(in.Token)
	if token == "" {
		return nil, domain.ErrTokenNotFound
	}

	user, err := uc.newAPI(token).AuthorizedUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("validate token: %w", err)
	}

	if err := uc.tokens.Save(token); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}

	return &LoginOutput{User: *user}, nil
}

// AuthStatusOutput describes the stored credential.
// Fields are ordered to minimize memory padding.
type AuthStatusOutput struct {
	User          *domain.User
	Authenticated bool
}

// AuthStatus reports whether a token is stored and whom it belongs to.
type AuthStatus struct {
	newAPI APIFactory
	tokens domain.TokenStore
}

// NewAuthStatus creates a new AuthStatus use case.
func NewAuthStatus(newAPI APIFactory, tokens domain.TokenStore) *AuthStatus {
	return &AuthStatus{newAPI: newAPI, tokens: tokens}
}

// Execute checks the stored token. A missing token yields Authenticated
// false without error; a stored but rejected token yields an error.
func (uc *AuthStatus) Execute(ctx context.Context) (*AuthStatusOutput, error) {
	token, err := uc.tokens.Token()
	if err != nil {
		return &AuthStatusOutput{}, nil
	}

	user, err := uc.newAPI(token).AuthorizedUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("check token: %w", err)
	}

	return &AuthStatusOutput{Authenticated: true, User: user}, nil
}

// Logout removes the stored token.
type Logout struct {
	tokens domain.TokenStore
}

// NewLogout creates a new Logout use case.
func NewLogout(tokens domain.TokenStore) *Logout {
	return &Logout{tokens: tokens}
}

// Execute clears the token. Logging out while logged out is not an error.
func (uc *Logout) Execute(_ context.Context) error {
	return uc.tokens.Clear()
}
