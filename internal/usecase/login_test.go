package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

func TestLogin_storesValidToken(t *testing.T) {
	api := testutil.NewMockAPI()
	api.UserResult = &domain.User{ID: 7, Username: "maya"}
	tokens := &testutil.MockTokenStore{}

	uc := NewLogin(func(string) domain.API { return api }, tokens)
	out, err := uc.Execute(context.Background(), LoginInput{Token: " pk_123 "})

	require.NoError(t, err)
	assert.Equal(t, "maya", out.User.Username)
	assert.Equal(t, "pk_123", tokens.Stored)
}

func TestLogin_rejectedTokenNotStored(t *testing.T) {
	api := testutil.NewMockAPI()
	api.UserErr = domain.ErrNotAuthenticated
	tokens := &testutil.MockTokenStore{}

	uc := NewLogin(func(string) domain.API { return api }, tokens)
	_, err := uc.Execute(context.Background(), LoginInput{Token: "bad"})

	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	assert.Empty(t, tokens.Stored)
}

func TestLogin_emptyToken(t *testing.T) {
	uc := NewLogin(func(string) domain.API { return testutil.NewMockAPI() }, &testutil.MockTokenStore{})

	_, err := uc.Execute(context.Background(), LoginInput{Token: "  "})

	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func TestAuthStatus(t *testing.T) {
	api := testutil.NewMockAPI()
	api.UserResult = &domain.User{Username: "maya"}

	t.Run("no token", func(t *testing.T) {
		uc := NewAuthStatus(func(string) domain.API { return api }, &testutil.MockTokenStore{})

		out, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.False(t, out.Authenticated)
	})

	t.Run("stored token", func(t *testing.T) {
		tokens := &testutil.MockTokenStore{Stored: "pk_123"}
		uc := NewAuthStatus(func(string) domain.API { return api }, tokens)

		out, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.True(t, out.Authenticated)
		assert.Equal(t, "maya", out.User.Username)
	})

	t.Run("rejected token", func(t *testing.T) {
		bad := testutil.NewMockAPI()
		bad.UserErr = domain.ErrNotAuthenticated
		uc := NewAuthStatus(func(string) domain.API { return bad }, &testutil.MockTokenStore{Stored: "pk_old"})

		_, err := uc.Execute(context.Background())

		assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	})
}

func TestLogout(t *testing.T) {
	tokens := &testutil.MockTokenStore{Stored: "pk_123"}

	require.NoError(t, NewLogout(tokens).Execute(context.Background()))

	assert.Empty(t, tokens.Stored)
}
