package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devansh742005/under-the-hoodies/app/models"
	"github.com/devansh742005/under-the-hoodies/app/store"
	"github.com/devansh742005/under-the-hoodies/pkg/auth"
)

func TestRegisterCreatesProfileAndSignsIn(t *testing.T) {
	mem := store.NewMemory()
	svc := NewAuthService(mem)

	profile, token, err := svc.Register(context.Background(), "jo@example.com", "supersecret", "Jo Doe")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, models.RoleUser, profile.Role)
	assert.NotEqual(t, "supersecret", profile.Password, "password must be stored hashed")

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, claims.UserID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	mem := store.NewMemory()
	svc := NewAuthService(mem)

	_, _, err := svc.Register(context.Background(), "jo@example.com", "supersecret", "Jo")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "jo@example.com", "othersecret", "Jo Again")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	mem := store.NewMemory()
	svc := NewAuthService(mem)

	registered, _, err := svc.Register(context.Background(), "jo@example.com", "supersecret", "Jo")
	require.NoError(t, err)

	t.Run("good credentials", func(t *testing.T) {
		profile, token, err := svc.Login(context.Background(), "jo@example.com", "supersecret")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, profile.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "jo@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "nobody@example.com", "supersecret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
