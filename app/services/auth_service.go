package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/devansh742005/under-the-hoodies/app/models"
	"github.com/devansh742005/under-the-hoodies/app/store"
	"github.com/devansh742005/under-the-hoodies/pkg/auth"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords, so login failures don't reveal which one happened.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken is returned when registering an email that already has a
// profile.
var ErrEmailTaken = errors.New("email already registered")

type AuthService struct {
	profiles store.Profiles
}

func NewAuthService(s store.Store) *AuthService {
	return &AuthService{profiles: s.Profiles()}
}

// Register creates the profile row for a new account and returns a signed
// token, so sign-up doubles as sign-in.
func (s *AuthService) Register(ctx context.Context, email, password, fullName string) (models.Profile, string, error) {
	if _, err := s.profiles.FindByEmail(ctx, email); err == nil {
		return models.Profile{}, "", ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return models.Profile{}, "", fmt.Errorf("auth: lookup email: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.Profile{}, "", fmt.Errorf("auth: hash password: %w", err)
	}

	profile := models.Profile{
		Email:    email,
		Password: hash,
		FullName: fullName,
		Role:     models.RoleUser,
	}
	if err := s.profiles.Create(ctx, &profile); err != nil {
		return models.Profile{}, "", fmt.Errorf("auth: create profile: %w", err)
	}

	token, err := auth.GenerateToken(profile.ID, profile.Email)
	if err != nil {
		return models.Profile{}, "", fmt.Errorf("auth: sign token: %w", err)
	}

	return profile, token, nil
}

// Login checks the password against the stored hash and returns a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.Profile, string, error) {
	profile, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Profile{}, "", ErrInvalidCredentials
		}
		return models.Profile{}, "", fmt.Errorf("auth: lookup email: %w", err)
	}

	if !auth.CheckPassword(profile.Password, password) {
		return models.Profile{}, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(profile.ID, profile.Email)
	if err != nil {
		return models.Profile{}, "", fmt.Errorf("auth: sign token: %w", err)
	}

	return profile, token, nil
}
