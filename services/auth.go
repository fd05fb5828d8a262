// Package services contains the authentication business logic.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gateward/gateward/core"
)

// AuthService orchestrates the user store and password hasher to implement
// signup and authenticate semantics. It is stateless per call.
type AuthService struct {
	store  core.UserStore
	hasher core.PasswordHasher
	log    zerolog.Logger
}

// Ensure AuthService implements AuthProvider
var _ core.AuthProvider = (*AuthService)(nil)

func NewAuthService(store core.UserStore, hasher core.PasswordHasher, log zerolog.Logger) *AuthService {
	return &AuthService{
		store:  store,
		hasher: hasher,
		log:    log.With().Str("component", "auth").Logger(),
	}
}

// Signup registers a new user with email and password.
//
// The store's unique constraint is the authoritative duplicate detector;
// the EmailExists pre-check only short-circuits the common case before
// paying for a password hash.
func (s *AuthService) Signup(ctx context.Context, input core.SignupInput) (*core.User, error) {
	exists, err := s.store.EmailExists(ctx, input.Email)
	if err != nil {
		err = fmt.Errorf("failed to check existing user: %w", err)
		s.log.Error().Err(err).Msg("signup failed")
		return nil, err
	}
	if exists {
		s.log.Error().Str("email", input.Email).Err(core.ErrEmailTaken).Msg("signup failed")
		return nil, core.ErrEmailTaken
	}

	hashedPassword, err := s.hasher.Hash(input.Password)
	if err != nil {
		err = fmt.Errorf("failed to hash password: %w", err)
		s.log.Error().Err(err).Msg("signup failed")
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = core.RoleUser
	}

	user := &core.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := s.store.Create(ctx, user); err != nil {
		// Two concurrent signups can both pass the pre-check; the unique
		// constraint still rejects the loser.
		if errors.Is(err, core.ErrEmailTaken) {
			s.log.Error().Str("email", input.Email).Err(core.ErrEmailTaken).Msg("signup failed")
			return nil, core.ErrEmailTaken
		}
		err = fmt.Errorf("failed to create user: %w", err)
		s.log.Error().Err(err).Msg("signup failed")
		return nil, err
	}

	s.log.Info().
		Str("name", user.Name).
		Str("email", user.Email).
		Str("role", user.Role).
		Msg("user signed up successfully")

	return user, nil
}

// Authenticate verifies credentials against the stored record without
// creating anything. An unknown email and a wrong password produce the
// same ErrInvalidCredentials so callers cannot tell which field was wrong.
func (s *AuthService) Authenticate(ctx context.Context, input core.LoginInput) (*core.User, error) {
	user, err := s.store.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			s.log.Error().Err(core.ErrInvalidCredentials).Msg("authentication failed")
			return nil, core.ErrInvalidCredentials
		}
		err = fmt.Errorf("failed to find user: %w", err)
		s.log.Error().Err(err).Msg("authentication failed")
		return nil, err
	}

	valid, err := s.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		// A hashing-primitive failure is not a credentials failure.
		err = fmt.Errorf("failed to verify password: %w", err)
		s.log.Error().Err(err).Msg("authentication failed")
		return nil, err
	}
	if !valid {
		s.log.Error().Err(core.ErrInvalidCredentials).Msg("authentication failed")
		return nil, core.ErrInvalidCredentials
	}

	s.log.Info().Str("email", user.Email).Msg("user authenticated successfully")

	return user, nil
}
