package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/recipebook/internal/recipes/domain"
	"github.com/aussiebroadwan/recipebook/internal/recipes/store"
	"github.com/aussiebroadwan/recipebook/pkg/cryptox"
	"github.com/aussiebroadwan/recipebook/pkg/idx"
)

var (
	// ErrUsernameTaken and ErrEmailTaken are independent registration
	// conflicts; the username check always runs first.
	ErrUsernameTaken = errors.New("username_taken")
	ErrEmailTaken    = errors.New("email_taken")

	// ErrInvalidCredentials collapses "unknown user" and "wrong password"
	// so login failures don't leak which half was wrong.
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

type UserService struct {
	Store  store.Store
	Tokens *TokenService
}

// Register creates a new account. The password is hashed irreversibly before
// anything is persisted; the plaintext never leaves this function.
func (s *UserService) Register(ctx context.Context, username, email, password string) (domain.User, error) {
	if _, err := s.Store.Users().GetByUsername(ctx, username); err == nil {
		return domain.User{}, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	if _, err := s.Store.Users().GetByEmail(ctx, email); err == nil {
		return domain.User{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Store.Users().Create(ctx, u); err != nil {
		// The unique indexes backstop the checks above against races.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}
	return u, nil
}

// Login verifies the credentials and, on success, issues an access token and
// a refresh token.
func (s *UserService) Login(ctx context.Context, username, password string) (domain.TokenPair, error) {
	u, err := s.Store.Users().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, ErrInvalidCredentials
		}
		return domain.TokenPair{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		return domain.TokenPair{}, ErrInvalidCredentials
	}

	access, err := s.Tokens.IssueAccessToken(u.ID)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := s.Tokens.IssueRefreshToken(u.ID)
	if err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Authenticate resolves a bearer token to the user it was issued for. It
// fails with ErrInvalidToken both when verification fails and when the
// decoded user id no longer resolves to an existing user (a record removed
// out-of-band).
func (s *UserService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	userID, err := s.Tokens.Verify(token)
	if err != nil {
		return domain.User{}, err
	}

	u, err := s.Store.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidToken
		}
		return domain.User{}, err
	}
	return u, nil
}
