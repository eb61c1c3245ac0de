// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/inkwell/inkwell/internal/auth"
	"github.com/inkwell/inkwell/internal/metrics"
	"github.com/inkwell/inkwell/internal/model"
	"github.com/inkwell/inkwell/internal/repository"
)

// Service errors.
var (
	ErrEmailTaken      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrMissingSecret   = auth.ErrMissingSecret
	ErrInvalidPassword = errors.New("invalid password")
)

// UserService handles signup and signin.
type UserService struct {
	repo          *repository.Repository
	signer        *auth.Signer
	metrics       metrics.Recorder
	hashPasswords bool
}

// NewUserService creates a new UserService.
// hashPasswords switches credential storage from the default verbatim
// behavior to argon2id hashing.
func NewUserService(repo *repository.Repository, signer *auth.Signer, recorder metrics.Recorder, hashPasswords bool) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		repo:          repo,
		signer:        signer,
		metrics:       recorder,
		hashPasswords: hashPasswords,
	}
}

// SignupInput defines input for creating an account.
type SignupInput struct {
	Email    string
	Password string
	Name     *string
}

// Signup creates a new user and returns a signed identity token.
// The signing secret is checked before any store access: a
// misconfigured deployment fails with ErrMissingSecret even when the
// email is already taken.
func (s *UserService) Signup(ctx context.Context, input SignupInput) (string, error) {
	if err := s.signer.Ready(); err != nil {
		return "", err
	}

	_, err := s.repo.GetUserByEmail(ctx, input.Email)
	if err == nil {
		return "", ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return "", fmt.Errorf("failed to check existing user: %w", err)
	}

	password := input.Password
	if s.hashPasswords {
		password, err = auth.HashPassword(input.Password)
		if err != nil {
			return "", fmt.Errorf("failed to hash password: %w", err)
		}
	}

	user := &model.User{
		ID:        ulid.Make().String(),
		Email:     input.Email,
		Password:  password,
		Name:      input.Name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		// Concurrent signup with the same email loses the race at the
		// store's uniqueness constraint.
		if errors.Is(err, repository.ErrEmailExists) {
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.signer.Sign(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	s.metrics.IncUserSignup()

	return token, nil
}

// SigninInput defines input for authenticating an account.
type SigninInput struct {
	Email    string
	Password string
}

// Signin verifies credentials and returns a signed identity token.
// A credential mismatch is ErrUserNotFound in both storage modes; the
// caller cannot tell a wrong password from an unknown email.
func (s *UserService) Signin(ctx context.Context, input SigninInput) (string, error) {
	user, err := s.lookupByCredentials(ctx, input)
	if err != nil {
		return "", err
	}

	token, err := s.signer.Sign(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	s.metrics.IncUserSignin()

	return token, nil
}

func (s *UserService) lookupByCredentials(ctx context.Context, input SigninInput) (*model.User, error) {
	if !s.hashPasswords {
		// Verbatim mode: the store matches email and password in one
		// equality predicate, which is the wire contract for this mode.
		user, err := s.repo.GetUserByEmailAndPassword(ctx, input.Email, input.Password)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		return user, nil
	}

	user, err := s.repo.GetUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	match, err := auth.VerifyPassword(input.Password, user.Password)
	if err != nil || !match {
		return nil, ErrUserNotFound
	}

	return user, nil
}
