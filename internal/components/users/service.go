package users

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers unknown username and wrong password alike,
	// so login failures never reveal which half was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrMissingFields    = errors.New("username and password are required")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrUsernameTaken    = errors.New("username already exists")
)

type (
	Servicer interface {
		SignUp(ctx context.Context, in SignUpIn) error
		ValidateCredentials(ctx context.Context, username, password string) (*User, error)
	}

	service struct {
		repo repoer
	}
)

func NewService(repo repoer) Servicer {
	return &service{repo: repo}
}

// SignUp validates the form and creates the account. Validation runs before
// any store call: a mismatched confirmation never reaches the database.
// Passwords are stored bcrypt-hashed, never plaintext.
func (s *service) SignUp(ctx context.Context, in SignUpIn) error {
	if in.Username == "" || in.Password == "" {
		return ErrMissingFields
	}
	if in.Password != in.ConfirmPassword {
		return ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	created, err := s.repo.Register(ctx, in.Username, string(hash))
	if err != nil {
		return err
	}
	if !created {
		return ErrUsernameTaken
	}
	return nil
}

// ValidateCredentials checks username and password. The username match is
// exact and case-sensitive; both failure shapes return ErrInvalidCredentials.
func (s *service) ValidateCredentials(ctx context.Context, username, password string) (*User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) || errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
