package users

import (
	"context"
	"database/sql"
	"errors"
)

var ErrUserNotFound = errors.New("user not found")

type (
	repoer interface {
		Register(ctx context.Context, username, passwordHash string) (bool, error)
		GetByUsername(ctx context.Context, username string) (*User, error)
	}

	repo struct {
		db *sql.DB
	}
)

func NewRepo(db *sql.DB) repoer {
	return &repo{db: db}
}

// Register persists a new user. A duplicate username is an expected,
// recoverable outcome and reported as (false, nil) rather than an error; the
// first stored record is left untouched. Any other storage failure is
// returned as-is.
func (r *repo) Register(ctx context.Context, username, passwordHash string) (bool, error) {
	stmt := `
	INSERT INTO users (username, password_hash)
	VALUES (?, ?)
	ON CONFLICT(username) DO NOTHING`

	result, err := r.db.ExecContext(ctx, stmt, username, passwordHash)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// GetByUsername looks up a user by exact, case-sensitive username.
func (r *repo) GetByUsername(ctx context.Context, username string) (*User, error) {
	stmt := `
	SELECT username, password_hash
	FROM users
	WHERE username = ?`

	var user User
	err := r.db.QueryRowContext(ctx, stmt, username).Scan(
		&user.Username,
		&user.PasswordHash,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
