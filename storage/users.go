package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"anonbox/models"
)

var (
	ErrUsernameExists = errors.New("username already exists")
	ErrUserNotFound   = errors.New("user not found")
)

// UserStore is the account persistence contract consumed by the handlers.
type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash, message string) (models.User, error)
	UserByUsername(ctx context.Context, username string) (models.User, error)
}

const uniqueViolation = "23505"

func (s *Store) CreateUser(ctx context.Context, username, passwordHash, message string) (models.User, error) {
	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: passwordHash,
		Message:      message,
	}

	err := s.db.QueryRowContext(ctx,
		"INSERT INTO users (id, username, password_hash, message) VALUES ($1, $2, $3, $4) RETURNING created_at",
		user.ID, user.Username, user.PasswordHash, user.Message,
	).Scan(&user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return models.User{}, ErrUsernameExists
		}
		return models.User{}, err
	}

	return user, nil
}

func (s *Store) UserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User

	row := s.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash, message, created_at FROM users WHERE username = $1",
		username,
	)
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Message, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	return user, nil
}
