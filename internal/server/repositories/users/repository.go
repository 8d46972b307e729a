// Package users stores registered users. Implementations must enforce
// case-insensitive uniqueness of usernames and emails atomically with the
// insert.
package users

import (
	"context"

	"github.com/dmitrijs2005/ecosocial/internal/server/models"
)

type Repository interface {
	// Create stores user. It returns common.ErrUsernameTaken or
	// common.ErrEmailTaken when either field collides case-insensitively
	// with an existing user; the username is checked first.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// List returns all users in insertion order.
	List(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetUserByLogin matches the username case-insensitively.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	Count(ctx context.Context) (int, error)
}
