// Package sessions stores active login sessions keyed by opaque token.
package sessions

import (
	"context"

	"github.com/dmitrijs2005/ecosocial/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, session *models.Session) error
	// Find returns common.ErrorNotFound for unknown tokens.
	Find(ctx context.Context, token string) (*models.Session, error)
	// Delete removes the session and reports whether it existed.
	Delete(ctx context.Context, token string) (bool, error)
	Count(ctx context.Context) (int, error)
}
