// Package posts stores the append-only collection of posts.
package posts

import (
	"context"

	"github.com/dmitrijs2005/ecosocial/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	// List returns all posts in insertion order.
	List(ctx context.Context) ([]*models.Post, error)
	Count(ctx context.Context) (int, error)
}
