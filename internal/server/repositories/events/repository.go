// Package events stores the append-only collection of events.
package events

import (
	"context"

	"github.com/dmitrijs2005/ecosocial/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	// List returns all events in insertion order.
	List(ctx context.Context) ([]*models.Event, error)
	Count(ctx context.Context) (int, error)
}
