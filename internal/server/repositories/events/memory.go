package events

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/ecosocial/internal/server/models"
)

type MemoryRepository struct {
	mu     sync.RWMutex
	events []models.Event
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, *event)
	stored := *event
	return &stored, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Event, len(r.events))
	for i := range r.events {
		e := r.events[i]
		out[i] = &e
	}
	return out, nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events), nil
}
