package posts

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/ecosocial/internal/server/models"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	posts []models.Post
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts = append(r.posts, *post)
	stored := *post
	return &stored, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Post, len(r.posts))
	for i := range r.posts {
		p := r.posts[i]
		out[i] = &p
	}
	return out, nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts), nil
}
