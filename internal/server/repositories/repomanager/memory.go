package repomanager

import (
	"context"

	"github.com/dmitrijs2005/ecosocial/internal/server/repositories/events"
	"github.com/dmitrijs2005/ecosocial/internal/server/repositories/posts"
	"github.com/dmitrijs2005/ecosocial/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/ecosocial/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps every store in process memory. Each store
// guards itself with its own lock.
type MemoryRepositoryManager struct {
	users    *users.MemoryRepository
	posts    *posts.MemoryRepository
	events   *events.MemoryRepository
	sessions *sessions.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:    users.NewMemoryRepository(),
		posts:    posts.NewMemoryRepository(),
		events:   events.NewMemoryRepository(),
		sessions: sessions.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }
func (m *MemoryRepositoryManager) Users() users.Repository            { return m.users }
func (m *MemoryRepositoryManager) Posts() posts.Repository            { return m.posts }
func (m *MemoryRepositoryManager) Events() events.Repository          { return m.events }
func (m *MemoryRepositoryManager) Sessions() sessions.Repository      { return m.sessions }
func (m *MemoryRepositoryManager) Close() error                       { return nil }
