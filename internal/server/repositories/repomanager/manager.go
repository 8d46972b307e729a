// Package repomanager vends the repositories backing the social network and
// owns the lifecycle of the underlying storage.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/ecosocial/internal/server/repositories/events"
	"github.com/dmitrijs2005/ecosocial/internal/server/repositories/posts"
	"github.com/dmitrijs2005/ecosocial/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/ecosocial/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Posts() posts.Repository
	Events() events.Repository
	Sessions() sessions.Repository
	Close() error
}
