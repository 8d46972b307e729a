package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/ecosocial/internal/server/migrations"
	"github.com/dmitrijs2005/ecosocial/internal/server/repositories/events"
	"github.com/dmitrijs2005/ecosocial/internal/server/repositories/posts"
	"github.com/dmitrijs2005/ecosocial/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/ecosocial/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/samber/oops"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories sharing one
// connection pool and exposes a schema migration hook.
type PostgresRepositoryManager struct {
	db       *sql.DB
	users    *users.PostgresRepository
	posts    *posts.PostgresRepository
	events   *events.PostgresRepository
	sessions *sessions.PostgresRepository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// OpenPostgres opens a pgx-backed *sql.DB and verifies it is reachable.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, oops.Code("DB_OPEN_FAILED").With("operation", "open database").Wrap(err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, oops.Code("DB_OPEN_FAILED").With("operation", "ping database").Wrap(err)
	}
	return db, nil
}

func NewPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{
		db:       db,
		users:    users.NewPostgresRepository(db),
		posts:    posts.NewPostgresRepository(db),
		events:   events.NewPostgresRepository(db),
		sessions: sessions.NewPostgresRepository(db),
	}
}

// RunMigrations applies the embedded goose migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return oops.Code("MIGRATION_FAILED").With("operation", "set dialect").Wrap(err)
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return oops.Code("MIGRATION_FAILED").With("operation", "run migrations").Wrap(err)
	}
	return nil
}

func (m *PostgresRepositoryManager) Users() users.Repository       { return m.users }
func (m *PostgresRepositoryManager) Posts() posts.Repository       { return m.posts }
func (m *PostgresRepositoryManager) Events() events.Repository     { return m.events }
func (m *PostgresRepositoryManager) Sessions() sessions.Repository { return m.sessions }

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
