package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/ecosocial/internal/common"
	"github.com/dmitrijs2005/ecosocial/internal/dbx"
	"github.com/dmitrijs2005/ecosocial/internal/server/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Unique index names from the users migration.
const (
	usernameIndex = "users_username_lower_idx"
	emailIndex    = "users_email_lower_idx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// mapUniqueViolation translates a unique index hit into a domain error.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case usernameIndex:
		return common.ErrUsernameTaken
	case emailIndex:
		return common.ErrEmailTaken
	}
	return nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	interests, err := json.Marshal(user.Interests)
	if err != nil {
		return nil, fmt.Errorf("encode interests: %w", err)
	}

	query :=
		`INSERT INTO users (id, name, username, email, role, password_hash, interests, joined_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 `

	_, err = r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.UserName, user.Email, user.Role, user.PasswordHash, string(interests), user.JoinedAt)
	if err != nil {
		if domainErr := mapUniqueViolation(err); domainErr != nil {
			return nil, domainErr
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

const selectColumns = `SELECT id, name, username, email, role, password_hash, interests, joined_at FROM users`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}
	var interests []byte
	if err := row.Scan(&user.ID, &user.Name, &user.UserName, &user.Email, &user.Role,
		&user.PasswordHash, &interests, &user.JoinedAt); err != nil {
		return nil, err
	}
	if len(interests) > 0 {
		if err := json.Unmarshal(interests, &user.Interests); err != nil {
			return nil, fmt.Errorf("decode interests: %w", err)
		}
	}
	user.JoinedAt = user.JoinedAt.UTC()
	return user, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, selectColumns+` WHERE id = $1`, id)
}

func (r *PostgresRepository) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	return r.getOne(ctx, selectColumns+` WHERE lower(username) = lower($1) ORDER BY seq LIMIT 1`, login)
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	n, err := dbx.Count(ctx, r.db, `SELECT count(*) FROM users`)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
