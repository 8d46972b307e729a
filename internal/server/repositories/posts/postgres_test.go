package posts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/ecosocial/internal/common"
	"github.com/dmitrijs2005/ecosocial/internal/server/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const insertQuery = `(?s)^INSERT\s+INTO\s+posts\s*\(id,\s*author_id,\s*topic,\s*content,\s*created_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*$`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	at := time.Date(2025, 4, 22, 8, 0, 0, 0, time.UTC)
	mock.ExpectExec(insertQuery).
		WithArgs("p1", "u1", "water", "save it", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), &models.Post{ID: "p1", AuthorID: "u1", Topic: "water", Content: "save it", CreatedAt: at})
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ForeignKeyViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertQuery).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

	_, err := repo.Create(context.Background(), &models.Post{ID: "p1", AuthorID: "ghost"})
	assert.ErrorIs(t, err, common.ErrAuthorNotFound)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertQuery).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Post{ID: "p1"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestList(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	at := time.Date(2025, 4, 22, 8, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "author_id", "topic", "content", "created_at"}).
		AddRow("p1", "u1", "water", "a", at).
		AddRow("p2", "u2", "air", "b", at.Add(time.Minute))
	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*author_id,\s*topic,\s*content,\s*created_at\s+FROM\s+posts\s+ORDER\s+BY\s+seq\s*$`).
		WillReturnRows(rows)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "air", list[1].Topic)
	assert.True(t, at.Add(time.Minute).Equal(list[1].CreatedAt))
}

func TestList_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+posts`).WillReturnError(errors.New("boom"))

	_, err := repo.List(context.Background())
	assert.Error(t, err)
}
