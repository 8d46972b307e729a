package services

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/ecosocial/internal/common"
	"github.com/dmitrijs2005/ecosocial/internal/server/models"
	"github.com/dmitrijs2005/ecosocial/internal/server/repositories/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRegistry_Lifecycle(t *testing.T) {
	ctx := context.Background()
	r := NewSessionRegistry(sessions.NewMemoryRepository(), 0, time.Now)

	token, err := r.Issue(ctx, "u1")
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err, "token must be url-safe")
	assert.Len(t, raw, DefaultTokenBytes)

	userID, ok, err := r.Resolve(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "u1", userID)

	ok, err = r.Revoke(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)

	_, ok, err = r.Resolve(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.Revoke(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok, "second revoke finds nothing")
}

func TestSessionRegistry_IndependentSessions(t *testing.T) {
	ctx := context.Background()
	r := NewSessionRegistry(sessions.NewMemoryRepository(), 16, time.Now)

	seen := map[string]bool{}
	var tokens []string
	for i := 0; i < 50; i++ {
		token, err := r.Issue(ctx, "same-user")
		require.NoError(t, err)
		assert.False(t, seen[token], "tokens are unique")
		seen[token] = true
		tokens = append(tokens, token)
	}

	ok, err := r.Revoke(ctx, tokens[0])
	require.NoError(t, err)
	require.True(t, ok)

	userID, ok, err := r.Resolve(ctx, tokens[1])
	require.NoError(t, err)
	assert.True(t, ok, "revoking one session leaves the others")
	assert.Equal(t, "same-user", userID)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 49, n)
}

func TestSessionRegistry_UnknownToken(t *testing.T) {
	ctx := context.Background()
	r := NewSessionRegistry(sessions.NewMemoryRepository(), 0, time.Now)

	_, ok, err := r.Resolve(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.Revoke(ctx, "")
	require.NoError(t, err)
	assert.False(t, ok)
}

type failingSessionsRepo struct {
	err error
}

func (f failingSessionsRepo) Create(context.Context, *models.Session) error { return f.err }
func (f failingSessionsRepo) Find(context.Context, string) (*models.Session, error) {
	return nil, f.err
}
func (f failingSessionsRepo) Delete(context.Context, string) (bool, error) { return false, f.err }
func (f failingSessionsRepo) Count(context.Context) (int, error)          { return 0, f.err }

func TestSessionRegistry_RepositoryFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("db down")
	r := NewSessionRegistry(failingSessionsRepo{err: boom}, 0, time.Now)

	_, err := r.Issue(ctx, "u1")
	assert.ErrorIs(t, err, boom)

	_, ok, err := r.Resolve(ctx, "t")
	assert.ErrorIs(t, err, boom)
	assert.False(t, ok)

	_, err = r.Revoke(ctx, "t")
	assert.ErrorIs(t, err, boom)

	// a missing session is not a failure
	r = NewSessionRegistry(failingSessionsRepo{err: common.ErrorNotFound}, 0, time.Now)
	_, ok, err = r.Resolve(ctx, "t")
	assert.NoError(t, err)
	assert.False(t, ok)
}
