package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ecosocial/internal/common"
	"github.com/dmitrijs2005/ecosocial/internal/server/models"
	"github.com/dmitrijs2005/ecosocial/internal/server/repositories/sessions"
)

// DefaultTokenBytes is the entropy of a session token before encoding.
const DefaultTokenBytes = 24

// SessionRegistry maps opaque tokens to user ids. Sessions never expire;
// they end only on Revoke.
type SessionRegistry struct {
	repo       sessions.Repository
	tokenBytes int
	now        func() time.Time
}

func NewSessionRegistry(repo sessions.Repository, tokenBytes int, now func() time.Time) *SessionRegistry {
	if tokenBytes <= 0 {
		tokenBytes = DefaultTokenBytes
	}
	return &SessionRegistry{repo: repo, tokenBytes: tokenBytes, now: now}
}

// Issue creates a session for userID and returns its token.
func (r *SessionRegistry) Issue(ctx context.Context, userID string) (string, error) {
	token, err := common.MakeRandURLToken(r.tokenBytes)
	if err != nil {
		return "", common.ErrorInternal
	}

	s := &models.Session{Token: token, UserID: userID, CreatedAt: r.now()}
	if err := r.repo.Create(ctx, s); err != nil {
		return "", fmt.Errorf("error storing session: %w", err)
	}

	return token, nil
}

// Revoke ends the session and reports whether it was active.
func (r *SessionRegistry) Revoke(ctx context.Context, token string) (bool, error) {
	ok, err := r.repo.Delete(ctx, token)
	if err != nil {
		return false, fmt.Errorf("error deleting session: %w", err)
	}
	return ok, nil
}

// Resolve returns the user id bound to token, if any.
func (r *SessionRegistry) Resolve(ctx context.Context, token string) (string, bool, error) {
	s, err := r.repo.Find(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("error searching session: %w", err)
	}
	return s.UserID, true, nil
}

func (r *SessionRegistry) Count(ctx context.Context) (int, error) {
	return r.repo.Count(ctx)
}
