package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/ecosocial/internal/common"
	"github.com/dmitrijs2005/ecosocial/internal/server/models"
	"github.com/dmitrijs2005/ecosocial/internal/server/repositories/posts"
)

// ContentStore is the append-only post collection.
type ContentStore struct {
	repo      posts.Repository
	directory *Directory
	now       func() time.Time
}

func NewContentStore(repo posts.Repository, directory *Directory, now func() time.Time) *ContentStore {
	return &ContentStore{repo: repo, directory: directory, now: now}
}

// AddPost appends a post by authorID, which must name an existing user.
func (s *ContentStore) AddPost(ctx context.Context, authorID, topic, content string) (*models.Post, error) {
	ok, err := s.directory.Exists(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.ErrAuthorNotFound
	}

	post := &models.Post{
		ID:        common.NewID(),
		AuthorID:  authorID,
		Topic:     strings.TrimSpace(topic),
		Content:   strings.TrimSpace(content),
		CreatedAt: s.now(),
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return created, nil
}

// List returns every post in insertion order.
func (s *ContentStore) List(ctx context.Context) ([]*models.Post, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return list, nil
}

func (s *ContentStore) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
