package posts

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/ecosocial/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_AppendAndList(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	now := time.Now().UTC()

	for _, id := range []string{"p1", "p2", "p3"} {
		_, err := r.Create(ctx, &models.Post{ID: id, AuthorID: "u1", Topic: "water", Content: id, CreatedAt: now})
		require.NoError(t, err)
	}

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "p1", list[0].ID)
	assert.Equal(t, "p3", list[2].ID)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMemory_ListIsDetached(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	in := &models.Post{ID: "p1", Topic: "water"}
	_, err := r.Create(ctx, in)
	require.NoError(t, err)
	in.Topic = "changed"

	list, err := r.List(ctx)
	require.NoError(t, err)
	list[0].Topic = "also changed"

	again, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "water", again[0].Topic)
}
