package services

import (
	"context"
	"errors"
	"slices"
	"sort"
	"strings"

	"github.com/dmitrijs2005/ecosocial/internal/common"
	"github.com/dmitrijs2005/ecosocial/internal/server/models"
)

// FeedEngine builds per-user views over the ContentStore. It never writes.
type FeedEngine struct {
	content   *ContentStore
	directory *Directory
}

func NewFeedEngine(content *ContentStore, directory *Directory) *FeedEngine {
	return &FeedEngine{content: content, directory: directory}
}

// FeedFor returns posts newest first. With a known userID whose interests
// are non-empty, only posts whose topic equals or starts with one of the
// interests (case-insensitively) are kept. An empty or unknown userID
// yields every post.
func (f *FeedEngine) FeedFor(ctx context.Context, userID string) ([]*models.Post, error) {
	all, err := f.content.List(ctx)
	if err != nil {
		return nil, err
	}

	var interests []string
	if userID != "" {
		user, err := f.directory.FindByID(ctx, userID)
		switch {
		case err == nil:
			interests = lowerAll(user.Interests)
		case !errors.Is(err, common.ErrorNotFound):
			return nil, err
		}
	}

	feed := all
	if len(interests) > 0 {
		feed = make([]*models.Post, 0, len(all))
		for _, p := range all {
			if matchesInterest(p.Topic, interests) {
				feed = append(feed, p)
			}
		}
	}

	// newest first; reversing before the stable sort breaks ties by
	// reverse insertion order
	slices.Reverse(feed)
	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})

	return feed, nil
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(s))
	}
	return out
}

// matchesInterest reports whether topic equals or has as prefix one of the
// lowercased interests.
func matchesInterest(topic string, interests []string) bool {
	topic = strings.ToLower(topic)
	for _, interest := range interests {
		if strings.HasPrefix(topic, interest) {
			return true
		}
	}
	return false
}
