package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/ecosocial/internal/common"
	"github.com/dmitrijs2005/ecosocial/internal/server/models"
	"github.com/dmitrijs2005/ecosocial/internal/server/repositories/events"
)

// AddEventParams carries an event submission. StartTime is already parsed.
type AddEventParams struct {
	Title       string
	Description string
	Location    string
	StartTime   time.Time
	CreatedBy   string
}

// EventStore is the append-only event collection.
type EventStore struct {
	repo      events.Repository
	directory *Directory
	now       func() time.Time
}

func NewEventStore(repo events.Repository, directory *Directory, now func() time.Time) *EventStore {
	return &EventStore{repo: repo, directory: directory, now: now}
}

// AddEvent stores an event created by an existing user.
func (s *EventStore) AddEvent(ctx context.Context, p AddEventParams) (*models.Event, error) {
	ok, err := s.directory.Exists(ctx, p.CreatedBy)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.ErrCreatorNotFound
	}

	event := &models.Event{
		ID:          common.NewID(),
		Title:       strings.TrimSpace(p.Title),
		Description: strings.TrimSpace(p.Description),
		Location:    strings.TrimSpace(p.Location),
		StartTime:   p.StartTime.UTC(),
		CreatedBy:   p.CreatedBy,
		CreatedAt:   s.now(),
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}
	return created, nil
}

// ListEvents returns events by start time ascending; equal start times keep
// insertion order.
func (s *EventStore) ListEvents(ctx context.Context) ([]*models.Event, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].StartTime.Before(list[j].StartTime)
	})
	return list, nil
}

func (s *EventStore) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
