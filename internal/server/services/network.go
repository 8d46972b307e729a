package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/ecosocial/internal/common"
	"github.com/dmitrijs2005/ecosocial/internal/logging"
	"github.com/dmitrijs2005/ecosocial/internal/server/credentials"
	"github.com/dmitrijs2005/ecosocial/internal/server/models"
	"github.com/dmitrijs2005/ecosocial/internal/server/repositories/repomanager"
)

// Stats is a point-in-time count of stored entities.
type Stats struct {
	Users    int
	Posts    int
	Events   int
	Sessions int
}

// SocialNetwork is the single entry point the transport layer talks to.
// It owns the component services and holds no state of its own.
type SocialNetwork struct {
	directory *Directory
	sessions  *SessionRegistry
	content   *ContentStore
	events    *EventStore
	feed      *FeedEngine
	logger    logging.Logger
}

type options struct {
	now        func() time.Time
	tokenBytes int
	logger     logging.Logger
}

// Option customises NewSocialNetwork.
type Option func(*options)

// WithClock replaces the wall clock used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithTokenBytes sets the entropy of issued session tokens.
func WithTokenBytes(n int) Option {
	return func(o *options) { o.tokenBytes = n }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

func NewSocialNetwork(rm repomanager.RepositoryManager, hasher *credentials.Hasher, opts ...Option) *SocialNetwork {
	o := options{
		now:        func() time.Time { return time.Now().UTC() },
		tokenBytes: DefaultTokenBytes,
		logger:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	dir := NewDirectory(rm.Users(), hasher, o.now)
	content := NewContentStore(rm.Posts(), dir, o.now)

	return &SocialNetwork{
		directory: dir,
		sessions:  NewSessionRegistry(rm.Sessions(), o.tokenBytes, o.now),
		content:   content,
		events:    NewEventStore(rm.Events(), dir, o.now),
		feed:      NewFeedEngine(content, dir),
		logger:    o.logger.With("module", "social_network"),
	}
}

func (n *SocialNetwork) RegisterUser(ctx context.Context, p RegisterParams) (*models.User, error) {
	u, err := n.directory.Register(ctx, p)
	if err != nil {
		return nil, err
	}
	n.logger.Info(ctx, "user registered", "user_id", u.ID, "username", u.UserName)
	return u, nil
}

func (n *SocialNetwork) ListUsers(ctx context.Context) ([]*models.User, error) {
	return n.directory.List(ctx)
}

func (n *SocialNetwork) GetUser(ctx context.Context, id string) (*models.User, error) {
	return n.directory.FindByID(ctx, id)
}

// Login authenticates and opens a session, returning its token.
func (n *SocialNetwork) Login(ctx context.Context, username, password string) (string, error) {
	userID, err := n.directory.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			n.logger.Warn(ctx, "login rejected")
		}
		return "", err
	}

	token, err := n.sessions.Issue(ctx, userID)
	if err != nil {
		return "", err
	}

	n.logger.Info(ctx, "session opened", "user_id", userID)
	return token, nil
}

// Logout closes the session and reports whether it was active.
func (n *SocialNetwork) Logout(ctx context.Context, token string) (bool, error) {
	return n.sessions.Revoke(ctx, token)
}

// ResolveToken returns the user id of an active session.
func (n *SocialNetwork) ResolveToken(ctx context.Context, token string) (string, bool, error) {
	return n.sessions.Resolve(ctx, token)
}

func (n *SocialNetwork) AddPost(ctx context.Context, authorID, topic, content string) (*models.Post, error) {
	return n.content.AddPost(ctx, authorID, topic, content)
}

// FeedFor returns the feed of userID; an empty userID means no user.
func (n *SocialNetwork) FeedFor(ctx context.Context, userID string) ([]*models.Post, error) {
	return n.feed.FeedFor(ctx, userID)
}

func (n *SocialNetwork) AddEvent(ctx context.Context, p AddEventParams) (*models.Event, error) {
	return n.events.AddEvent(ctx, p)
}

func (n *SocialNetwork) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return n.events.ListEvents(ctx)
}

func (n *SocialNetwork) Stats(ctx context.Context) (Stats, error) {
	var (
		s   Stats
		err error
	)
	if s.Users, err = n.directory.Count(ctx); err != nil {
		return Stats{}, err
	}
	if s.Posts, err = n.content.Count(ctx); err != nil {
		return Stats{}, err
	}
	if s.Events, err = n.events.Count(ctx); err != nil {
		return Stats{}, err
	}
	if s.Sessions, err = n.sessions.Count(ctx); err != nil {
		return Stats{}, err
	}
	return s, nil
}
