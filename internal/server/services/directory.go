// Package services contains the server-side business logic of the social
// network: the user directory, sessions, posts, events, the personalised
// feed, and the SocialNetwork facade composing them.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/ecosocial/internal/common"
	"github.com/dmitrijs2005/ecosocial/internal/server/credentials"
	"github.com/dmitrijs2005/ecosocial/internal/server/models"
	"github.com/dmitrijs2005/ecosocial/internal/server/repositories/users"
)

// RegisterParams carries the fields accepted on registration.
type RegisterParams struct {
	Name      string
	UserName  string
	Email     string
	Role      string
	Password  string
	Interests []string
}

// Directory is the registry of users. Username and email uniqueness is
// enforced by the repository together with the insert.
type Directory struct {
	repo   users.Repository
	hasher *credentials.Hasher
	now    func() time.Time

	// dummy is verified against when the username is unknown so both
	// authentication failures cost one hash.
	dummy string
}

func NewDirectory(repo users.Repository, hasher *credentials.Hasher, now func() time.Time) *Directory {
	return &Directory{
		repo:   repo,
		hasher: hasher,
		now:    now,
		dummy:  hasher.Create(common.NewID()),
	}
}

// Register creates a user. Text fields are trimmed; the password is stored
// only as a credential. The returned user carries no credential.
func (d *Directory) Register(ctx context.Context, p RegisterParams) (*models.User, error) {
	interests := make([]string, 0, len(p.Interests))
	interests = append(interests, p.Interests...)

	user := &models.User{
		ID:           common.NewID(),
		Name:         strings.TrimSpace(p.Name),
		UserName:     strings.TrimSpace(p.UserName),
		Email:        strings.TrimSpace(p.Email),
		Role:         strings.TrimSpace(p.Role),
		PasswordHash: d.hasher.Create(p.Password),
		Interests:    interests,
		JoinedAt:     d.now(),
	}

	created, err := d.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) || errors.Is(err, common.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return created.Public(), nil
}

// List returns all users in registration order.
func (d *Directory) List(ctx context.Context) ([]*models.User, error) {
	list, err := d.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	for i, u := range list {
		list[i] = u.Public()
	}
	return list, nil
}

// FindByID returns common.ErrorNotFound when id is unknown.
func (d *Directory) FindByID(ctx context.Context, id string) (*models.User, error) {
	u, err := d.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.Public(), nil
}

// FindByUsername matches case-insensitively and returns common.ErrorNotFound
// when nothing matches.
func (d *Directory) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := d.repo.GetUserByLogin(ctx, username)
	if err != nil {
		return nil, err
	}
	return u.Public(), nil
}

// Exists reports whether id names a registered user.
func (d *Directory) Exists(ctx context.Context, id string) (bool, error) {
	_, err := d.repo.GetByID(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, common.ErrorNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("error looking up user: %w", err)
}

// Authenticate returns the id of the user owning username and password.
// Unknown usernames and wrong passwords both yield common.ErrInvalidCredentials.
func (d *Directory) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := d.repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			d.hasher.Verify(password, d.dummy)
			return "", common.ErrInvalidCredentials
		}
		return "", common.ErrorInternal
	}

	if !d.hasher.Verify(password, user.PasswordHash) {
		return "", common.ErrInvalidCredentials
	}

	return user.ID, nil
}

func (d *Directory) Count(ctx context.Context) (int, error) {
	return d.repo.Count(ctx)
}
