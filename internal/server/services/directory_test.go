package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/ecosocial/internal/common"
	"github.com/dmitrijs2005/ecosocial/internal/server/models"
	"github.com/dmitrijs2005/ecosocial/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDirectory() (*Directory, *users.MemoryRepository) {
	repo := users.NewMemoryRepository()
	return NewDirectory(repo, testHasher, newFakeClock().Now), repo
}

func TestDirectory_Register_TrimsAndHidesCredential(t *testing.T) {
	ctx := context.Background()
	d, repo := newTestDirectory()

	u, err := d.Register(ctx, RegisterParams{
		Name:      "  Alice Doe ",
		UserName:  " alice ",
		Email:     " alice@example.org\t",
		Role:      " volunteer ",
		Password:  " secret ",
		Interests: []string{"water", "Air"},
	})
	require.NoError(t, err)

	assert.Len(t, u.ID, 32)
	assert.Equal(t, "Alice Doe", u.Name)
	assert.Equal(t, "alice", u.UserName)
	assert.Equal(t, "alice@example.org", u.Email)
	assert.Equal(t, "volunteer", u.Role)
	assert.Equal(t, []string{"water", "Air"}, u.Interests)
	assert.Empty(t, u.PasswordHash, "credential must not leave the directory")
	assert.False(t, u.JoinedAt.IsZero())

	stored, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Contains(t, stored.PasswordHash, "$")
	assert.NotContains(t, stored.PasswordHash, "secret")

	// the password itself is not trimmed
	_, err = d.Authenticate(ctx, "alice", " secret ")
	assert.NoError(t, err)
	_, err = d.Authenticate(ctx, "alice", "secret")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestDirectory_Register_UniquenessCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	d, _ := newTestDirectory()

	_, err := d.Register(ctx, RegisterParams{UserName: "Alice", Email: "alice@example.org", Password: "x"})
	require.NoError(t, err)

	_, err = d.Register(ctx, RegisterParams{UserName: "aLICE", Email: "new@example.org", Password: "x"})
	assert.ErrorIs(t, err, common.ErrUsernameTaken)

	_, err = d.Register(ctx, RegisterParams{UserName: "bob", Email: "ALICE@EXAMPLE.ORG", Password: "x"})
	assert.ErrorIs(t, err, common.ErrEmailTaken)

	_, err = d.Register(ctx, RegisterParams{UserName: " alice ", Email: "x@example.org", Password: "x"})
	assert.ErrorIs(t, err, common.ErrUsernameTaken, "comparison happens after trimming")

	list, err := d.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1, "failed registrations leave the directory unchanged")
}

func TestDirectory_UniquenessHoldsAfterManyRegistrations(t *testing.T) {
	ctx := context.Background()
	d, _ := newTestDirectory()

	names := []string{"ann", "ANN", "Bob", "bob", "carol", "Carol", "dave"}
	for i, name := range names {
		email := strings.ToUpper(name) + "@example.org"
		if i%2 == 0 {
			email = strings.ToLower(email)
		}
		_, _ = d.Register(ctx, RegisterParams{UserName: name, Email: email, Password: "pw"})
	}

	list, err := d.List(ctx)
	require.NoError(t, err)

	seenNames := map[string]bool{}
	seenEmails := map[string]bool{}
	for _, u := range list {
		n, e := strings.ToLower(u.UserName), strings.ToLower(u.Email)
		assert.False(t, seenNames[n], "duplicate username %s", n)
		assert.False(t, seenEmails[e], "duplicate email %s", e)
		seenNames[n], seenEmails[e] = true, true
	}
	assert.Len(t, list, 4)
}

func TestDirectory_ListAndFind(t *testing.T) {
	ctx := context.Background()
	d, _ := newTestDirectory()

	var ids []string
	for _, name := range []string{"zed", "amy", "kim"} {
		u, err := d.Register(ctx, RegisterParams{UserName: name, Email: name + "@example.org", Password: "pw"})
		require.NoError(t, err)
		ids = append(ids, u.ID)
	}

	list, err := d.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, u := range list {
		assert.Equal(t, ids[i], u.ID, "insertion order")
		assert.Empty(t, u.PasswordHash)
	}

	u, err := d.FindByUsername(ctx, "AMY")
	require.NoError(t, err)
	assert.Equal(t, ids[1], u.ID)

	u, err = d.FindByID(ctx, ids[2])
	require.NoError(t, err)
	assert.Equal(t, "kim", u.UserName)

	_, err = d.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = d.FindByUsername(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDirectory_Authenticate_NonEnumerable(t *testing.T) {
	ctx := context.Background()
	d, _ := newTestDirectory()

	u, err := d.Register(ctx, RegisterParams{UserName: "alice", Email: "a@example.org", Password: "right"})
	require.NoError(t, err)

	id, err := d.Authenticate(ctx, "ALICE", "right")
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)

	_, wrongPw := d.Authenticate(ctx, "alice", "wrong")
	_, noUser := d.Authenticate(ctx, "nobody", "right")

	assert.ErrorIs(t, wrongPw, common.ErrInvalidCredentials)
	assert.ErrorIs(t, noUser, common.ErrInvalidCredentials)
	assert.Equal(t, wrongPw.Error(), noUser.Error())
}

type failingUsersRepo struct {
	err error
}

func (f failingUsersRepo) Create(context.Context, *models.User) (*models.User, error) {
	return nil, f.err
}
func (f failingUsersRepo) List(context.Context) ([]*models.User, error) { return nil, f.err }
func (f failingUsersRepo) GetByID(context.Context, string) (*models.User, error) {
	return nil, f.err
}
func (f failingUsersRepo) GetUserByLogin(context.Context, string) (*models.User, error) {
	return nil, f.err
}
func (f failingUsersRepo) Count(context.Context) (int, error) { return 0, f.err }

func TestDirectory_RepositoryFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("db down")
	d := NewDirectory(failingUsersRepo{err: boom}, testHasher, time.Now)

	_, err := d.Register(ctx, RegisterParams{UserName: "a", Email: "a@example.org", Password: "x"})
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "error creating user")

	_, err = d.List(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = d.Authenticate(ctx, "a", "x")
	assert.ErrorIs(t, err, common.ErrorInternal)

	_, err = d.Exists(ctx, "a")
	assert.ErrorIs(t, err, boom)
}
