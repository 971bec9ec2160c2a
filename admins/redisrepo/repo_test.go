package redisrepo_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/bloglane/admin-auth-server/admins"
	"github.com/bloglane/admin-auth-server/admins/redisrepo"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) *redisrepo.Repo {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisrepo.New(client)
}

func newAdmin(email string, super bool) *admins.Admin {
	return &admins.Admin{
		Email:        email,
		PasswordHash: "$2a$10$fakehash",
		Name:         admins.LocalPart(email),
		Status:       admins.StatusActive,
		SuperAdmin:   super,
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := setupRepo(t)

	admin := newAdmin("john@example.com", false)
	require.NoError(t, repo.Create(admin))
	require.NotEmpty(t, admin.ID)

	byID, err := repo.GetByID(admin.ID)
	require.NoError(t, err)
	require.Equal(t, admin.Email, byID.Email)
	require.Equal(t, admin.PasswordHash, byID.PasswordHash)

	byEmail, err := repo.GetByEmail("John@Example.COM")
	require.NoError(t, err)
	require.Equal(t, admin.ID, byEmail.ID)
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo := setupRepo(t)

	require.NoError(t, repo.Create(newAdmin("john@example.com", false)))

	err := repo.Create(newAdmin("John@example.com", false))
	require.ErrorIs(t, err, admins.ErrDuplicateEmail)
}

func TestGetMissing(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.GetByID("missing")
	require.ErrorIs(t, err, admins.ErrNotFound)

	_, err = repo.GetByEmail("nobody@example.com")
	require.ErrorIs(t, err, admins.ErrNotFound)
}

func TestUpdate(t *testing.T) {
	repo := setupRepo(t)

	admin := newAdmin("john@example.com", false)
	require.NoError(t, repo.Create(admin))

	admin.Status = admins.StatusInactive
	require.NoError(t, repo.Update(admin))

	got, err := repo.GetByID(admin.ID)
	require.NoError(t, err)
	require.Equal(t, admins.StatusInactive, got.Status)

	missing := newAdmin("ghost@example.com", false)
	missing.ID = "missing"
	require.ErrorIs(t, repo.Update(missing), admins.ErrNotFound)
}

func TestListNonSuperAndCount(t *testing.T) {
	repo := setupRepo(t)

	require.NoError(t, repo.Create(newAdmin("root@example.com", true)))
	require.NoError(t, repo.Create(newAdmin("one@example.com", false)))
	require.NoError(t, repo.Create(newAdmin("two@example.com", false)))

	list, err := repo.ListNonSuper()
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, admin := range list {
		require.False(t, admin.SuperAdmin)
	}

	count, err := repo.Count()
	require.NoError(t, err)
	require.Equal(t, 3, count)
}
