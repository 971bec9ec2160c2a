// Package redisrepo provides a Redis-backed implementation of admins.Repo.
//
// Records are stored as JSON blobs under admin:{id}. Email uniqueness is
// enforced with a SETNX index key admin:email:{email} so two concurrent
// Create calls for the same email cannot both succeed.
package redisrepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bloglane/admin-auth-server/admins"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	adminKeyPrefix = "admin:"
	emailKeyPrefix = "admin:email:"
	idSetKey       = "admin:ids"

	opTimeout = 5 * time.Second
)

var _ admins.Repo = (*Repo)(nil)

type Repo struct {
	client *redis.Client
}

func New(client *redis.Client) *Repo {
	return &Repo{client: client}
}

func (r *Repo) Create(admin *admins.Admin) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	email := admins.NormalizeEmail(admin.Email)
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}
	admin.Email = email

	// Claim the email index first; this is the uniqueness constraint.
	claimed, err := r.client.SetNX(ctx, emailKeyPrefix+email, admin.ID, 0).Result()
	if err != nil {
		return errors.Wrap(err, "[redisrepo.Create] SetNX email index")
	}
	if !claimed {
		return admins.ErrDuplicateEmail
	}

	blob, err := json.Marshal(admin)
	if err != nil {
		return errors.Wrap(err, "[redisrepo.Create] marshal admin")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, adminKeyPrefix+admin.ID, blob, 0)
	pipe.SAdd(ctx, idSetKey, admin.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		// Roll the index claim back so the email is not left orphaned.
		r.client.Del(ctx, emailKeyPrefix+email)
		return errors.Wrap(err, "[redisrepo.Create] pipeline exec")
	}
	return nil
}

func (r *Repo) Update(admin *admins.Admin) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	existing, err := r.getByID(ctx, admin.ID)
	if err != nil {
		return err
	}

	email := admins.NormalizeEmail(admin.Email)
	admin.Email = email

	blob, err := json.Marshal(admin)
	if err != nil {
		return errors.Wrap(err, "[redisrepo.Update] marshal admin")
	}

	pipe := r.client.TxPipeline()
	if existing.Email != email {
		pipe.Del(ctx, emailKeyPrefix+existing.Email)
		pipe.Set(ctx, emailKeyPrefix+email, admin.ID, 0)
	}
	pipe.Set(ctx, adminKeyPrefix+admin.ID, blob, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "[redisrepo.Update] pipeline exec")
	}
	return nil
}

func (r *Repo) GetByID(id string) (*admins.Admin, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return r.getByID(ctx, id)
}

func (r *Repo) getByID(ctx context.Context, id string) (*admins.Admin, error) {
	blob, err := r.client.Get(ctx, adminKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, admins.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "[redisrepo.GetByID] Get")
	}

	var admin admins.Admin
	if err := json.Unmarshal(blob, &admin); err != nil {
		return nil, errors.Wrap(err, "[redisrepo.GetByID] unmarshal admin")
	}
	return &admin, nil
}

func (r *Repo) GetByEmail(email string) (*admins.Admin, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	id, err := r.client.Get(ctx, emailKeyPrefix+admins.NormalizeEmail(email)).Result()
	if err == redis.Nil {
		return nil, admins.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "[redisrepo.GetByEmail] Get email index")
	}
	return r.getByID(ctx, id)
}

func (r *Repo) ListNonSuper() ([]*admins.Admin, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	ids, err := r.client.SMembers(ctx, idSetKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "[redisrepo.ListNonSuper] SMembers")
	}

	list := make([]*admins.Admin, 0, len(ids))
	for _, id := range ids {
		admin, err := r.getByID(ctx, id)
		if err == admins.ErrNotFound {
			continue // id set can lag behind deleted records
		}
		if err != nil {
			return nil, err
		}
		if admin.SuperAdmin {
			continue
		}
		list = append(list, admin)
	}
	return list, nil
}

func (r *Repo) Count() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	n, err := r.client.SCard(ctx, idSetKey).Result()
	if err != nil {
		return 0, errors.Wrap(err, "[redisrepo.Count] SCard")
	}
	return int(n), nil
}
