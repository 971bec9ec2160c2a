// Package redisrepo provides a Redis-backed implementation of
// sessions.Repo. Sessions are JSON blobs under session:{id} with a TTL so
// abandoned sessions expire without a cleanup job.
package redisrepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bloglane/admin-auth-server/sessions"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"

	opTimeout = 5 * time.Second
)

var _ sessions.Repo = (*Repo)(nil)

type Repo struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Repo {
	return &Repo{client: client, ttl: ttl}
}

func (r *Repo) Upsert(sessionID string, session sessions.Session) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	blob, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "[redisrepo.Upsert] marshal session")
	}
	if err := r.client.Set(ctx, sessionKeyPrefix+sessionID, blob, r.ttl).Err(); err != nil {
		return errors.Wrap(err, "[redisrepo.Upsert] Set")
	}
	return nil
}

func (r *Repo) Get(sessionID string) (sessions.Session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	blob, err := r.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return sessions.Session{}, sessions.ErrNotFound
	}
	if err != nil {
		return sessions.Session{}, errors.Wrap(err, "[redisrepo.Get] Get")
	}

	var session sessions.Session
	if err := json.Unmarshal(blob, &session); err != nil {
		return sessions.Session{}, errors.Wrap(err, "[redisrepo.Get] unmarshal session")
	}
	return session, nil
}

func (r *Repo) ClearAdmin(sessionID string) error {
	session, err := r.Get(sessionID)
	if err == sessions.ErrNotFound {
		return nil // Clearing an unknown session is a no-op
	}
	if err != nil {
		return err
	}
	session.AdminID = ""
	return r.Upsert(sessionID, session)
}

func (r *Repo) Delete(sessionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := r.client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return errors.Wrap(err, "[redisrepo.Delete] Del")
	}
	return nil
}
