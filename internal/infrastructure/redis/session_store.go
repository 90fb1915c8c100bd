package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-credentials-login/internal/application"
	"github.com/oksasatya/go-credentials-login/internal/domain/entity"
)

func sessionKey(sid string) string {
	return "auth:session:" + sid
}

// SessionStore keeps sessions as Redis hashes with a TTL.
type SessionStore struct {
	rdb *goredis.Client
}

func NewSessionStore(rdb *goredis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

func (s *SessionStore) Save(ctx context.Context, sid string, id *entity.Identity, ttl time.Duration) error {
	key := sessionKey(sid)
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key, map[string]any{
		"user_id":    id.ID,
		"name":       id.Name,
		"email":      id.Email,
		"created_at": time.Now().UTC().Format(time.RFC3339Nano),
	})
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *SessionStore) Load(ctx context.Context, sid string) (*entity.Identity, error) {
	data, err := s.rdb.HGetAll(ctx, sessionKey(sid)).Result()
	if errors.Is(err, goredis.Nil) || (err == nil && len(data) == 0) {
		return nil, application.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entity.Identity{ID: data["user_id"], Name: data["name"], Email: data["email"]}, nil
}

func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, sessionKey(sid)).Err()
}

var _ application.SessionStore = (*SessionStore)(nil)
