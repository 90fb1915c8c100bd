package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-credentials-login/internal/domain/entity"
	"github.com/oksasatya/go-credentials-login/pkg/helpers"
)

type memSessionStore struct {
	mu      sync.Mutex
	m       map[string]entity.Identity
	ttls    map[string]time.Duration
	saveErr error
	loadErr error
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{m: map[string]entity.Identity{}, ttls: map[string]time.Duration{}}
}

func (s *memSessionStore) Save(_ context.Context, sid string, id *entity.Identity, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.m[sid] = *id
	s.ttls[sid] = ttl
	return nil
}

func (s *memSessionStore) Load(_ context.Context, sid string) (*entity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	id, ok := s.m[sid]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &id, nil
}

func (s *memSessionStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, sid)
	return nil
}

func TestSessionService_IssueResolveRevoke(t *testing.T) {
	store := newMemSessionStore()
	svc := NewSessionService(store, helpers.NewJWTManager("secret", time.Hour), nil)
	ctx := context.Background()
	id := &entity.Identity{ID: "u-1", Name: "Ada", Email: "ada@example.com"}

	sess, err := svc.Issue(ctx, id)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, time.Hour, store.ttls[sess.ID])

	got, err := svc.Resolve(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	require.NoError(t, svc.Revoke(ctx, sess.Token))
	_, err = svc.Resolve(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionService_ResolveRejects(t *testing.T) {
	store := newMemSessionStore()
	jwt := helpers.NewJWTManager("secret", time.Hour)
	svc := NewSessionService(store, jwt, nil)
	ctx := context.Background()

	// token for a session whose stored identity belongs to someone else
	mismatched, _, err := jwt.GenerateSessionToken("u-2", "sid-1")
	require.NoError(t, err)
	store.m["sid-1"] = entity.Identity{ID: "u-1"}

	orphan, _, err := jwt.GenerateSessionToken("u-1", "sid-missing")
	require.NoError(t, err)

	cases := map[string]string{
		"garbage token":     "garbage",
		"unknown session":   orphan,
		"user id mismatch":  mismatched,
		"empty token value": "",
	}

	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Resolve(ctx, tok)
			assert.ErrorIs(t, err, ErrInvalidSession)
		})
	}
}

func TestSessionService_StoreErrors(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("redis down")

	store := newMemSessionStore()
	store.saveErr = storeErr
	svc := NewSessionService(store, helpers.NewJWTManager("secret", time.Hour), nil)
	_, err := svc.Issue(ctx, &entity.Identity{ID: "u-1"})
	assert.ErrorIs(t, err, storeErr)

	store.saveErr = nil
	sess, err := svc.Issue(ctx, &entity.Identity{ID: "u-1"})
	require.NoError(t, err)
	store.loadErr = storeErr
	_, err = svc.Resolve(ctx, sess.Token)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrInvalidSession)
}

func TestSessionService_RevokeIgnoresBadToken(t *testing.T) {
	svc := NewSessionService(newMemSessionStore(), helpers.NewJWTManager("secret", time.Hour), nil)
	assert.NoError(t, svc.Revoke(context.Background(), "garbage"))
}
