package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-credentials-login/internal/domain/entity"
	"github.com/oksasatya/go-credentials-login/pkg/helpers"
)

var (
	ErrInvalidSession  = errors.New("invalid session")
	ErrSessionNotFound = errors.New("session not found")
)

// SessionStore persists the identity behind a session id.
// Load returns ErrSessionNotFound for unknown or expired sessions.
type SessionStore interface {
	Save(ctx context.Context, sid string, id *entity.Identity, ttl time.Duration) error
	Load(ctx context.Context, sid string) (*entity.Identity, error)
	Delete(ctx context.Context, sid string) error
}

type Session struct {
	ID        string
	Token     string
	ExpiresAt time.Time
	Identity  *entity.Identity
}

// SessionService issues, resolves and revokes login sessions.
type SessionService struct {
	Store  SessionStore
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewSessionService(store SessionStore, jwt *helpers.JWTManager, logger *logrus.Logger) *SessionService {
	return &SessionService{Store: store, JWT: jwt, Logger: logger}
}

// Issue records a session for id and returns its signed token.
func (s *SessionService) Issue(ctx context.Context, id *entity.Identity) (*Session, error) {
	sid := uuid.NewString()
	token, exp, err := s.JWT.GenerateSessionToken(id.ID, sid)
	if err != nil {
		s.entry(ctx).WithError(err).WithField("user_id", id.ID).Error("generate session token failed")
		return nil, err
	}
	if err := s.Store.Save(ctx, sid, id, s.JWT.TTL); err != nil {
		s.entry(ctx).WithError(err).WithField("user_id", id.ID).Error("save session failed")
		return nil, err
	}
	return &Session{ID: sid, Token: token, ExpiresAt: exp, Identity: id}, nil
}

// Resolve returns the identity behind token. Bad, expired and revoked tokens
// all yield ErrInvalidSession; store failures are returned as-is.
func (s *SessionService) Resolve(ctx context.Context, token string) (*entity.Identity, error) {
	claims, err := s.JWT.ParseSessionToken(token)
	if err != nil {
		return nil, ErrInvalidSession
	}
	id, err := s.Store.Load(ctx, claims.SessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}
	if id.ID != claims.UserID {
		return nil, ErrInvalidSession
	}
	return id, nil
}

// Revoke deletes the session behind token. Unparseable tokens are ignored.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	claims, err := s.JWT.ParseSessionToken(token)
	if err != nil {
		return nil
	}
	return s.Store.Delete(ctx, claims.SessionID)
}

func (s *SessionService) entry(ctx context.Context) *logrus.Entry {
	return helpers.LogEntry(ctx, s.Logger).WithField("component", "session")
}
