package application

import (
	"context"
	"errors"

	"github.com/oksasatya/go-credentials-login/internal/domain/entity"
)

// ErrInvalidCredentials is the single denial surfaced to callers, whatever the
// underlying reason.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Login ties the authorizer to session issuance.
type Login struct {
	Authorizer *Authorizer
	Sessions   *SessionService
}

func NewLogin(authorizer *Authorizer, sessions *SessionService) *Login {
	return &Login{Authorizer: authorizer, Sessions: sessions}
}

// SignIn authorizes the credentials bag and opens a session.
// Denials return ErrInvalidCredentials; lookup failures return a *FetchUserError.
func (l *Login) SignIn(ctx context.Context, credentials map[string]any) (*Session, error) {
	id, err := l.Authorizer.Authorize(ctx, credentials)
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, ErrInvalidCredentials
	}
	return l.Sessions.Issue(ctx, id)
}

// Current returns the identity behind a session token.
func (l *Login) Current(ctx context.Context, token string) (*entity.Identity, error) {
	return l.Sessions.Resolve(ctx, token)
}

// SignOut revokes the session behind token.
func (l *Login) SignOut(ctx context.Context, token string) error {
	return l.Sessions.Revoke(ctx, token)
}
