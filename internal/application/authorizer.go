package application

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-credentials-login/internal/domain/entity"
	repo "github.com/oksasatya/go-credentials-login/internal/domain/repository"
	"github.com/oksasatya/go-credentials-login/pkg/helpers"
	"github.com/oksasatya/go-credentials-login/pkg/validation"
)

// Demo account accepted without a lookup when the demo shortcut is enabled.
const (
	DemoEmail    = "user@nextmail.com"
	DemoPassword = "123456"
)

// Decision reasons recorded in the authorizer logs.
const (
	ReasonInvalidFormat    = "invalid_format"
	ReasonDemo             = "demo"
	ReasonNotFound         = "not_found"
	ReasonPasswordMismatch = "password_mismatch"
	ReasonLookupFailed     = "lookup_failed"
	ReasonOK               = "ok"
)

// ErrFetchUser is the generic message surfaced when the user lookup itself fails.
var ErrFetchUser = errors.New("failed to fetch user")

// FetchUserError reports an infrastructure failure during lookup. Its message is
// always the generic ErrFetchUser text; the cause is only reachable via Unwrap.
type FetchUserError struct {
	Err error
}

func (e *FetchUserError) Error() string        { return ErrFetchUser.Error() }
func (e *FetchUserError) Unwrap() error        { return e.Err }
func (e *FetchUserError) Is(target error) bool { return target == ErrFetchUser }

// DemoIdentity returns the fixed identity handed out for the demo account.
func DemoIdentity() *entity.Identity {
	return &entity.Identity{ID: "demo-user", Name: "Demo User", Email: DemoEmail}
}

// Credentials is the typed result of validating a submitted credentials bag.
type Credentials struct {
	Email    string `json:"email" validate:"required,strict_email"`
	Password string `json:"password" validate:"required,min_utf16=6"`
}

// ParseCredentials validates an untyped bag into Credentials.
func ParseCredentials(bag map[string]any) (Credentials, []validation.Violation) {
	var (
		creds      Credentials
		violations []validation.Violation
	)
	email, v := validation.StringField(bag, "email")
	if v != nil {
		violations = append(violations, *v)
	}
	password, v := validation.StringField(bag, "password")
	if v != nil {
		violations = append(violations, *v)
	}
	if len(violations) > 0 {
		return Credentials{}, violations
	}

	creds = Credentials{Email: email, Password: password}
	if violations = validation.Struct(creds); len(violations) > 0 {
		return Credentials{}, violations
	}
	return creds, nil
}

// PasswordComparer reports whether plain matches the stored hash.
type PasswordComparer func(hash, plain string) bool

// Authorizer decides whether a credentials bag identifies a user.
//
// Authorize returns (identity, nil) on success and (nil, nil) for every expected
// denial: malformed input, unknown email or wrong password. A non-nil error
// means the lookup itself failed and is always a *FetchUserError.
type Authorizer struct {
	Repo             repo.UserRepository
	Compare          PasswordComparer
	DemoLoginEnabled bool
	Logger           *logrus.Logger
}

func NewAuthorizer(repo repo.UserRepository, logger *logrus.Logger, demoLoginEnabled bool) *Authorizer {
	return &Authorizer{
		Repo:             repo,
		Compare:          helpers.CompareHashAndPassword,
		DemoLoginEnabled: demoLoginEnabled,
		Logger:           logger,
	}
}

func (a *Authorizer) Authorize(ctx context.Context, credentials map[string]any) (*entity.Identity, error) {
	log := a.entry(ctx)

	creds, violations := ParseCredentials(credentials)
	if len(violations) > 0 {
		fields := make([]string, 0, len(violations))
		for _, v := range violations {
			fields = append(fields, v.Field+":"+v.Tag)
		}
		log.WithFields(logrus.Fields{"outcome": "denied", "reason": ReasonInvalidFormat, "violations": fields}).
			Info("authorization decision")
		return nil, nil
	}

	if a.DemoLoginEnabled && isDemoAccount(creds) {
		log.WithFields(logrus.Fields{"outcome": "granted", "reason": ReasonDemo}).Warn("authorization decision")
		return DemoIdentity(), nil
	}

	u, err := a.Repo.GetByEmail(ctx, creds.Email)
	if errors.Is(err, repo.ErrNotFound) || (err == nil && u == nil) {
		log.WithFields(logrus.Fields{"outcome": "denied", "reason": ReasonNotFound}).Info("authorization decision")
		return nil, nil
	}
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{"outcome": "error", "reason": ReasonLookupFailed}).
			Error("failed to fetch user")
		return nil, &FetchUserError{Err: err}
	}

	compare := a.Compare
	if compare == nil {
		compare = helpers.CompareHashAndPassword
	}
	if !compare(u.Password, creds.Password) {
		log.WithFields(logrus.Fields{"outcome": "denied", "reason": ReasonPasswordMismatch, "user_id": u.ID}).
			Info("authorization decision")
		return nil, nil
	}

	log.WithFields(logrus.Fields{"outcome": "granted", "reason": ReasonOK, "user_id": u.ID}).Info("authorization decision")
	return u.Identity(), nil
}

func (a *Authorizer) entry(ctx context.Context) *logrus.Entry {
	return helpers.LogEntry(ctx, a.Logger).WithField("component", "authorizer")
}

func isDemoAccount(c Credentials) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(c.Email), []byte(DemoEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(c.Password), []byte(DemoPassword)) == 1
	return emailOK && passOK
}
