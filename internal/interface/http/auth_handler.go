package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-credentials-login/internal/application"
	"github.com/oksasatya/go-credentials-login/internal/domain/entity"
	"github.com/oksasatya/go-credentials-login/internal/interface/middleware"
	"github.com/oksasatya/go-credentials-login/pkg/helpers"
	"github.com/oksasatya/go-credentials-login/pkg/response"
	"github.com/oksasatya/go-credentials-login/pkg/validation"
)

const (
	invalidPayloadMessage     = "invalid payload"
	invalidCredentialsMessage = "invalid credentials"
	internalErrorMessage      = "internal server error"
)

// Authenticator is the sign-in surface the handlers need.
type Authenticator interface {
	SignIn(ctx context.Context, credentials map[string]any) (*application.Session, error)
	SignOut(ctx context.Context, token string) error
}

type AuthHandler struct {
	Auth    Authenticator
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewAuthHandler(auth Authenticator, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

// Callback POST /api/auth/callback/credentials {email, password}
func (h *AuthHandler) Callback(c *gin.Context) {
	bag, err := helpers.CredentialsBag(c)
	if err != nil {
		response.JSON(c, response.Error[any](c, http.StatusBadRequest, invalidPayloadMessage,
			map[string]any{"details": validation.ToDetails(err)}))
		return
	}

	sess, err := h.Auth.SignIn(c.Request.Context(), bag)
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		response.JSON(c, response.Error[any](c, http.StatusUnauthorized, invalidCredentialsMessage, nil))
		return
	case err != nil:
		helpers.LogEntry(c.Request.Context(), h.Logger).WithError(err).Error("sign in failed")
		response.JSON(c, response.Error[any](c, http.StatusInternalServerError, internalErrorMessage, nil))
		return
	}

	h.Cookies.SetSession(c, sess.Token, sess.ExpiresAt)
	response.JSON(c, response.Success(c, http.StatusOK, sess.Identity, "signed in",
		map[string]any{"expires_at": sess.ExpiresAt}))
}

// Session GET /api/auth/session (auth required)
func (h *AuthHandler) Session(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		response.JSON(c, response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil))
		return
	}
	response.JSON(c, response.Success[*entity.Identity](c, http.StatusOK, id, "session", nil))
}

// SignOut POST /api/auth/signout
func (h *AuthHandler) SignOut(c *gin.Context) {
	if token, err := c.Cookie(helpers.SessionCookieName); err == nil && token != "" {
		if err := h.Auth.SignOut(c.Request.Context(), token); err != nil {
			helpers.LogEntry(c.Request.Context(), h.Logger).WithError(err).Warn("session revoke failed")
		}
	}
	h.Cookies.Clear(c)
	response.JSON(c, response.Success[any](c, http.StatusOK, map[string]any{"signed_out": true}, "signed out", nil))
}

// Health GET /api/health
func Health(c *gin.Context) {
	response.JSON(c, response.Success[any](c, http.StatusOK, map[string]any{"status": "ok"}, "healthy", nil))
}
