package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-credentials-login/internal/application"
	"github.com/oksasatya/go-credentials-login/internal/domain/entity"
	"github.com/oksasatya/go-credentials-login/pkg/helpers"
	"github.com/oksasatya/go-credentials-login/pkg/response"
)

const CtxIdentityKey = "identity"

// SessionResolver resolves a session token to its identity.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*entity.Identity, error)
}

// Auth validates the session cookie against the session store.
// It sets the identity in the Gin context on success.
func Auth(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err != nil || token == "" {
			response.Abort(c, response.Error[any](c, http.StatusUnauthorized, "missing session", nil))
			return
		}
		id, err := sessions.Resolve(c.Request.Context(), token)
		if errors.Is(err, application.ErrInvalidSession) {
			response.Abort(c, response.Error[any](c, http.StatusUnauthorized, "invalid session", nil))
			return
		}
		if err != nil {
			response.Abort(c, response.Error[any](c, http.StatusInternalServerError, "internal server error", nil))
			return
		}

		c.Set(CtxIdentityKey, id)
		c.Next()
	}
}

// IdentityFrom returns the identity set by Auth.
func IdentityFrom(c *gin.Context) (*entity.Identity, bool) {
	v, ok := c.Get(CtxIdentityKey)
	if !ok {
		return nil, false
	}
	id, ok := v.(*entity.Identity)
	return id, ok && id != nil
}
