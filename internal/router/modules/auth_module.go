package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-credentials-login/internal/application"
	handlers "github.com/oksasatya/go-credentials-login/internal/interface/http"
	"github.com/oksasatya/go-credentials-login/internal/interface/middleware"
)

// AuthModule wires the credentials sign-in endpoints.
// Public: POST /auth/callback/credentials, POST /auth/signout
// Protected: GET /auth/session
type AuthModule struct {
	Handler  *handlers.AuthHandler
	Sessions *application.SessionService
}

func NewAuthModule(h *handlers.AuthHandler, sessions *application.SessionService) *AuthModule {
	return &AuthModule{Handler: h, Sessions: sessions}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/callback/credentials", m.Handler.Callback)
	rg.POST("/auth/signout", m.Handler.SignOut)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Sessions))
	{
		auth.GET("/auth/session", m.Handler.Session)
	}
}
