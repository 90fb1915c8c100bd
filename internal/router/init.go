package router

import (
	"github.com/oksasatya/go-credentials-login/internal/application"
	"github.com/oksasatya/go-credentials-login/internal/container"
	pginfra "github.com/oksasatya/go-credentials-login/internal/infrastructure/postgres"
	redisinfra "github.com/oksasatya/go-credentials-login/internal/infrastructure/redis"
	handlers "github.com/oksasatya/go-credentials-login/internal/interface/http"
	"github.com/oksasatya/go-credentials-login/internal/interface/web"
	"github.com/oksasatya/go-credentials-login/internal/router/modules"
	"github.com/oksasatya/go-credentials-login/pkg/helpers"
)

type AuthModuleDeps struct {
	Sessions *application.SessionService
	Handler  *handlers.AuthHandler
	Web      *web.Handler
}

func buildAuthDeps() AuthModuleDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	repo := pginfra.NewUserRepository(container.GetPGPool())
	authorizer := application.NewAuthorizer(repo, logger, cfg.DemoLoginEnabled)
	sessions := application.NewSessionService(redisinfra.NewSessionStore(container.GetRedis()), container.GetJWT(), logger)
	login := application.NewLogin(authorizer, sessions)

	handler := handlers.NewAuthHandler(login, logger, cfg.CookieDomain, cfg.CookieSecure)
	pages := web.NewPages(web.NewProviders(cfg.UITheme))
	webHandler := web.NewHandler(login, pages, helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure), logger)

	return AuthModuleDeps{
		Sessions: sessions,
		Handler:  handler,
		Web:      webHandler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildAuthDeps()
	r.Add(modules.NewHealthModule())
	r.Add(modules.NewAuthModule(deps.Handler, deps.Sessions))
	r.AddPage(modules.NewWebModule(deps.Web))
}
