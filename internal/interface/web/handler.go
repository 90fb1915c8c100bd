package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-credentials-login/internal/application"
	"github.com/oksasatya/go-credentials-login/internal/domain/entity"
	"github.com/oksasatya/go-credentials-login/pkg/helpers"
)

// LoginFlow is what the pages need from the application layer.
type LoginFlow interface {
	SignIn(ctx context.Context, credentials map[string]any) (*application.Session, error)
	Current(ctx context.Context, token string) (*entity.Identity, error)
	SignOut(ctx context.Context, token string) error
}

type loginView struct {
	Email string
	Error string
}

type Handler struct {
	Flow    LoginFlow
	Pages   *Pages
	Cookies *helpers.Manager
	Logger  *logrus.Logger
}

func NewHandler(flow LoginFlow, pages *Pages, cookies *helpers.Manager, logger *logrus.Logger) *Handler {
	return &Handler{Flow: flow, Pages: pages, Cookies: cookies, Logger: logger}
}

// LoginPage GET /login
func (h *Handler) LoginPage(c *gin.Context) {
	h.Pages.Render(c, http.StatusOK, "Login", "login", loginView{})
}

// Login POST /login
func (h *Handler) Login(c *gin.Context) {
	bag, err := helpers.CredentialsBag(c)
	if err != nil {
		h.Pages.Render(c, http.StatusBadRequest, "Login", "login", loginView{Error: "Invalid credentials."})
		return
	}
	email, _ := c.GetPostForm("email")

	sess, err := h.Flow.SignIn(c.Request.Context(), bag)
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		h.Pages.Render(c, http.StatusUnauthorized, "Login", "login", loginView{Email: email, Error: "Invalid credentials."})
		return
	case err != nil:
		helpers.LogEntry(c.Request.Context(), h.Logger).WithError(err).Error("sign in failed")
		h.Pages.Render(c, http.StatusInternalServerError, "Login", "login", loginView{Email: email, Error: "Something went wrong."})
		return
	}

	h.Cookies.SetSession(c, sess.Token, sess.ExpiresAt)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Dashboard GET /dashboard; anonymous visitors and dead sessions are sent to /login.
func (h *Handler) Dashboard(c *gin.Context) {
	token, err := c.Cookie(helpers.SessionCookieName)
	if err != nil || token == "" {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	id, err := h.Flow.Current(c.Request.Context(), token)
	switch {
	case errors.Is(err, application.ErrInvalidSession):
		h.Cookies.Clear(c)
		c.Redirect(http.StatusSeeOther, "/login")
		return
	case err != nil:
		helpers.LogEntry(c.Request.Context(), h.Logger).WithError(err).Error("session lookup failed")
		h.Pages.Render(c, http.StatusInternalServerError, "Error", "error", nil)
		return
	}
	h.Pages.Render(c, http.StatusOK, "Dashboard", "dashboard", struct{ Identity *entity.Identity }{id})
}

// Logout POST /logout
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(helpers.SessionCookieName); err == nil && token != "" {
		if err := h.Flow.SignOut(c.Request.Context(), token); err != nil {
			helpers.LogEntry(c.Request.Context(), h.Logger).WithError(err).Warn("session revoke failed")
		}
	}
	h.Cookies.Clear(c)
	c.Redirect(http.StatusSeeOther, "/login")
}
