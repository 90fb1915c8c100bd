package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-credentials-login/internal/interface/web"
)

type WebModule struct {
	Handler *web.Handler
}

func NewWebModule(h *web.Handler) *WebModule { return &WebModule{Handler: h} }

func (m *WebModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", func(c *gin.Context) { c.Redirect(http.StatusSeeOther, "/dashboard") })
	rg.GET("/login", m.Handler.LoginPage)
	rg.POST("/login", m.Handler.Login)
	rg.GET("/dashboard", m.Handler.Dashboard)
	rg.POST("/logout", m.Handler.Logout)
}
