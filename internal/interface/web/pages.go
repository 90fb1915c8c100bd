package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// Pages renders named page bodies wrapped by Providers inside the HTML layout.
type Pages struct {
	tmpl      *template.Template
	providers *Providers
}

func NewPages(providers *Providers) *Pages {
	return &Pages{
		tmpl:      template.Must(template.ParseFS(templateFS, "templates/*.html")),
		providers: providers,
	}
}

// Render writes page with data and the given status.
func (p *Pages) Render(c *gin.Context, status int, title, page string, data any) {
	out, err := p.render(title, page, data)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", out)
}

func (p *Pages) render(title, page string, data any) ([]byte, error) {
	var body bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&body, page, data); err != nil {
		return nil, err
	}
	wrapped, err := p.providers.Wrap(template.HTML(body.String())) //nolint:gosec // template output
	if err != nil {
		return nil, err
	}
	var doc bytes.Buffer
	err = p.tmpl.ExecuteTemplate(&doc, "layout", struct {
		Title string
		Body  template.HTML
	}{Title: title, Body: wrapped})
	if err != nil {
		return nil, err
	}
	return doc.Bytes(), nil
}
