package web

import (
	"bytes"
	"html/template"
	"strings"
)

var providersTmpl = template.Must(template.New("providers").Parse(
	`<div data-provider="ui" data-theme="{{.Theme}}" class="{{.Theme}} text-foreground bg-background"><main>{{.Children}}</main></div>`,
))

// Providers wraps page content in the UI theme provider.
type Providers struct {
	Theme string
}

func NewProviders(theme string) *Providers {
	theme = strings.ToLower(strings.TrimSpace(theme))
	if theme != "dark" {
		theme = "light"
	}
	return &Providers{Theme: theme}
}

// Wrap returns children inside the provider context. Children are trusted markup.
func (p *Providers) Wrap(children template.HTML) (template.HTML, error) {
	var buf bytes.Buffer
	err := providersTmpl.Execute(&buf, struct {
		Theme    string
		Children template.HTML
	}{Theme: p.Theme, Children: children})
	if err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil //nolint:gosec // built from escaped templates
}
