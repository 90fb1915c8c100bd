package web

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviders_Wrap(t *testing.T) {
	cases := map[string]struct {
		theme    string
		children template.HTML
		expected template.HTML
	}{
		"wraps children in main inside the provider": {
			theme:    "light",
			children: "<p>hi</p>",
			expected: `<div data-provider="ui" data-theme="light" class="light text-foreground bg-background"><main><p>hi</p></main></div>`,
		},
		"dark theme": {
			theme:    " Dark ",
			children: "",
			expected: `<div data-provider="ui" data-theme="dark" class="dark text-foreground bg-background"><main></main></div>`,
		},
		"unknown theme falls back to light": {
			theme:    `"><script>`,
			children: "x",
			expected: `<div data-provider="ui" data-theme="light" class="light text-foreground bg-background"><main>x</main></div>`,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := NewProviders(tc.theme).Wrap(tc.children)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestPages_RenderWrapsBody(t *testing.T) {
	pages := NewPages(NewProviders("dark"))

	out, err := pages.render("Login", "login", loginView{Email: `a"<b>@example.com`, Error: "Invalid credentials."})
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<title>Login</title>")
	assert.Contains(t, html, `data-theme="dark"`)
	assert.Regexp(t, `(?s)<main>.*<form method="post" action="/login">.*</main>`, html)
	assert.Contains(t, html, "Invalid credentials.")
	assert.NotContains(t, html, `a"<b>@example.com`)
}

func TestPages_UnknownPage(t *testing.T) {
	_, err := NewPages(NewProviders("light")).render("x", "missing", nil)
	assert.Error(t, err)
}
