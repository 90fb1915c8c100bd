package helpers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// CredentialsBag reads a submitted credentials body as an untyped bag.
// Form posts yield []string values; JSON objects yield whatever the client sent,
// and any other well-formed JSON value yields an empty bag.
func CredentialsBag(c *gin.Context) (map[string]any, error) {
	switch c.ContentType() {
	case binding.MIMEPOSTForm:
		if err := c.Request.ParseForm(); err != nil {
			return nil, err
		}
		return formBag(c.Request.PostForm), nil
	case binding.MIMEMultipartPOSTForm:
		form, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		return formBag(form.Value), nil
	}

	var body any
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, err
	}
	bag, ok := body.(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}
	return bag, nil
}

func formBag(values map[string][]string) map[string]any {
	bag := make(map[string]any, len(values))
	for k, v := range values {
		bag[k] = v
	}
	return bag
}
