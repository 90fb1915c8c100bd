package validation

// StringField reads key from an untyped bag. A missing key or a non-string
// value is reported as a violation; the bag itself is never trusted.
func StringField(bag map[string]any, key string) (string, *Violation) {
	raw, ok := bag[key]
	if !ok || raw == nil {
		return "", &Violation{Field: key, Tag: "required", Message: "is required"}
	}
	switch v := raw.(type) {
	case string:
		return v, nil
	case []string:
		// url.Values style submissions carry one value per key
		if len(v) == 1 {
			return v[0], nil
		}
	}
	return "", &Violation{Field: key, Tag: "string", Message: "must be a string"}
}
