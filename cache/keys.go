package cache

import (
	"net/url"
	"strings"
)

// BuildKey returns "namespace:branch?params" with params sorted by name and
// empty values dropped, so equal queries always map to the same key and
// different ordering branches never collide.
func BuildKey(namespace, branch string, params map[string]string) string {
	values := url.Values{}
	for name, value := range params {
		if value == "" {
			continue
		}
		values.Set(name, value)
	}

	var b strings.Builder
	b.WriteString(namespace)
	b.WriteByte(':')
	b.WriteString(branch)
	if encoded := values.Encode(); encoded != "" {
		b.WriteByte('?')
		b.WriteString(encoded)
	}
	return b.String()
}
