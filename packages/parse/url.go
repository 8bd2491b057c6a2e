package parse

import "strings"

// EnsureScheme prepends "http://" to URLs that carry no scheme, so
// "example.com" works the way curl users expect. Already-prefixed URLs
// pass through untouched, which makes the function idempotent. No
// other validation happens here; a garbage host surfaces later as a
// transport error.
func EnsureScheme(rawURL string) string {
	if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		return rawURL
	}
	return "http://" + rawURL
}
