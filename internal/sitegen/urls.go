package sitegen

import (
	"net/url"
	"regexp"
	"strings"
)

var schemePattern = regexp.MustCompile(`(?i)^https?://`)

// NormalizeURL trims an externally supplied URL, prefixes https:// when no
// scheme is present and reparses the result. It returns the empty string when
// the value cannot be turned into an absolute URL, so callers treat the field
// as absent instead of emitting a broken link.
//
// Normalizing an already normalized URL returns it unchanged, which keeps a
// round trip through the profile editor from rewriting stored links.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if !schemePattern.MatchString(raw) {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}

	// Bare origins gain a trailing slash, the same shape browsers produce.
	if u.Path == "" {
		u.Path = "/"
	}

	return u.String()
}

func normalizePtr(raw *string) string {
	if raw == nil {
		return ""
	}
	return NormalizeURL(*raw)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
