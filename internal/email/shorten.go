package email

import "strings"

// maxDisplayLength is the point past which a URL gets collapsed for
// display in the draft body.
const maxDisplayLength = 60

// ShortenURL rewrites a URL for display: scheme and www. prefixes are
// always stripped; URLs still over the length threshold are collapsed
// to the domain plus the first path segment, then to the bare domain.
func ShortenURL(raw string) string {
	u := strings.TrimPrefix(raw, "https://")
	u = strings.TrimPrefix(u, "http://")
	u = strings.TrimPrefix(u, "www.")

	if len([]rune(u)) <= maxDisplayLength {
		return u
	}

	domain, path, found := strings.Cut(u, "/")
	if !found || path == "" {
		return domain
	}

	first, _, _ := strings.Cut(path, "/")
	short := domain + "/" + first
	if len([]rune(short)) > maxDisplayLength {
		return domain
	}
	return short
}
