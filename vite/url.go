package vite

import "strings"

// joinURL resolves ref against base the way browsers resolve relative
// URLs: an absolute ref wins outright, a root-relative ref replaces the
// base path while keeping its origin, and anything else replaces the last
// path segment of the base. Static URLs are normalized to a trailing
// slash before joining, so the common case is plain concatenation with no
// doubled slashes.
func joinURL(base, ref string) string {
	switch {
	case ref == "":
		return base
	case hasScheme(ref):
		return ref
	case base == "":
		return ref
	}

	origin, path := splitOrigin(base)
	if strings.HasPrefix(ref, "/") {
		return origin + ref
	}
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return origin + path[:i+1] + ref
	}
	return origin + "/" + ref
}

// hasScheme reports whether s starts with a URL scheme ("http://", ...).
func hasScheme(s string) bool {
	i := strings.Index(s, "://")
	if i <= 0 {
		return false
	}
	// Scheme chars precede "://"; a slash before it means s was a path.
	return !strings.ContainsAny(s[:i], "/?#")
}

// splitOrigin splits an absolute URL into origin (scheme://host[:port])
// and path. Relative URLs have an empty origin.
func splitOrigin(s string) (origin, path string) {
	i := strings.Index(s, "://")
	if i <= 0 {
		return "", s
	}
	rest := s[i+3:]
	j := strings.IndexAny(rest, "/?#")
	if j < 0 {
		return s, ""
	}
	return s[:i+3+j], s[i+3+j:]
}
