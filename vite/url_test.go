package vite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		ref  string
		want string
	}{
		{"relative onto trailing slash", "/static/", "main.js", "/static/main.js"},
		{"nested relative", "/static/", "assets/main.abc.js", "/static/assets/main.abc.js"},
		{"empty ref returns base", "/static/", "", "/static/"},
		{"empty base returns ref", "", "main.js", "main.js"},
		{"absolute ref wins", "/static/", "https://cdn.example.com/x.js", "https://cdn.example.com/x.js"},
		{"root-relative replaces path", "/static/app/", "/other.js", "/other.js"},
		{"root-relative keeps origin", "http://localhost:3000", "/static/main.js", "http://localhost:3000/static/main.js"},
		{"relative replaces last segment", "/static/old.js", "new.js", "/static/new.js"},
		{"origin without path", "http://localhost:3000", "main.js", "http://localhost:3000/main.js"},
		{"absolute base with trailing slash", "https://cdn.example.com/static/", "main.js", "https://cdn.example.com/static/main.js"},
		{"no doubled slashes", "https://cdn.example.com/static/", "assets/app.js", "https://cdn.example.com/static/assets/app.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, joinURL(tt.base, tt.ref))
		})
	}
}

func TestHasScheme(t *testing.T) {
	assert.True(t, hasScheme("http://localhost:3000"))
	assert.True(t, hasScheme("https://cdn.example.com/x"))
	assert.False(t, hasScheme("/static/main.js"))
	assert.False(t, hasScheme("main.js"))
	assert.False(t, hasScheme("://nope"))
	assert.False(t, hasScheme("/a://b"))
}

func TestSplitOrigin(t *testing.T) {
	origin, path := splitOrigin("http://localhost:3000/static/x")
	assert.Equal(t, "http://localhost:3000", origin)
	assert.Equal(t, "/static/x", path)

	origin, path = splitOrigin("http://localhost:3000")
	assert.Equal(t, "http://localhost:3000", origin)
	assert.Equal(t, "", path)

	origin, path = splitOrigin("/static/x")
	assert.Equal(t, "", origin)
	assert.Equal(t, "/static/x", path)
}
