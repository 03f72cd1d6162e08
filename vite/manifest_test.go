package vite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	t.Run("preserves key order from file", func(t *testing.T) {
		data := []byte(`{
			"zebra.js": {"file": "assets/zebra.1.js", "src": "zebra.js"},
			"alpha.js": {"file": "assets/alpha.2.js", "src": "alpha.js"},
			"mid.js":   {"file": "assets/mid.3.js", "src": "mid.js"}
		}`)

		m, err := parseManifest(data, "manifest.json")
		require.NoError(t, err)
		assert.Equal(t, []string{"zebra.js", "alpha.js", "mid.js"}, m.Keys())
		assert.Equal(t, 3, m.Len())
	})

	t.Run("decodes entry fields", func(t *testing.T) {
		data := []byte(`{
			"main.js": {
				"file": "assets/main.abc.js",
				"src": "main.js",
				"isEntry": true,
				"css": ["assets/main.css"],
				"imports": ["shared.js"]
			},
			"shared.js": {"file": "assets/shared.def.js", "src": "shared.js"}
		}`)

		m, err := parseManifest(data, "manifest.json")
		require.NoError(t, err)

		entry, ok := m.Entry("main.js")
		require.True(t, ok)
		assert.Equal(t, "assets/main.abc.js", entry.File)
		assert.Equal(t, "main.js", entry.Src)
		assert.True(t, entry.IsEntry)
		assert.Equal(t, []string{"assets/main.css"}, entry.CSS)
		assert.Equal(t, []string{"shared.js"}, entry.Imports)

		entry, ok = m.Entry("shared.js")
		require.True(t, ok)
		assert.False(t, entry.IsEntry)
		assert.Empty(t, entry.CSS)
		assert.Empty(t, entry.Imports)
	})

	t.Run("ignores extra fields vite adds", func(t *testing.T) {
		data := []byte(`{
			"main.js": {
				"file": "assets/main.abc.js",
				"src": "main.js",
				"isDynamicEntry": true,
				"dynamicImports": ["lazy.js"],
				"assets": ["assets/logo.png"]
			}
		}`)

		m, err := parseManifest(data, "manifest.json")
		require.NoError(t, err)
		entry, ok := m.Entry("main.js")
		require.True(t, ok)
		assert.Equal(t, "assets/main.abc.js", entry.File)
	})

	t.Run("rejects wrongly typed fields", func(t *testing.T) {
		data := []byte(`{"main.js": {"file": 42}}`)

		_, err := parseManifest(data, "manifest.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "main.js")
	})

	t.Run("rejects non-object root", func(t *testing.T) {
		_, err := parseManifest([]byte(`["main.js"]`), "manifest.json")
		require.Error(t, err)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, err := parseManifest([]byte(`{"main.js": `), "manifest.json")
		require.Error(t, err)
	})
}
