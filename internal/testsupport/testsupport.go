// Package testsupport provides shared helpers for tests: manifest
// fixtures on disk, preconfigured asset loaders, and a quiet logger.
package testsupport

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bryan1001/govite/vite"
)

// SampleManifestJSON is a production manifest with an entry chain
// (main -> views/shared) that shares a CSS file across branches, plus a
// legacy build and its polyfills bundle.
const SampleManifestJSON = `{
  "main.js": {
    "file": "assets/main.abc123.js",
    "src": "main.js",
    "isEntry": true,
    "css": ["assets/main.def456.css"],
    "imports": ["views/shared.js"]
  },
  "views/shared.js": {
    "file": "assets/shared.789abc.js",
    "src": "views/shared.js",
    "css": ["assets/main.def456.css", "assets/shared.fed321.css"]
  },
  "main-legacy.js": {
    "file": "assets/main-legacy.aaa111.js",
    "src": "main-legacy.js",
    "isEntry": true
  },
  "vite/legacy-polyfills-legacy": {
    "file": "assets/polyfills-legacy.bbb222.js",
    "src": "vite/legacy-polyfills-legacy",
    "isEntry": true
  }
}`

// QuietLogger returns a logger that discards everything.
func QuietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WriteManifest writes contents to manifest.json in a fresh temp dir and
// returns the file path.
func WriteManifest(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

// NewProdLoader returns a loader with a production "default" configuration
// pointing at the given manifest file, serving under /static/.
func NewProdLoader(t *testing.T, manifestPath string) *vite.AssetLoader {
	t.Helper()
	loader := vite.NewAssetLoader("/static/", t.TempDir(), vite.WithLogger(QuietLogger()))
	loader.Register("default", vite.Config{
		ManifestPath: manifestPath,
	})
	return loader
}

// NewDevLoader returns a loader with a dev-mode "default" configuration
// on the standard Vite dev server origin.
func NewDevLoader(t *testing.T) *vite.AssetLoader {
	t.Helper()
	loader := vite.NewAssetLoader("/static/", t.TempDir(), vite.WithLogger(QuietLogger()))
	loader.Register("default", vite.Config{
		DevMode:    true,
		AssetsPath: t.TempDir(),
	})
	return loader
}
