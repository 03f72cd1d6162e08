package vite_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryan1001/govite/internal/testsupport"
	"github.com/bryan1001/govite/vite"
)

func TestLookup(t *testing.T) {
	t.Run("returns registered config with defaults applied", func(t *testing.T) {
		loader := vite.NewAssetLoader("/static/", t.TempDir(), vite.WithLogger(testsupport.QuietLogger()))
		loader.Register("default", vite.Config{DevMode: true})

		cfg, err := loader.Lookup("default")
		require.NoError(t, err)
		assert.True(t, cfg.DevMode)
		assert.Equal(t, "http", cfg.DevServerProtocol)
		assert.Equal(t, "localhost", cfg.DevServerHost)
		assert.Equal(t, 3000, cfg.DevServerPort)
		assert.Equal(t, "@vite/client", cfg.WSClientURL)
		assert.Equal(t, "legacy-polyfills", cfg.LegacyPolyfillsMotif)
	})

	t.Run("unregistered name fails with ConfigNotFoundError", func(t *testing.T) {
		loader := vite.NewAssetLoader("/static/", t.TempDir(), vite.WithLogger(testsupport.QuietLogger()))

		_, err := loader.Lookup("missing")
		var notFound *vite.ConfigNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "missing", notFound.Name)
		assert.Contains(t, err.Error(), `"missing"`)
	})

	t.Run("every operation depends on the lookup", func(t *testing.T) {
		loader := vite.NewAssetLoader("/static/", t.TempDir(), vite.WithLogger(testsupport.QuietLogger()))

		var notFound *vite.ConfigNotFoundError

		_, err := loader.AssetTags("main.js", "nope", nil)
		assert.ErrorAs(t, err, &notFound)
		_, err = loader.AssetURL("main.js", "nope")
		assert.ErrorAs(t, err, &notFound)
		_, err = loader.HMRClientTag("nope")
		assert.ErrorAs(t, err, &notFound)
		_, err = loader.LegacyPolyfillsTag("nope", nil)
		assert.ErrorAs(t, err, &notFound)
		_, err = loader.LegacyAssetTag("main-legacy.js", "nope", nil)
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestStaticURLNormalization(t *testing.T) {
	// The static URL must end with exactly one slash however the host URL
	// and prefix are spelled. Observable through resolved asset URLs.
	tests := []struct {
		name      string
		hostURL   string
		prefix    string
		wantedURL string
	}{
		{"no prefix", "/static/", "", "/static/assets/main.abc123.js"},
		{"prefix without slash", "/static/", "bundle", "/static/bundle/assets/main.abc123.js"},
		{"prefix with slash", "/static/", "bundle/", "/static/bundle/assets/main.abc123.js"},
		{"host without trailing slash", "/static", "", "/static/assets/main.abc123.js"},
		{"cdn host", "https://cdn.example.com/static/", "", "https://cdn.example.com/static/assets/main.abc123.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manifestPath := testsupport.WriteManifest(t, testsupport.SampleManifestJSON)
			loader := vite.NewAssetLoader(tt.hostURL, t.TempDir(), vite.WithLogger(testsupport.QuietLogger()))
			loader.Register("default", vite.Config{
				StaticURLPrefix: tt.prefix,
				ManifestPath:    manifestPath,
			})

			url, err := loader.AssetURL("main.js", "default")
			require.NoError(t, err)
			assert.Equal(t, tt.wantedURL, url)
			assert.NotContains(t, strings.TrimPrefix(url, "https://"), "//")
		})
	}
}

func TestManifestCaching(t *testing.T) {
	t.Run("file is read at most once per config", func(t *testing.T) {
		manifestPath := testsupport.WriteManifest(t, testsupport.SampleManifestJSON)
		loader := testsupport.NewProdLoader(t, manifestPath)

		first, err := loader.AssetURL("main.js", "default")
		require.NoError(t, err)

		// Deleting the backing file proves later calls hit the cache.
		require.NoError(t, os.Remove(manifestPath))

		second, err := loader.AssetURL("main.js", "default")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("failed load is not cached and retries", func(t *testing.T) {
		dir := t.TempDir()
		manifestPath := dir + "/manifest.json"
		loader := testsupport.NewProdLoader(t, manifestPath)

		_, err := loader.AssetURL("main.js", "default")
		var loadErr *vite.ManifestLoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, manifestPath, loadErr.Path)

		require.NoError(t, os.WriteFile(manifestPath, []byte(testsupport.SampleManifestJSON), 0o644))

		url, err := loader.AssetURL("main.js", "default")
		require.NoError(t, err)
		assert.Equal(t, "/static/assets/main.abc123.js", url)
	})

	t.Run("parse failure carries path and cause", func(t *testing.T) {
		manifestPath := testsupport.WriteManifest(t, `{"broken":`)
		loader := testsupport.NewProdLoader(t, manifestPath)

		_, err := loader.AssetURL("main.js", "default")
		var loadErr *vite.ManifestLoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, manifestPath, loadErr.Path)
		assert.NotNil(t, loadErr.Err)
		assert.Contains(t, err.Error(), manifestPath)
	})
}

func TestConcurrentFirstAccess(t *testing.T) {
	manifestPath := testsupport.WriteManifest(t, testsupport.SampleManifestJSON)
	loader := testsupport.NewProdLoader(t, manifestPath)

	const goroutines = 16
	results := make(chan string, goroutines)
	errs := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			url, err := loader.AssetURL("main.js", "default")
			results <- url
			errs <- err
		}()
	}

	for i := 0; i < goroutines; i++ {
		require.NoError(t, <-errs)
		assert.Equal(t, "/static/assets/main.abc123.js", <-results)
	}
}
