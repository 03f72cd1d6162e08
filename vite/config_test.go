package vite_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bryan1001/govite/vite"
)

func TestConfigStaticRoot(t *testing.T) {
	t.Run("dev mode uses the assets path", func(t *testing.T) {
		cfg := vite.Config{DevMode: true, AssetsPath: "web/dist/assets"}
		assert.Equal(t, "web/dist/assets", cfg.StaticRoot("/srv/static"))
	})

	t.Run("production joins the host static root and prefix", func(t *testing.T) {
		cfg := vite.Config{StaticURLPrefix: "bundle"}
		assert.Equal(t, filepath.Join("/srv/static", "bundle"), cfg.StaticRoot("/srv/static"))
	})
}

func TestConfigComputedManifestPath(t *testing.T) {
	t.Run("explicit override wins", func(t *testing.T) {
		cfg := vite.Config{ManifestPath: "custom/manifest.json"}
		assert.Equal(t, "custom/manifest.json", cfg.ComputedManifestPath("/srv/static"))
	})

	t.Run("defaults to manifest.json under the static root", func(t *testing.T) {
		cfg := vite.Config{}
		assert.Equal(t, filepath.Join("/srv/static", "manifest.json"), cfg.ComputedManifestPath("/srv/static"))
	})

	t.Run("dev mode defaults under the assets path", func(t *testing.T) {
		cfg := vite.Config{DevMode: true, AssetsPath: "web/dist/assets"}
		assert.Equal(t, filepath.Join("web/dist/assets", "manifest.json"), cfg.ComputedManifestPath("/srv/static"))
	})
}
