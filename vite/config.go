// Package vite resolves Vite build artifacts into HTML inclusion tags.
//
// In development mode URLs point at the Vite dev server, which serves
// assets live and injects CSS by itself. In production mode the loader
// reads the manifest.json generated by `vite build`, maps logical entry
// paths to hashed output files, and collects each entry's transitive CSS
// dependencies into <link> tags.
package vite

import "path/filepath"

// Defaults applied to zero-valued Config fields.
const (
	DefaultDevServerProtocol    = "http"
	DefaultDevServerHost        = "localhost"
	DefaultDevServerPort        = 3000
	DefaultWSClientURL          = "@vite/client"
	DefaultLegacyPolyfillsMotif = "legacy-polyfills"

	// manifestFileName is the file `vite build` writes at the root of the
	// build output directory.
	manifestFileName = "manifest.json"
)

// Config holds the settings for one named Vite environment. A loader can
// hold several (e.g. one per frontend bundle), looked up by name.
type Config struct {
	// AssetsPath is the location of compiled assets, used as the static
	// root in dev mode.
	AssetsPath string

	// DevMode selects dev-server resolution over manifest resolution.
	DevMode bool

	// Dev server origin parts. Zero values fall back to the usual Vite
	// defaults (http://localhost:3000).
	DevServerProtocol string
	DevServerHost     string
	DevServerPort     int

	// WSClientURL is the dev server path of the HMR client script.
	WSClientURL string

	// StaticURLPrefix is joined onto the host's static base URL.
	StaticURLPrefix string

	// LegacyPolyfillsMotif is the substring identifying the polyfills
	// bundle emitted by @vitejs/plugin-legacy. Polyfill filenames are
	// hashed, so the entry is found by motif scan rather than key lookup.
	LegacyPolyfillsMotif string

	// ManifestPath overrides the manifest location. When empty the
	// manifest is expected at StaticRoot(...)/manifest.json.
	ManifestPath string
}

// withDefaults returns a copy of c with zero-valued fields replaced by the
// package defaults. Loaders normalize configs once at registration.
func (c Config) withDefaults() Config {
	if c.DevServerProtocol == "" {
		c.DevServerProtocol = DefaultDevServerProtocol
	}
	if c.DevServerHost == "" {
		c.DevServerHost = DefaultDevServerHost
	}
	if c.DevServerPort == 0 {
		c.DevServerPort = DefaultDevServerPort
	}
	if c.WSClientURL == "" {
		c.WSClientURL = DefaultWSClientURL
	}
	if c.LegacyPolyfillsMotif == "" {
		c.LegacyPolyfillsMotif = DefaultLegacyPolyfillsMotif
	}
	return c
}

// StaticRoot returns the filesystem root of this configuration's assets.
// hostStaticRoot is the host application's static file directory.
func (c Config) StaticRoot(hostStaticRoot string) string {
	if c.DevMode {
		return c.AssetsPath
	}
	return filepath.Join(hostStaticRoot, c.StaticURLPrefix)
}

// ComputedManifestPath returns the manifest location: the explicit
// ManifestPath override when set, otherwise manifest.json under the
// static root.
func (c Config) ComputedManifestPath(hostStaticRoot string) string {
	if c.ManifestPath != "" {
		return c.ManifestPath
	}
	return filepath.Join(c.StaticRoot(hostStaticRoot), manifestFileName)
}
