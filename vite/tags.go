package vite

import (
	"fmt"
	"strings"
)

// HMRClientTag returns the script tag for the Vite HMR (hot module
// replacement) client. Dev mode only; in production it returns an empty
// string, which is a success outcome rather than an error.
func (l *AssetLoader) HMRClientTag(configName string) (string, error) {
	cfg, err := l.Lookup(configName)
	if err != nil {
		return "", err
	}
	if !cfg.DevMode {
		return "", nil
	}
	staticURL, err := l.staticURLFor(configName)
	if err != nil {
		return "", err
	}
	src := devServerURL(cfg, staticURL, cfg.WSClientURL)
	return renderScriptTag(src, []attr{{"type", "module"}}), nil
}

// AssetTags returns the full HTML inclusion for a JS/TS asset: in dev
// mode a single module script pointing at the dev server (Vite injects
// CSS itself there); in production one stylesheet link per unique CSS
// dependency, in first-discovery order, followed by the module script for
// the hashed output file. extra attributes are merged into the script
// tag and may override the type/crossorigin defaults.
func (l *AssetLoader) AssetTags(path, configName string, extra Attrs) (string, error) {
	cfg, err := l.Lookup(configName)
	if err != nil {
		return "", err
	}
	staticURL, err := l.staticURLFor(configName)
	if err != nil {
		return "", err
	}

	if cfg.DevMode {
		src := devServerURL(cfg, staticURL, path)
		return renderScriptTag(src, []attr{{"type", "module"}}), nil
	}

	manifest, err := l.manifestFor(configName)
	if err != nil {
		return "", err
	}
	entry, ok := manifest.Entry(path)
	if !ok {
		return "", &AssetNotFoundError{Path: path, ManifestPath: manifest.Path()}
	}

	var tags []string
	seen := make(map[string]bool)
	if err := collectCSSTags(manifest, path, staticURL, seen, nil, &tags); err != nil {
		return "", err
	}

	src := joinURL(staticURL, entry.File)
	tags = append(tags, renderScriptTag(src, mergeAttrs(scriptAttrs(), extra)))

	return strings.Join(tags, "\n"), nil
}

// AssetURL resolves a single asset to its URL without walking
// dependencies. Useful when embedding the URL by hand, e.g. in an <img>.
func (l *AssetLoader) AssetURL(path, configName string) (string, error) {
	cfg, err := l.Lookup(configName)
	if err != nil {
		return "", err
	}
	staticURL, err := l.staticURLFor(configName)
	if err != nil {
		return "", err
	}

	if cfg.DevMode {
		return devServerURL(cfg, staticURL, path), nil
	}

	manifest, err := l.manifestFor(configName)
	if err != nil {
		return "", err
	}
	entry, ok := manifest.Entry(path)
	if !ok {
		return "", &AssetNotFoundError{Path: path, ManifestPath: manifest.Path()}
	}
	return joinURL(staticURL, entry.File), nil
}

// LegacyPolyfillsTag returns the script tag for the polyfills bundle
// emitted by @vitejs/plugin-legacy. The bundle's manifest key is hashed,
// so entries are scanned in manifest order for the first key containing
// the configured motif. Include it at the end of <body>, before other
// legacy scripts. Dev mode returns an empty string.
func (l *AssetLoader) LegacyPolyfillsTag(configName string, extra Attrs) (string, error) {
	cfg, err := l.Lookup(configName)
	if err != nil {
		return "", err
	}
	if cfg.DevMode {
		return "", nil
	}
	staticURL, err := l.staticURLFor(configName)
	if err != nil {
		return "", err
	}
	manifest, err := l.manifestFor(configName)
	if err != nil {
		return "", err
	}

	for _, key := range manifest.Keys() {
		if !strings.Contains(key, cfg.LegacyPolyfillsMotif) {
			continue
		}
		entry, _ := manifest.Entry(key)
		src := joinURL(staticURL, entry.File)
		return renderScriptTag(src, mergeAttrs(legacyScriptAttrs(), extra)), nil
	}

	return "", &PolyfillsNotFoundError{Motif: cfg.LegacyPolyfillsMotif, ManifestPath: manifest.Path()}
}

// LegacyAssetTag returns the script tag for a legacy (nomodule) bundle.
// Legacy bundles only exist in production builds, so dev mode returns an
// empty string.
func (l *AssetLoader) LegacyAssetTag(path, configName string, extra Attrs) (string, error) {
	cfg, err := l.Lookup(configName)
	if err != nil {
		return "", err
	}
	if cfg.DevMode {
		return "", nil
	}
	staticURL, err := l.staticURLFor(configName)
	if err != nil {
		return "", err
	}
	manifest, err := l.manifestFor(configName)
	if err != nil {
		return "", err
	}
	entry, ok := manifest.Entry(path)
	if !ok {
		return "", &AssetNotFoundError{Path: path, ManifestPath: manifest.Path()}
	}

	src := joinURL(staticURL, entry.File)
	return renderScriptTag(src, mergeAttrs(legacyScriptAttrs(), extra)), nil
}

// collectCSSTags walks the imports graph depth-first from key and appends
// one stylesheet tag per unique CSS path. Imported chunks recurse first,
// so a dependency's CSS precedes its importer's own CSS; duplicates across
// branches are filtered through the shared seen set. stack holds the keys
// currently being walked and turns a cyclic manifest into an explicit
// error instead of unbounded recursion.
func collectCSSTags(manifest *Manifest, key, staticURL string, seen map[string]bool, stack []string, tags *[]string) error {
	for _, ancestor := range stack {
		if ancestor == key {
			return &CircularImportError{Path: key, Stack: append([]string(nil), stack...)}
		}
	}

	entry, ok := manifest.Entry(key)
	if !ok {
		return &AssetNotFoundError{Path: key, ManifestPath: manifest.Path()}
	}

	stack = append(stack, key)
	for _, imported := range entry.Imports {
		if err := collectCSSTags(manifest, imported, staticURL, seen, stack, tags); err != nil {
			return err
		}
	}

	for _, cssPath := range entry.CSS {
		if !seen[cssPath] {
			*tags = append(*tags, renderStylesheetTag(joinURL(staticURL, cssPath)))
		}
		seen[cssPath] = true
	}

	return nil
}

// devServerURL builds the dev server URL of an asset: the configured
// origin joined with the static URL path of the asset.
func devServerURL(cfg Config, staticURL, path string) string {
	origin := fmt.Sprintf("%s://%s:%d", cfg.DevServerProtocol, cfg.DevServerHost, cfg.DevServerPort)
	return joinURL(origin, joinURL(staticURL, path))
}
