package vite

import (
	"fmt"
	"strings"
)

// ConfigNotFoundError is returned when a helper references a configuration
// name that was never registered on the loader.
type ConfigNotFoundError struct {
	Name string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("cannot find %q vite configuration", e.Name)
}

// ManifestLoadError is returned when the manifest file cannot be read or
// does not parse as a Vite manifest. It carries the resolved path so the
// caller can tell which configuration's manifest is broken.
type ManifestLoadError struct {
	Path string
	Err  error
}

func (e *ManifestLoadError) Error() string {
	return fmt.Sprintf("cannot read vite manifest file at %s: %v", e.Path, e.Err)
}

func (e *ManifestLoadError) Unwrap() error {
	return e.Err
}

// AssetNotFoundError is returned when a requested path is absent from a
// successfully loaded manifest.
type AssetNotFoundError struct {
	Path         string
	ManifestPath string
}

func (e *AssetNotFoundError) Error() string {
	return fmt.Sprintf("cannot find %s in vite manifest at %s", e.Path, e.ManifestPath)
}

// PolyfillsNotFoundError is returned when no manifest key contains the
// configured legacy polyfills motif.
type PolyfillsNotFoundError struct {
	Motif        string
	ManifestPath string
}

func (e *PolyfillsNotFoundError) Error() string {
	return fmt.Sprintf("vite legacy polyfills (motif %q) not found in manifest at %s", e.Motif, e.ManifestPath)
}

// CircularImportError is returned when the manifest import graph contains a
// cycle. The walk fails fast instead of recursing forever; Stack holds the
// chain of manifest keys that led back to Path.
type CircularImportError struct {
	Path  string
	Stack []string
}

func (e *CircularImportError) Error() string {
	return fmt.Sprintf("circular import in vite manifest: %s -> %s",
		strings.Join(e.Stack, " -> "), e.Path)
}
