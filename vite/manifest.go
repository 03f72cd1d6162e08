package vite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// ManifestEntry is one row of the Vite manifest: a single build output
// keyed by its logical source path.
type ManifestEntry struct {
	// File is the hashed output filename, relative to the static root.
	File string `json:"file"`

	// Src is the original source path, informational only.
	Src string `json:"src"`

	// IsEntry marks top-level entry points.
	IsEntry bool `json:"isEntry"`

	// CSS lists stylesheet outputs this chunk requires directly.
	CSS []string `json:"css"`

	// Imports lists the manifest keys of chunks this one depends on.
	Imports []string `json:"imports"`
}

// Manifest is the parsed manifest.json of one configuration. Vite emits
// entries in a deterministic order and the legacy polyfills scan depends
// on it, so the key order of the file is preserved alongside the map.
type Manifest struct {
	path    string
	keys    []string
	entries map[string]ManifestEntry
}

// Entry returns the entry for a logical path.
func (m *Manifest) Entry(key string) (ManifestEntry, bool) {
	e, ok := m.entries[key]
	return e, ok
}

// Keys returns the manifest keys in file order. Callers must not mutate
// the returned slice.
func (m *Manifest) Keys() []string {
	return m.keys
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	return len(m.keys)
}

// Path returns the file the manifest was loaded from.
func (m *Manifest) Path() string {
	return m.path
}

// parseManifest decodes manifest.json content. It walks the top-level
// object token by token so the file's key order survives; entry values
// are decoded strictly into ManifestEntry (wrong field types fail the
// parse, extra fields such as isDynamicEntry are ignored).
func parseManifest(data []byte, path string) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid manifest JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("manifest root must be a JSON object, got %v", tok)
	}

	m := &Manifest{
		path:    path,
		entries: make(map[string]ManifestEntry),
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid manifest JSON: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("manifest key must be a string, got %v", tok)
		}

		var entry ManifestEntry
		if err := dec.Decode(&entry); err != nil {
			return nil, fmt.Errorf("invalid manifest entry %q: %w", key, err)
		}

		if _, dup := m.entries[key]; !dup {
			m.keys = append(m.keys, key)
		}
		m.entries[key] = entry
	}

	if _, err := dec.Token(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("invalid manifest JSON: %w", err)
	}

	return m, nil
}
