package vite

import (
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
)

// AssetLoader resolves Vite assets for one or more named configurations.
// It owns the configuration registry plus two lazily populated caches: the
// parsed manifest and the normalized static URL of each configuration.
// Cached values never change once computed, so the loader is safe for
// arbitrarily many concurrent readers; configurations are expected to be
// registered during application startup, before serving begins.
type AssetLoader struct {
	// hostStaticURL is the host application's static base URL, e.g.
	// "/static/" or a CDN origin. Configuration prefixes are joined onto
	// it.
	hostStaticURL string

	// hostStaticRoot is the host application's static file directory,
	// used to compute default manifest paths.
	hostStaticRoot string

	// fsys, when set, is the filesystem manifests are read from instead
	// of the OS filesystem. Lets applications embed the manifest.
	fsys fs.FS

	logger *slog.Logger

	mu         sync.RWMutex
	configs    map[string]Config
	manifests  map[string]*Manifest
	staticURLs map[string]string
}

// Option configures an AssetLoader.
type Option func(*AssetLoader)

// WithLogger sets the loader's logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *AssetLoader) {
		l.logger = logger
	}
}

// WithFS makes the loader read manifest files from fsys instead of the
// OS filesystem. Manifest paths must then be fs-style: slash-separated,
// no leading slash.
func WithFS(fsys fs.FS) Option {
	return func(l *AssetLoader) {
		l.fsys = fsys
	}
}

// NewAssetLoader builds a loader for the given host static base URL and
// static root directory. Configurations are added with Register.
func NewAssetLoader(hostStaticURL, hostStaticRoot string, opts ...Option) *AssetLoader {
	l := &AssetLoader{
		hostStaticURL:  hostStaticURL,
		hostStaticRoot: hostStaticRoot,
		logger:         slog.Default(),
		configs:        make(map[string]Config),
		manifests:      make(map[string]*Manifest),
		staticURLs:     make(map[string]string),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Register stores a configuration under name, filling in package defaults
// for zero-valued fields. Re-registering a name replaces the previous
// configuration; do this only before the loader starts serving lookups.
func (l *AssetLoader) Register(name string, cfg Config) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.configs[name] = cfg.withDefaults()
}

// RegisterAll registers every configuration in the map.
func (l *AssetLoader) RegisterAll(configs map[string]Config) {
	for name, cfg := range configs {
		l.Register(name, cfg)
	}
}

// Lookup returns the configuration registered under name.
func (l *AssetLoader) Lookup(name string) (Config, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	cfg, ok := l.configs[name]
	if !ok {
		return Config{}, &ConfigNotFoundError{Name: name}
	}
	return cfg, nil
}

// ConfigNames returns the registered configuration names, sorted.
func (l *AssetLoader) ConfigNames() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.configs))
	for name := range l.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Manifest returns the parsed manifest of a configuration, loading it on
// first use. See AssetTags for the usual way to consume it.
func (l *AssetLoader) Manifest(configName string) (*Manifest, error) {
	return l.manifestFor(configName)
}

// staticURLFor returns the configuration's static base URL: the host
// static URL joined with the configuration prefix, normalized to end with
// exactly one trailing slash. Computed once per configuration.
func (l *AssetLoader) staticURLFor(name string) (string, error) {
	l.mu.RLock()
	cached, ok := l.staticURLs[name]
	l.mu.RUnlock()
	if ok {
		return cached, nil
	}

	cfg, err := l.Lookup(name)
	if err != nil {
		return "", err
	}

	staticURL := joinURL(l.hostStaticURL, cfg.StaticURLPrefix)
	if !strings.HasSuffix(staticURL, "/") {
		staticURL += "/"
	}

	l.mu.Lock()
	// First successful computation wins; concurrent racers compute the
	// same value anyway.
	if cached, ok := l.staticURLs[name]; ok {
		staticURL = cached
	} else {
		l.staticURLs[name] = staticURL
	}
	l.mu.Unlock()

	return staticURL, nil
}

// manifestFor returns the configuration's parsed manifest, reading and
// parsing the file on first use. Successful loads are cached for the
// process lifetime; a manifest change on disk requires a restart. Failed
// loads are not cached, so the next call retries the read.
func (l *AssetLoader) manifestFor(name string) (*Manifest, error) {
	l.mu.RLock()
	cached, ok := l.manifests[name]
	l.mu.RUnlock()
	if ok {
		return cached, nil
	}

	cfg, err := l.Lookup(name)
	if err != nil {
		return nil, err
	}

	path := cfg.ComputedManifestPath(l.hostStaticRoot)
	var data []byte
	if l.fsys != nil {
		data, err = fs.ReadFile(l.fsys, path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, &ManifestLoadError{Path: path, Err: err}
	}
	manifest, err := parseManifest(data, path)
	if err != nil {
		return nil, &ManifestLoadError{Path: path, Err: err}
	}

	l.mu.Lock()
	if cached, ok := l.manifests[name]; ok {
		manifest = cached
	} else {
		l.manifests[name] = manifest
	}
	l.mu.Unlock()

	l.logger.Debug("Loaded vite manifest",
		slog.String("config", name),
		slog.String("path", path),
		slog.Int("entries", manifest.Len()))

	return manifest, nil
}
