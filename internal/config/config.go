// Package config provides configuration management using Viper
package config

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/bryan1001/govite/vite"
)

// Environment types
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// LogLevel represents the logging level for the application
type LogLevel string

// Available log levels
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Config holds all configuration parameters for the application
type Config struct {
	// Application settings
	AppName     string   `mapstructure:"appname"`
	AppPort     string   `mapstructure:"appport"`
	Environment string   `mapstructure:"environment"`
	LogLevel    LogLevel `mapstructure:"loglevel"`

	// Static file settings: the host base URL assets are served under and
	// the directory build outputs are collected into.
	StaticURL  string `mapstructure:"staticurl"`
	StaticRoot string `mapstructure:"staticroot"`

	// Vite configurations file (YAML map of named configurations). When
	// unset, the flat GOVITE_VITE_* settings below compose the single
	// "default" configuration.
	ViteConfigFile string `mapstructure:"viteconfigfile"`

	// Flat settings for the "default" Vite configuration.
	ViteDevMode              bool   `mapstructure:"vitedevmode"`
	ViteDevServerProtocol    string `mapstructure:"vitedevserverprotocol"`
	ViteDevServerHost        string `mapstructure:"vitedevserverhost"`
	ViteDevServerPort        int    `mapstructure:"vitedevserverport"`
	ViteWSClientURL          string `mapstructure:"vitewsclienturl"`
	ViteAssetsPath           string `mapstructure:"viteassetspath"`
	ViteStaticURLPrefix      string `mapstructure:"vitestaticurlprefix"`
	ViteManifestPath         string `mapstructure:"vitemanifestpath"`
	ViteLegacyPolyfillsMotif string `mapstructure:"vitelegacypolyfillsmotif"`

	// Logging settings
	LogsDirectory    string `mapstructure:"logsdir"`
	LogsMaxSizeInMb  int    `mapstructure:"logsmaxsizeinmb"`
	LogsMaxBackups   int    `mapstructure:"logsmaxbackups"`
	LogsMaxAgeInDays int    `mapstructure:"logsmaxageindays"`
}

var (
	cfg  *Config
	once sync.Once
)

// GetConfig returns the application configuration
func GetConfig() *Config {
	once.Do(func() {
		loaded, err := Load()
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	})
	return cfg
}

// Load builds a configuration from defaults and environment variables.
// GetConfig caches the first result for the process lifetime; tests call
// Load directly.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("appname", "govite")
	v.SetDefault("appport", "8080")
	v.SetDefault("environment", Development)
	v.SetDefault("loglevel", string(LogLevelDebug))
	v.SetDefault("staticurl", "/static/")
	v.SetDefault("staticroot", "web/dist")
	v.SetDefault("viteconfigfile", "")
	v.SetDefault("vitedevmode", false)
	v.SetDefault("vitedevserverprotocol", "")
	v.SetDefault("vitedevserverhost", "")
	v.SetDefault("vitedevserverport", 0)
	v.SetDefault("vitewsclienturl", "")
	v.SetDefault("viteassetspath", "web/dist/assets")
	v.SetDefault("vitestaticurlprefix", "")
	v.SetDefault("vitemanifestpath", "")
	v.SetDefault("vitelegacypolyfillsmotif", "")
	v.SetDefault("logsdir", "logs")
	v.SetDefault("logsmaxsizeinmb", 20)
	v.SetDefault("logsmaxbackups", 10)
	v.SetDefault("logsmaxageindays", 30)

	// Bind environment variables
	v.BindEnv("appname", "GOVITE_APP_NAME")
	v.BindEnv("appport", "GOVITE_APP_PORT")
	v.BindEnv("environment", "GOVITE_ENV")
	v.BindEnv("loglevel", "GOVITE_LOG_LEVEL")
	v.BindEnv("staticurl", "GOVITE_STATIC_URL")
	v.BindEnv("staticroot", "GOVITE_STATIC_ROOT")
	v.BindEnv("viteconfigfile", "GOVITE_VITE_CONFIG_FILE")
	v.BindEnv("vitedevmode", "GOVITE_VITE_DEV_MODE")
	v.BindEnv("vitedevserverprotocol", "GOVITE_VITE_DEV_SERVER_PROTOCOL")
	v.BindEnv("vitedevserverhost", "GOVITE_VITE_DEV_SERVER_HOST")
	v.BindEnv("vitedevserverport", "GOVITE_VITE_DEV_SERVER_PORT")
	v.BindEnv("vitewsclienturl", "GOVITE_VITE_WS_CLIENT_URL")
	v.BindEnv("viteassetspath", "GOVITE_VITE_ASSETS_PATH")
	v.BindEnv("vitestaticurlprefix", "GOVITE_VITE_STATIC_URL_PREFIX")
	v.BindEnv("vitemanifestpath", "GOVITE_VITE_MANIFEST_PATH")
	v.BindEnv("vitelegacypolyfillsmotif", "GOVITE_VITE_LEGACY_POLYFILLS_MOTIF")
	v.BindEnv("logsdir", "GOVITE_LOGS_DIR")
	v.BindEnv("logsmaxsizeinmb", "GOVITE_LOGS_MAX_SIZE_IN_MB")
	v.BindEnv("logsmaxbackups", "GOVITE_LOGS_MAX_BACKUPS")
	v.BindEnv("logsmaxageindays", "GOVITE_LOGS_MAX_AGE_IN_DAYS")

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return c, nil
}

// validate checks the configuration for errors
func (c *Config) validate() error {
	validEnvs := map[string]bool{
		Development: true,
		Production:  true,
		Test:        true,
	}
	if !validEnvs[c.Environment] {
		return fmt.Errorf("invalid environment: %s", c.Environment)
	}

	validLevels := map[LogLevel]bool{
		LogLevelDebug: true,
		LogLevelInfo:  true,
		LogLevelWarn:  true,
		LogLevelError: true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

// viteConfigFileEntry is the YAML shape of one named configuration in the
// Vite configurations file.
type viteConfigFileEntry struct {
	AssetsPath           string `yaml:"assets_path"`
	DevMode              bool   `yaml:"dev_mode"`
	DevServerProtocol    string `yaml:"dev_server_protocol"`
	DevServerHost        string `yaml:"dev_server_host"`
	DevServerPort        int    `yaml:"dev_server_port"`
	WSClientURL          string `yaml:"ws_client_url"`
	StaticURLPrefix      string `yaml:"static_url_prefix"`
	LegacyPolyfillsMotif string `yaml:"legacy_polyfills_motif"`
	ManifestPath         string `yaml:"manifest_path"`
}

// ViteConfigs returns the named Vite configurations. With a configurations
// file set, its YAML map is authoritative; otherwise the flat GOVITE_VITE_*
// settings compose a single "default" configuration.
func (c *Config) ViteConfigs() (map[string]vite.Config, error) {
	if c.ViteConfigFile == "" {
		return map[string]vite.Config{"default": c.defaultViteConfig()}, nil
	}

	data, err := os.ReadFile(c.ViteConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read vite config file %s: %w", c.ViteConfigFile, err)
	}

	var entries map[string]viteConfigFileEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse vite config file %s: %w", c.ViteConfigFile, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("vite config file %s defines no configurations", c.ViteConfigFile)
	}

	configs := make(map[string]vite.Config, len(entries))
	for name, entry := range entries {
		configs[name] = vite.Config{
			AssetsPath:           entry.AssetsPath,
			DevMode:              entry.DevMode,
			DevServerProtocol:    entry.DevServerProtocol,
			DevServerHost:        entry.DevServerHost,
			DevServerPort:        entry.DevServerPort,
			WSClientURL:          entry.WSClientURL,
			StaticURLPrefix:      entry.StaticURLPrefix,
			LegacyPolyfillsMotif: entry.LegacyPolyfillsMotif,
			ManifestPath:         entry.ManifestPath,
		}
	}
	return configs, nil
}

// defaultViteConfig builds the "default" configuration from the flat
// settings.
func (c *Config) defaultViteConfig() vite.Config {
	return vite.Config{
		AssetsPath:           c.ViteAssetsPath,
		DevMode:              c.ViteDevMode,
		DevServerProtocol:    c.ViteDevServerProtocol,
		DevServerHost:        c.ViteDevServerHost,
		DevServerPort:        c.ViteDevServerPort,
		WSClientURL:          c.ViteWSClientURL,
		StaticURLPrefix:      c.ViteStaticURLPrefix,
		ManifestPath:         c.ViteManifestPath,
		LegacyPolyfillsMotif: c.ViteLegacyPolyfillsMotif,
	}
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == Development
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// IsTest returns true if the environment is test
func (c *Config) IsTest() bool {
	return c.Environment == Test
}
