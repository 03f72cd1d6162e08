// Package internal contains core application functionality
package internal

import (
	"context"
	"io/fs"
	"log/slog"
	"net"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/bryan1001/govite/internal/config"
	"github.com/bryan1001/govite/internal/logging"
	"github.com/bryan1001/govite/vite"
	"github.com/bryan1001/govite/web"
)

// Application owns the HTTP server, the view engine, and the asset loader.
type Application struct {
	App    *fiber.App
	Config *config.Config
	Loader *vite.AssetLoader
	Logger *slog.Logger

	distFS fs.FS
}

// AppOption configures the application.
type AppOption func(*Application)

// WithDistFS serves assets and reads the manifest from an embedded build
// output (web.Dist()) instead of the filesystem.
func WithDistFS(fsys fs.FS) AppOption {
	return func(a *Application) {
		a.distFS = fsys
	}
}

// NewApp creates the application with the process configuration.
func NewApp(opts ...AppOption) (*Application, error) {
	return NewAppWithConfig(config.GetConfig(), opts...)
}

// NewAppWithConfig creates the application with the provided config.
func NewAppWithConfig(cfg *config.Config, opts ...AppOption) (*Application, error) {
	a := &Application{Config: cfg}
	for _, opt := range opts {
		opt(a)
	}

	a.Logger = logging.NewLogger(cfg)

	viteConfigs, err := cfg.ViteConfigs()
	if err != nil {
		return nil, err
	}

	loaderOpts := []vite.Option{vite.WithLogger(a.Logger)}
	if a.distFS != nil {
		loaderOpts = append(loaderOpts, vite.WithFS(a.distFS))
		// The embedded manifest sits at the Vite 5 default location;
		// configs without an explicit path read it from there.
		for name, vc := range viteConfigs {
			if vc.ManifestPath == "" && !vc.DevMode {
				vc.ManifestPath = web.ManifestPath
				viteConfigs[name] = vc
			}
		}
	}
	a.Loader = vite.NewAssetLoader(cfg.StaticURL, cfg.StaticRoot, loaderOpts...)
	a.Loader.RegisterAll(viteConfigs)

	engine := html.NewFileSystem(http.FS(web.Views()), ".html")
	RegisterViteHelpers(engine, a.Loader)

	a.App = fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		Views:                 engine,
		DisableStartupMessage: true,
	})

	MountRoutes(a)

	return a, nil
}

// StartAsync starts the HTTP listener in the background. Startup errors
// after the listener is bound are logged, not returned.
func (a *Application) StartAsync() error {
	ln, err := net.Listen("tcp", ":"+a.Config.AppPort)
	if err != nil {
		return err
	}

	go func() {
		if err := a.App.Listener(ln); err != nil {
			a.Logger.Error("HTTP server stopped", slog.Any("error", err))
		}
	}()

	a.Logger.Info("Listening", slog.String("port", a.Config.AppPort))
	return nil
}

// Shutdown gracefully stops the server within the context deadline.
func (a *Application) Shutdown(ctx context.Context) error {
	return a.App.ShutdownWithContext(ctx)
}
