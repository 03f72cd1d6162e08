package internal

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"

	apphttp "github.com/bryan1001/govite/internal/http"
	"github.com/bryan1001/govite/web"
)

// MountRoutes mounts all application routes.
func MountRoutes(a *Application) {
	a.App.Use(recover.New())

	handler := apphttp.NewHandler(a.Config, a.Loader, a.Logger)

	a.App.Get("/", handler.HomeIndexAction)
	a.App.Get("/health", handler.HealthIndexAction)

	// Hashed build outputs. In dev mode the Vite dev server serves assets
	// itself, and a non-local static URL means a CDN serves them; either
	// way nothing is mounted. Filenames are content-addressed, so
	// far-future caching is safe.
	if !a.Config.ViteDevMode && a.distFS != nil && strings.HasPrefix(a.Config.StaticURL, "/") {
		prefix := strings.TrimSuffix(a.Config.StaticURL, "/") + "/assets"
		a.App.Use(prefix, filesystem.New(filesystem.Config{
			Root:   http.FS(web.Assets()),
			MaxAge: 31536000,
		}))
	}
}
