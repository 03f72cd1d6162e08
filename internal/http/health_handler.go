package http

import (
	"time"

	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// HealthStatus represents the health check response
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Manifests map[string]string `json:"manifests"`
}

// HealthIndexAction handles the health check endpoint. Production
// configurations are degraded when their manifest cannot be loaded;
// dev-mode configurations have no manifest and report "dev".
func (h *Handler) HealthIndexAction(c *fiber.Ctx) error {
	health := HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
		Manifests: make(map[string]string),
	}

	for _, name := range h.Loader.ConfigNames() {
		cfg, err := h.Loader.Lookup(name)
		if err != nil {
			health.Manifests[name] = "error"
			health.Status = "degraded"
			continue
		}
		if cfg.DevMode {
			health.Manifests[name] = "dev"
			continue
		}
		if _, err := h.Loader.Manifest(name); err != nil {
			h.Logger.Error("Vite manifest unavailable",
				slog.String("config", name), slog.Any("error", err))
			health.Manifests[name] = "error"
			health.Status = "degraded"
			continue
		}
		health.Manifests[name] = "ok"
	}

	return c.JSON(health)
}
