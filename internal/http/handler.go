// Package http contains the Fiber request handlers.
package http

import (
	"log/slog"

	"github.com/bryan1001/govite/internal/config"
	"github.com/bryan1001/govite/vite"
)

// Handler bundles the dependencies the request handlers need.
type Handler struct {
	Config *config.Config
	Loader *vite.AssetLoader
	Logger *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(cfg *config.Config, loader *vite.AssetLoader, logger *slog.Logger) *Handler {
	return &Handler{
		Config: cfg,
		Loader: loader,
		Logger: logger,
	}
}
