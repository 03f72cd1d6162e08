package http

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// HomeIndexAction renders the demo page. The vite_* template helpers do
// the actual asset resolution during rendering.
func (h *Handler) HomeIndexAction(c *fiber.Ctx) error {
	if err := c.Render("index", fiber.Map{"Title": h.Config.AppName}); err != nil {
		h.Logger.Error("Failed to render index", slog.Any("error", err))
		return err
	}
	return nil
}
