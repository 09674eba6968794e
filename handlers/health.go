package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleHealth reports whether the dataset can be loaded.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	health := fiber.Map{"status": "ok"}

	table, err := h.loader.Load(c.UserContext())
	if err != nil {
		health["status"] = "unhealthy"
		health["dataset"] = "down"
		_, health["error"] = publicError(c, err)
		c.Status(fiber.StatusServiceUnavailable)
	} else {
		health["dataset"] = "up"
		health["rows"] = table.Len()
	}

	return c.JSON(health)
}
