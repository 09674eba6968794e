package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/carprice/dashboard/ui"
)

// HandleHome renders the full dashboard page.
func (h *Handler) HandleHome(c *fiber.Ctx) error {
	v, err := h.view(c)
	if err != nil {
		return err
	}
	saveCookieSelection(c, v.Selection)
	return render(c, ui.DashboardPage(v))
}

// HandleDashboard re-runs the pipeline and returns only the dashboard
// section. htmx does not swap error responses, so a missing dataset is
// sent with 200 to htmx callers.
func (h *Handler) HandleDashboard(c *fiber.Ctx) error {
	v, err := h.view(c)
	if err != nil {
		if !isDataNotFound(err) {
			return err
		}
		log.Printf("[handlers] Dashboard unavailable: %v", err)
		if !isHTMX(c) {
			c.Status(fiber.StatusServiceUnavailable)
		}
		return render(c, ui.DataError())
	}
	saveCookieSelection(c, v.Selection)
	return render(c, ui.DashboardSection(v))
}
