package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/carprice/dashboard/cache"
	"github.com/carprice/dashboard/ui"
)

func (h *Handler) cacheStats() []cache.Stats {
	return []cache.Stats{h.loader.Stats(), h.charts.Stats()}
}

func (h *Handler) HandleAdminCache(c *fiber.Ctx) error {
	stats := h.cacheStats()
	if isHTMX(c) {
		return render(c, ui.AdminCacheSection(stats))
	}
	return render(c, ui.AdminCachePage(stats))
}

// HandleClearCache drops the memoized dataset and every rendered chart. The
// next request reads storage again.
func (h *Handler) HandleClearCache(c *fiber.Ctx) error {
	h.loader.Invalidate()
	h.charts.Clear()
	log.Printf("[handlers] Caches cleared")
	return render(c, ui.AdminCacheSection(h.cacheStats()))
}
