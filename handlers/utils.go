package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carprice/dashboard/dashboard"
)

// getQueryParam gets a parameter from either query string or form data
func getQueryParam(ctx *fiber.Ctx, key string) string {
	if value := ctx.Query(key); value != "" {
		return value
	}
	return ctx.FormValue(key)
}

func selectionFromRequest(c *fiber.Ctx) dashboard.Selection {
	return dashboard.Selection{
		Brand:        getQueryParam(c, "brand"),
		Transmission: getQueryParam(c, "transmission"),
		ShowRaw:      parseFlag(getQueryParam(c, "raw")),
	}
}

func parseFlag(v string) bool {
	switch v {
	case "1", "on", "true", "yes":
		return true
	}
	return false
}
