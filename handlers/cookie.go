package handlers

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/carprice/dashboard/dashboard"
)

const (
	cookieLastBrand        = "last_brand"
	cookieLastTransmission = "last_transmission"
)

// getCookieSelection returns the previous interaction's selection.
func getCookieSelection(c *fiber.Ctx) dashboard.Selection {
	return dashboard.Selection{
		Brand:        cookieValue(c, cookieLastBrand),
		Transmission: cookieValue(c, cookieLastTransmission),
	}
}

func cookieValue(c *fiber.Ctx, name string) string {
	v, err := url.QueryUnescape(c.Cookies(name))
	if err != nil {
		return ""
	}
	return v
}

func saveCookieSelection(c *fiber.Ctx, sel dashboard.Selection) {
	saveCookie(c, cookieLastBrand, sel.Brand)
	saveCookie(c, cookieLastTransmission, sel.Transmission)
}

func saveCookie(c *fiber.Ctx, name, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    url.QueryEscape(value),
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HTTPOnly: false,
		Path:     "/",
		SameSite: "Strict",
	})
}
