package handlers

import (
	"regexp"

	"github.com/gofiber/fiber/v2"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// HandleExportCSV downloads the filtered rows of a selection.
func (h *Handler) HandleExportCSV(c *fiber.Ctx) error {
	v, err := h.view(c)
	if err != nil {
		return err
	}
	sel := v.Selection

	c.Attachment(exportFilename(sel.Brand, sel.Transmission))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return v.Filtered.WriteCSV(c.Response().BodyWriter())
}

func exportFilename(brand, transmission string) string {
	name := "cars_" + brand + "_" + transmission
	return unsafeFilenameChars.ReplaceAllString(name, "-") + ".csv"
}
