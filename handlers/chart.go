package handlers

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/carprice/dashboard/charts"
	"github.com/carprice/dashboard/config"
	"github.com/carprice/dashboard/dashboard"
	"github.com/carprice/dashboard/dataset"
)

// HandleChart serves one chart image for a selection. Encoded images are
// cached per chart, selection, format and width.
func (h *Handler) HandleChart(c *fiber.Ctx) error {
	kind := charts.Kind(c.Params("kind"))
	if kind != charts.KindPriceDistribution && kind != charts.KindPriceVsMileage {
		return fiber.NewError(fiber.StatusNotFound, "Unknown chart: "+string(kind))
	}
	format, err := charts.ParseFormat(c.Query("format"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	width, err := parseWidth(c)
	if err != nil {
		return err
	}

	table, err := h.loader.Load(c.UserContext())
	if err != nil {
		return err
	}
	sel := dashboard.Update(dashboard.Selection{}, selectionFromRequest(c),
		dataset.Brands(table), dataset.Transmissions(table))

	key := chartKey(kind, sel, format, width)
	body, ok := h.charts.Get(key)
	if !ok {
		body, err = renderChart(kind, dataset.Filter(table, sel.Brand, sel.Transmission), format, width)
		if err != nil {
			return err
		}
		h.charts.SetWithTTL(key, body, 0, config.ChartCacheTTL)
	}

	c.Set(fiber.HeaderContentType, format.ContentType())
	c.Set(fiber.HeaderCacheControl, fmt.Sprintf("public, max-age=%d", int(config.ChartCacheTTL.Seconds())))
	return c.Send(body)
}

func renderChart(kind charts.Kind, t dataset.Table, format charts.Format, width int) ([]byte, error) {
	chart, err := charts.Render(kind, t)
	if err != nil {
		return nil, err
	}
	img, err := chart.Image()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := charts.Encode(&buf, img, format, width); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func parseWidth(c *fiber.Ctx) (int, error) {
	if c.Query("w") == "" {
		return 0, nil
	}
	width := c.QueryInt("w", -1)
	if width < 1 || width > config.ChartMaxWidth {
		return 0, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Invalid parameter: w must be between 1 and %d", config.ChartMaxWidth))
	}
	return width, nil
}

func chartKey(kind charts.Kind, sel dashboard.Selection, format charts.Format, width int) string {
	return strings.Join([]string{string(kind), sel.Brand, sel.Transmission, string(format), fmt.Sprint(width)}, "|")
}
