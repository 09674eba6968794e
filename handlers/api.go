package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// SummaryResponse is the JSON form of the metrics for one selection.
// Averages are null when the selection is empty.
type SummaryResponse struct {
	Brand             string   `json:"brand"`
	Transmission      string   `json:"transmission"`
	Count             int      `json:"count"`
	AvgPrice          *float64 `json:"avg_price"`
	AvgMileage        *float64 `json:"avg_mileage"`
	AvgPriceDisplay   string   `json:"avg_price_display"`
	AvgMileageDisplay string   `json:"avg_mileage_display"`
}

func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	v, err := h.view(c)
	if err != nil {
		code, message := publicError(c, err)
		return c.Status(code).JSON(fiber.Map{"error": message})
	}

	s := v.Summary
	return c.JSON(SummaryResponse{
		Brand:             v.Selection.Brand,
		Transmission:      v.Selection.Transmission,
		Count:             s.Count,
		AvgPrice:          s.AvgPrice.Ptr(),
		AvgMileage:        s.AvgMileage.Ptr(),
		AvgPriceDisplay:   s.Price(),
		AvgMileageDisplay: s.Mileage(),
	})
}
