// Package handlers serves the dashboard over HTTP.
package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/carprice/dashboard/cache"
	"github.com/carprice/dashboard/dashboard"
	"github.com/carprice/dashboard/dataset"
)

// Handler carries the dependencies every route needs.
type Handler struct {
	loader *dataset.Loader
	charts *cache.Cache[[]byte]
}

// New creates a Handler serving the dataset behind loader.
func New(loader *dataset.Loader) (*Handler, error) {
	charts, err := cache.New(func(b []byte) int64 { return int64(len(b)) }, "Chart Cache")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize chart cache: %w", err)
	}
	return &Handler{loader: loader, charts: charts}, nil
}

// Register mounts every route on app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/", h.HandleHome)
	app.Get("/dashboard", h.HandleDashboard)
	app.Get("/charts/:kind", h.HandleChart)
	app.Get("/export.csv", h.HandleExportCSV)
	app.Get("/health", h.HandleHealth)

	api := app.Group("/api")
	api.Get("/summary", h.HandleSummary)
	api.Post("/admin/cache/clear", h.HandleClearCache)

	app.Get("/admin/cache", h.HandleAdminCache)
}

// view loads the dataset and runs the pipeline for the request's selection.
func (h *Handler) view(c *fiber.Ctx) (dashboard.View, error) {
	table, err := h.loader.Load(c.UserContext())
	if err != nil {
		return dashboard.View{}, err
	}
	return dashboard.Resolve(table, getCookieSelection(c), selectionFromRequest(c)), nil
}

func isDataNotFound(err error) bool {
	var notFound *dataset.DataNotFoundError
	return errors.As(err, &notFound)
}

func isHTMX(c *fiber.Ctx) bool {
	return c.Get("HX-Request") != ""
}
