package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/carprice/dashboard/config"
	"github.com/carprice/dashboard/dataset"
	"github.com/carprice/dashboard/db"
	h "github.com/carprice/dashboard/handlers"
)

func main() {
	config.Init()

	// Dataset loader; sqlite is opened lazily on first load
	loader, err := dataset.NewLoader(dataset.NewSource(config.DataPath, config.DataTable, db.OpenReadOnly))
	if err != nil {
		log.Fatalf("Failed to initialize dataset loader: %v", err)
	}

	// Warm the memo. A missing dataset is not fatal: pages show the data
	// error until the file appears and the cache is cleared.
	if _, err := loader.Load(context.Background()); err != nil {
		log.Printf("[main] Dataset not loaded at startup: %v", err)
	}

	handler, err := h.New(loader)
	if err != nil {
		log.Fatalf("Failed to initialize handlers: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
	})

	app.Use(h.RateLimiter())
	app.Use(logger.New())

	handler.Register(app)

	log.Printf("[main] Serving %s on %s", loader.Key(), config.ServerAddr)
	log.Fatal(app.Listen(config.ServerAddr))
}
