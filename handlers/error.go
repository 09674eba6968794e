package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/carprice/dashboard/dataset"
	"github.com/carprice/dashboard/ui"
)

// CustomErrorHandler renders every unhandled error as an HTML page. A
// missing dataset gets the fixed data error page instead of the cause.
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	code, message := publicError(ctx, err)
	ctx.Status(code)
	if isDataNotFound(err) {
		return render(ctx, ui.DataErrorPage())
	}
	return render(ctx, ui.ErrorPage(code, message))
}

// publicError maps err to the status and message sent to the client.
// Server errors are logged in full; file paths and parser details never
// leave the server.
func publicError(ctx *fiber.Ctx, err error) (int, string) {
	var (
		fe       *fiber.Error
		notFound *dataset.DataNotFoundError
		schema   *dataset.SchemaError
	)
	switch {
	case errors.As(err, &fe):
		return fe.Code, fe.Message
	case errors.As(err, &notFound):
		log.Printf("[handlers] %s %s: %v", ctx.Method(), ctx.Path(), err)
		return fiber.StatusServiceUnavailable, ui.DataErrorMessage
	case errors.As(err, &schema):
		log.Printf("[handlers] %s %s: %v", ctx.Method(), ctx.Path(), err)
		return fiber.StatusInternalServerError, fmt.Sprintf("Dataset is missing required column %q", schema.Column)
	default:
		log.Printf("[handlers] %s %s: %v", ctx.Method(), ctx.Path(), err)
		return fiber.StatusInternalServerError, utils.StatusMessage(fiber.StatusInternalServerError)
	}
}
