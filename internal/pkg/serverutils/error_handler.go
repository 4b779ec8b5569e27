package serverutils

import (
	"errors"

	"afaq-chatbot-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps AppErrors to their {error} JSON shape and masks
// everything else as a generic 500. Storage failures land here; external
// fetch and generation failures never do (those degrade inside the service).
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			return ctx.Status(appErr.Status).JSON(fiber.Map{"error": appErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"error":  err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
