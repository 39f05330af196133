package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"book-duets-be/pkg/corpus"
)

// ErrorResponse is the JSON error envelope: exactly one "error" field naming
// the error kind.
func ErrorResponse(name string) fiber.Map {
	return fiber.Map{"error": name}
}

// DomainErrorStatus maps a corpus error to its HTTP status.
func DomainErrorStatus(err error) int {
	switch {
	case errors.Is(err, corpus.ErrLyricsNotFound), errors.Is(err, corpus.ErrAuthorNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, corpus.ErrCacheUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandlerMiddleware converts unhandled handler errors into the JSON
// error envelope so no raw error ever reaches a client.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("InternalError"))
	}
}
