package middlewares

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "sekolahku_backend/internals/helpers"
)

// ErrorHandler is the app-level fiber error handler: every error that
// escapes a handler (including recovered panics) becomes the JSON
// {success:false, message} envelope. Unanticipated errors are logged and
// reported generically.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}
	log.Printf("[ERROR] reqid=%v unhandled: %v", c.Locals("reqid"), err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}
