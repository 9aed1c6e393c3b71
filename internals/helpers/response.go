package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   JSON response envelope
   success: {success:true,  data:...}
   failure: {success:false, message:"..."}
=================================*/

// JsonSuccess sends {success:true, data} with status 200.
func JsonSuccess(c *fiber.Ctx, data any) error {
	return JsonSuccessWithCode(c, fiber.StatusOK, data)
}

// JsonCreated sends {success:true, data} with status 201.
func JsonCreated(c *fiber.Ctx, data any) error {
	return JsonSuccessWithCode(c, fiber.StatusCreated, data)
}

func JsonSuccessWithCode(c *fiber.Ctx, code int, data any) error {
	return c.Status(code).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// JsonDeleted sends the delete confirmation payload (message only, no entity).
func JsonDeleted(c *fiber.Ctx, message string) error {
	return JsonSuccess(c, fiber.Map{"message": message})
}

// JsonError sends {success:false, message} with the given status.
func JsonError(c *fiber.Ctx, code int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = "Internal server error"
	}
	if code == 0 {
		code = fiber.StatusInternalServerError
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
