package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/go-playground/validator/v10"

	"sekolahku_backend/internals/features/users/auth/dto"
	"sekolahku_backend/internals/features/users/auth/service"
	helper "sekolahku_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	Service *service.AuthService
}

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	if msg := helper.RequireJSONFields(c.Body(), "email", "password"); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid email or password format")
	}

	res, err := h.Service.Login(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, service.ErrInvalidCredentials.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}
	return helper.JsonSuccess(c, res)
}

// GET /api/auth/me
// Echoes the identity baked into the bearer token.
func (h *AuthController) Me(c *fiber.Ctx) error {
	id, _ := c.Locals("user_id").(string)
	email, _ := c.Locals("user_email").(string)
	role, _ := c.Locals("user_role").(string)
	if id == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token claims")
	}
	return helper.JsonSuccess(c, dto.AuthUser{ID: id, Email: email, Role: role})
}
