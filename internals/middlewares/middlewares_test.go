package middlewares

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func readBody(t *testing.T, app *fiber.App, method, path, bearer string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearer)
	}
	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, sonic.Unmarshal(raw, &body))
	return res.StatusCode, body
}

func newApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
}

func TestErrorHandlerFiberError(t *testing.T) {
	app := newApp()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required field(s): name")
	})

	status, body := readBody(t, app, "GET", "/boom", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Missing required field(s): name", body["message"])
}

func TestErrorHandlerRecordNotFound(t *testing.T) {
	app := newApp()
	app.Get("/rec", func(c *fiber.Ctx) error {
		return gorm.ErrRecordNotFound
	})

	status, body := readBody(t, app, "GET", "/rec", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Not found", body["message"])
}

func TestErrorHandlerUnknownError(t *testing.T) {
	app := newApp()
	app.Get("/err", func(c *fiber.Ctx) error {
		return errors.New("connection reset by peer")
	})

	status, body := readBody(t, app, "GET", "/err", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["message"], "internal details must not leak")
}

func signTest(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func TestAuthJWT(t *testing.T) {
	const secret = "test-secret"
	app := newApp()
	app.Get("/me", AuthJWT(secret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"id":   c.Locals("user_id"),
			"role": c.Locals("user_role"),
		})
	})

	t.Run("no token", func(t *testing.T) {
		status, body := readBody(t, app, "GET", "/me", "")
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, false, body["success"])
	})

	t.Run("garbage token", func(t *testing.T) {
		status, _ := readBody(t, app, "GET", "/me", "not.a.jwt")
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok := signTest(t, "other-secret", jwt.MapClaims{"sub": "u1"})
		status, _ := readBody(t, app, "GET", "/me", tok)
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("expired token", func(t *testing.T) {
		tok := signTest(t, secret, jwt.MapClaims{
			"sub": "u1",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})
		status, _ := readBody(t, app, "GET", "/me", tok)
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("valid token hydrates locals", func(t *testing.T) {
		tok := signTest(t, secret, jwt.MapClaims{
			"sub":  "u1",
			"role": "teacher",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})
		status, body := readBody(t, app, "GET", "/me", tok)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "u1", body["id"])
		assert.Equal(t, "teacher", body["role"])
	})
}
