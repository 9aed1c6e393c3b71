package helper

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doReq(t *testing.T, handler fiber.Handler) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/t", handler)

	res, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, sonic.Unmarshal(raw, &body))
	return res.StatusCode, body
}

func TestJsonSuccessEnvelope(t *testing.T) {
	status, body := doReq(t, func(c *fiber.Ctx) error {
		return JsonSuccess(c, fiber.Map{"id": "42"})
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]any{"id": "42"}, body["data"])
	assert.NotContains(t, body, "message")
}

func TestJsonCreatedEnvelope(t *testing.T) {
	status, body := doReq(t, func(c *fiber.Ctx) error {
		return JsonCreated(c, fiber.Map{"id": "42"})
	})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, body["success"])
}

func TestJsonDeletedEnvelope(t *testing.T) {
	_, body := doReq(t, func(c *fiber.Ctx) error {
		return JsonDeleted(c, "Student deleted successfully")
	})
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Student deleted successfully", data["message"])
}

func TestJsonErrorEnvelope(t *testing.T) {
	status, body := doReq(t, func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusNotFound, "Student not found")
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Student not found", body["message"])
	assert.NotContains(t, body, "data")
}

func TestJsonErrorDefaults(t *testing.T) {
	status, body := doReq(t, func(c *fiber.Ctx) error {
		return JsonError(c, 0, "  ")
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["message"])
}
