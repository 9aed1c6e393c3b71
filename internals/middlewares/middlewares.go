package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupMiddlewares wires the global middleware chain. Order matters:
// recover first so panics still reach the JSON error handler.
func SetupMiddlewares(app *fiber.App) {
	app.Use(recover.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(RequestLogger())
}
