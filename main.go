package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/configs"
	database "sekolahku_backend/internals/databases"
	"sekolahku_backend/internals/middlewares"
	routes "sekolahku_backend/internals/route"
	"sekolahku_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          20 * time.Second,
		IdleTimeout:           60 * time.Second,
		ErrorHandler:          middlewares.ErrorHandler,
	})

	db := database.Connect()
	database.Migrate(db)
	if configs.GetEnv("SEED_DEMO", "false") == "true" {
		seeds.Run(db)
	}

	middlewares.SetupMiddlewares(app)
	routes.SetupRoutes(app, db)

	port := configs.GetEnv("PORT", "5000")
	go func() {
		log.Printf("[INFO] listening on :%s (env=%s)", port, configs.AppEnv)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("[FATAL] server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[INFO] shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("[WARN] shutdown: %v", err)
	}
	database.Close(db)
}
