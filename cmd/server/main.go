package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Mrco45/FLEXFINAL/internal/config"
	"github.com/Mrco45/FLEXFINAL/internal/database"
	"github.com/Mrco45/FLEXFINAL/internal/handlers"
	"github.com/Mrco45/FLEXFINAL/internal/routes"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("failed to create upload directory: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "FLEX Orders Backend",
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    int(cfg.MaxUploadMB+1) << 20,
		// Keep stalled clients from hanging a connection forever. The
		// write side stays open for the event stream.
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, db, cfg)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
