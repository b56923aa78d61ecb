package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Mrco45/FLEXFINAL/internal/config"
	"github.com/Mrco45/FLEXFINAL/internal/handlers"
	"github.com/Mrco45/FLEXFINAL/internal/middleware"
	"github.com/Mrco45/FLEXFINAL/internal/services"
	"github.com/Mrco45/FLEXFINAL/internal/validation"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// One store instance: every view reads and writes through it, and the
	// live feed fans its events out.
	store := services.NewOrderStore(db)
	validate := validation.New()

	authHandler := handlers.NewAuthHandler(db, cfg)
	orderHandler := handlers.NewOrderHandler(store, validate)
	dashboardHandler := handlers.NewDashboardHandler(store)
	invoiceHandler := handlers.NewInvoiceHandler(store)
	uploadHandler := handlers.NewUploadHandler(cfg)
	calcHandler := handlers.NewCalcHandler()

	app.Static("/images", cfg.UploadDir)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Everything past the auth gate requires a session token.
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	orders := protected.Group("/orders")
	orders.Get("/", orderHandler.ListOrders)
	orders.Post("/", orderHandler.CreateOrder)
	orders.Get("/stream", orderHandler.StreamOrders)
	orders.Get("/:id", orderHandler.GetOrder)
	orders.Put("/:id", orderHandler.UpdateOrder)
	orders.Delete("/:id", orderHandler.DeleteOrder)
	orders.Get("/:id/invoice", invoiceHandler.PrintOrder)

	protected.Post("/invoice/preview", invoiceHandler.Preview)
	protected.Get("/dashboard", dashboardHandler.Metrics)
	protected.Post("/upload", uploadHandler.Upload)
	protected.Post("/calc", calcHandler.Evaluate)
}
