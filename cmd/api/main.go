package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-pos-backend/internal/handler"
	"go-pos-backend/internal/middleware"
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/service"
	"go-pos-backend/internal/ws"
	"go-pos-backend/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.PriceVariant{},
		&model.Transaction{},
		&model.TransactionItem{},
		&model.PaymentRecord{},
		&model.User{},
	)

	// 3. Seed default admin
	seedAdminUser(db)

	// 4. Setup WebSocket Hub (terminal event feed)
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	variantRepo := repository.NewPriceVariantRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	userRepo := repository.NewUserRepo(db)

	catalogService := service.NewCatalogService(categoryRepo, productRepo, variantRepo, db, wsHub)
	checkoutService := service.NewCheckoutService(productRepo, db, wsHub)
	reportService := service.NewReportService(txRepo)
	authService := service.NewAuthService(userRepo)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	reportHandler := handler.NewReportHandler(reportService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Retail POS Backend v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	api.Post("/auth/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Catalog reads (any authenticated terminal)
	protected.Get("/categories", catalogHandler.GetCategories)
	protected.Get("/products", catalogHandler.GetProducts)
	protected.Get("/products/barcode/:barcode", catalogHandler.GetProductByBarcode)
	protected.Get("/products/:id/price-variants", catalogHandler.GetPriceVariants)

	// Catalog mutation and stock correction (back office only)
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	protected.Post("/categories", adminOnly, catalogHandler.CreateCategory)
	protected.Post("/products", adminOnly, catalogHandler.CreateProduct)
	protected.Put("/products/:id", adminOnly, catalogHandler.UpdateProduct)
	protected.Delete("/products/:id", adminOnly, catalogHandler.DeleteProduct)
	protected.Post("/price-variants", adminOnly, catalogHandler.CreatePriceVariant)
	protected.Post("/stock/adjust", adminOnly, catalogHandler.AdjustStock)

	// Checkout and sales history
	protected.Post("/transactions", checkoutHandler.CreateTransaction)
	protected.Get("/transactions", reportHandler.GetTransactions)
	protected.Get("/transactions/:id", reportHandler.GetTransaction)
	protected.Get("/reports/sales", reportHandler.GenerateSalesReport)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdminUser creates the default back-office account if absent
func seedAdminUser(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByEmail("admin@example.com"); err == nil {
		return
	}

	admin := &model.User{
		Email:    "admin@example.com",
		FullName: "Store Administrator",
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("Admin user created: admin@example.com / admin123")
	}
}
