package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pasar/internal/config"
	"pasar/internal/handlers"
	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/queries"
	"pasar/internal/repositories"
	"pasar/internal/search"
	"pasar/internal/services"
	"pasar/pkg/mailer"
	"pasar/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	// --- Database ---
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := autoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ ---
	mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
		URL:    cfg.RabbitMQURL,
		Queues: []string{rabbitmq.OrderQueue},
	})
	if err != nil {
		log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
	}
	defer mqClient.Close()

	// --- External collaborators ---
	hasher := services.NewBcryptHasher()
	tokens := services.NewJWTTokenService(cfg.JWTSecret, cfg.TokenTTL)
	smtpMailer := mailer.NewSMTPMailer(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		BaseURL:  cfg.BaseURL,
	})

	// --- Services (write side) ---
	uow := repositories.NewGormUnitOfWork(db)
	authService := services.NewAuthService(uow, hasher, tokens, smtpMailer)
	catalogService := services.NewCatalogService(uow)
	cartService := services.NewCartService(uow)
	orderService := services.NewOrderService(uow, mqClient)

	// --- Query services (read side) ---
	searcher := search.NewPostgresProductSearcher(db)
	productQueries := queries.NewProductQueries(db, searcher)
	categoryQueries := queries.NewCategoryQueries(db)
	cartQueries := queries.NewCartQueries(db)
	orderQueries := queries.NewOrderQueries(db)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(catalogService, productQueries, categoryQueries)
	cartHandler := handlers.NewCartHandler(cartService, cartQueries)
	orderHandler := handlers.NewOrderHandler(orderService, orderQueries)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")
	authHandler.RegisterRoutes(apiV1)
	productHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(tokens))
	cartHandler.RegisterRoutes(protected)
	orderHandler.RegisterRoutes(protected)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Order event consumer ---
	// Downstream processing of order.created events (fulfillment kickoff,
	// notifications). Kept in-process here; it could run as its own binary.
	go func() {
		log.Println("Starting RabbitMQ consumer for order events...")
		err := mqClient.Consume(rabbitmq.OrderQueue, func(msg amqp.Delivery) error {
			log.Printf("Received order event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		})
		if err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	}()

	// --- Start HTTP server ---
	log.Printf("Starting server on %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// autoMigrate creates or updates the schema for every aggregate.
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.PasswordResetToken{},
	)
}
