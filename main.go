package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"todoapp/internal/config"
	"todoapp/internal/handlers"
	"todoapp/internal/middleware"
	"todoapp/internal/models"
	"todoapp/internal/repositories"
	"todoapp/internal/response"
	"todoapp/internal/services"
	"todoapp/pkg/rabbitmq"
)

// openDatabase connects to the configured database and optionally runs
// the schema sync.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{}
	if cfg.Database.Logging {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.DSN())
	default:
		dialector = postgres.Open(cfg.Database.DSN())
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Database.Synchronize {
		if err := db.AutoMigrate(&models.User{}, &models.Todo{}); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}
	return db, nil
}

// NewApp wires repositories, services, handlers and middleware into a
// Fiber app. mqClient may be nil when no broker is configured.
func NewApp(cfg *config.Config, mqClient *rabbitmq.Client) (*fiber.App, *services.AuthService, error) {
	db, err := openDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}

	userRepo := repositories.NewGORMUserRepository(db)
	todoRepo := repositories.NewGORMTodoRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiresIn, cfg.BcryptCost)
	todoService := services.NewTodoService(todoRepo, mqClient)

	authHandler := handlers.NewAuthHandler(authService)
	todoHandler := handlers.NewTodoHandler(todoService)

	app := fiber.New(fiber.Config{
		ErrorHandler: response.ErrorHandler,
	})
	app.Use(fiberlogger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"env":    cfg.Env,
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Authentication routes bypass the gate; everything under /todos is
	// behind it. Route order matters: exempt routes must be registered
	// before the gated group.
	authHandler.RegisterRoutes(app)
	protected := app.Group("", middleware.AuthRequired(authService, userRepo))
	todoHandler.RegisterRoutes(protected)

	return app, authService, nil
}

func main() {
	cfg := config.Load()

	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Printf("Warning: todo events disabled, RabbitMQ unavailable: %v", err)
		} else {
			mqClient = client
			defer mqClient.Close()
		}
	}

	app, _, err := NewApp(cfg, mqClient)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for todo events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received todo event (tag %d): %s", msg.DeliveryTag, msg.Body)
				return nil
			}
			if consumerErr := mqClient.ConsumeTodoEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s", cfg.AppPort)
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
