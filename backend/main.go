package main

import (
	"context"
	"fmt"
	"log"

	"edubridge/backend/catalog"
	"edubridge/backend/config"
	"edubridge/backend/identity"
	"edubridge/backend/kvstore"
	"edubridge/backend/middleware"
	"edubridge/backend/resources"
	"edubridge/backend/routes"
	"edubridge/backend/session"
	"edubridge/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func openSessionStore(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.SessionStore {
	case "memory":
		return kvstore.NewMemory(), nil
	case "file":
		return kvstore.NewFileStore(cfg.SessionDir)
	case "gorm":
		if cfg.DBDriver == "postgres" {
			return kvstore.OpenGorm("postgres", cfg.PostgresDSN())
		}
		return kvstore.OpenGorm("sqlite", cfg.DBPath)
	case "redis":
		return kvstore.NewRedis(cfg.RedisURL)
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Session persistence + identity collaborator
	kv, err := openSessionStore(cfg)
	if err != nil {
		log.Fatalf("Error opening session store: %v", err)
	}
	sessions := session.NewStore(kv, identity.NewMock(cfg.IdentityDelay))
	if err := sessions.Restore(context.Background()); err != nil {
		// A bad or unreachable record means starting without a session.
		logger.Printf("session restore: %v", err)
	}

	// Static catalog and the mock resource retriever over it
	cat := catalog.Default()
	retriever := resources.NewMock(cat)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, cat, sessions, retriever, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
