package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/helpdesk-ph/ticketdesk/internal/api/middleware"
	"github.com/helpdesk-ph/ticketdesk/internal/api/routes"
	"github.com/helpdesk-ph/ticketdesk/internal/config"
	"github.com/helpdesk-ph/ticketdesk/internal/config/db"
	"github.com/helpdesk-ph/ticketdesk/internal/storage"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.Migrate(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize object storage for ticket attachments
	storage.InitMinio()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	svc := routes.RegisterRoutes(router, db.DB)

	// Seed the built-in administrator account
	if err := svc.Account.EnsureAdmin(); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
