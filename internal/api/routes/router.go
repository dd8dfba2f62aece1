package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/helpdesk-ph/ticketdesk/internal/api/handlers"
	"github.com/helpdesk-ph/ticketdesk/internal/api/middleware"
	"github.com/helpdesk-ph/ticketdesk/internal/application"
	"github.com/helpdesk-ph/ticketdesk/internal/cache"
	"github.com/helpdesk-ph/ticketdesk/internal/config"
	"github.com/helpdesk-ph/ticketdesk/internal/cron"
	"github.com/helpdesk-ph/ticketdesk/internal/repository"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and handlers onto the engine
// and returns the service container for startup tasks.
func RegisterRoutes(r *gin.Engine, database *gorm.DB) *application.Services {
	repos := repository.NewRepositories(database)
	ticketCache := cache.NewTicketCache(cache.NewRedisClient(), time.Duration(config.CacheTTLSecs)*time.Second)
	svc := application.New(repos, ticketCache)
	h := handlers.New(svc)

	cron.StartCleanupTask(svc.Audit)

	r.GET("/healthz", handlers.Health)

	// Legacy action contract: one endpoint, every response HTTP 200.
	r.POST("/api", h.Dispatch.Dispatch)

	auth := r.Group("/api")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/tickets", h.Stream.StreamTickets)
		auth.POST("/tickets/:ticketID/attachments", h.Attachment.Upload)
		auth.GET("/tickets/:ticketID/attachments", h.Attachment.List)
		auth.GET("/audit/logs", h.Audit.GetAuditLogs)
	}

	return svc
}
