package cron

import (
	"log"
	"time"

	"github.com/helpdesk-ph/ticketdesk/internal/application"
	"github.com/helpdesk-ph/ticketdesk/internal/config"
)

// StartCleanupTask prunes old audit logs once on startup and then daily.
func StartCleanupTask(auditService *application.AuditService) {
	go func() {
		retention := config.AuditRetentionDays
		log.Printf("Starting audit cleanup task (retention: %d days)", retention)

		if err := auditService.CleanupOldLogs(retention); err != nil {
			log.Printf("Failed to cleanup old audit logs: %v", err)
		}

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := auditService.CleanupOldLogs(retention); err != nil {
				log.Printf("Failed to cleanup old audit logs: %v", err)
			}
		}
	}()
}
