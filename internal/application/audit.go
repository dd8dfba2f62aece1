package application

import (
	"github.com/helpdesk-ph/ticketdesk/internal/domain/audit"
	"github.com/helpdesk-ph/ticketdesk/internal/repository"
)

// AuditService reads and prunes the admin mutation trail. Writing entries
// happens inside the account and ticket services, in the same transaction
// as the mutation being recorded.
type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

func (s *AuditService) QueryAuditLogs(params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	if params.Limit <= 0 {
		params.Limit = 100
	}
	return s.Repos.Audit.GetAuditLogs(params)
}

// CleanupOldLogs removes entries older than the retention window. Days
// below one are treated as one to keep a bad config from wiping the trail.
func (s *AuditService) CleanupOldLogs(days int) error {
	if days < 1 {
		days = 1
	}
	return s.Repos.Audit.DeleteOldAuditLogs(days)
}
