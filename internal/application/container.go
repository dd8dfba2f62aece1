package application

import (
	"github.com/helpdesk-ph/ticketdesk/internal/cache"
	"github.com/helpdesk-ph/ticketdesk/internal/repository"
)

type Services struct {
	Account    *AccountService
	Ticket     *TicketService
	Attachment *AttachmentService
	Audit      *AuditService
}

func New(repos *repository.Repos, ticketCache *cache.TicketCache) *Services {
	return &Services{
		Account:    NewAccountService(repos),
		Ticket:     NewTicketService(repos, ticketCache),
		Attachment: NewAttachmentService(repos),
		Audit:      NewAuditService(repos),
	}
}
