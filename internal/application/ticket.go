package application

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/helpdesk-ph/ticketdesk/internal/cache"
	"github.com/helpdesk-ph/ticketdesk/internal/domain/audit"
	"github.com/helpdesk-ph/ticketdesk/internal/domain/ticket"
	"github.com/helpdesk-ph/ticketdesk/internal/queue"
	"github.com/helpdesk-ph/ticketdesk/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TicketService struct {
	Repos *repository.Repos
	cache *cache.TicketCache
}

func NewTicketService(repos *repository.Repos, ticketCache *cache.TicketCache) *TicketService {
	return &TicketService{
		Repos: repos,
		cache: ticketCache,
	}
}

// Submit stores a new ticket with status Pending. The server clock stamps
// the record; project number and ticket id uniqueness are checked in the
// same transaction as the insert.
func (s *TicketService) Submit(input ticket.SubmitTicketInput) (ticket.Ticket, error) {
	startDate, err := parseDate(input.StartDate)
	if err != nil {
		return ticket.Ticket{}, err
	}
	endDate, err := parseDate(input.EndDate)
	if err != nil {
		return ticket.Ticket{}, err
	}

	ticketID := input.TicketID
	if ticketID == "" {
		ticketID = GenerateTicketID(time.Now())
	}

	priority := ticket.Priority(input.Priority)
	if priority == "" {
		priority = ticket.PriorityLow
	}

	t := ticket.Ticket{
		TicketID:       ticketID,
		Username:       input.User,
		ProjectNumber:  input.ProjNumber,
		ProjectName:    input.ProjName,
		ProjectManager: input.ProjManager,
		Budget:         input.Budget,
		StartDate:      startDate,
		EndDate:        endDate,
		Priority:       priority,
		AssignedTeam:   input.AssignedTeam,
		Remarks:        input.Remarks,
		Status:         ticket.StatusPending,
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		exists, err := tx.Ticket.ProjectNumberExists(input.ProjNumber)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateProjectNumber
		}

		exists, err = tx.Ticket.TicketIDExists(ticketID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateTicketID
		}

		return tx.Ticket.Create(&t)
	})
	if err != nil {
		return ticket.Ticket{}, err
	}

	s.cache.Invalidate(context.Background())
	return t, nil
}

// ListAll serves the admin console's 5-second poll, through the cache when
// one is configured.
func (s *TicketService) ListAll() ([]ticket.TicketDTO, error) {
	ctx := context.Background()
	if cached, ok := s.cache.GetAll(ctx); ok {
		return cached, nil
	}

	tickets, err := s.Repos.Ticket.FindAll()
	if err != nil {
		return nil, err
	}

	dtos := ticket.ToTicketDTOs(tickets)
	s.cache.SetAll(ctx, dtos)
	return dtos, nil
}

func (s *TicketService) ListByOwner(username string) ([]ticket.TicketDTO, error) {
	tickets, err := s.Repos.Ticket.FindByOwner(username)
	if err != nil {
		return nil, err
	}
	return ticket.ToTicketDTOs(tickets), nil
}

func (s *TicketService) GetByID(ticketID string) (ticket.TicketDTO, error) {
	t, err := s.Repos.Ticket.FindByTicketID(ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ticket.TicketDTO{}, ErrTicketNotFound
		}
		return ticket.TicketDTO{}, err
	}
	return ticket.ToTicketDTO(t), nil
}

func (s *TicketService) Search(username, query string) ([]ticket.TicketDTO, error) {
	tickets, err := s.Repos.Ticket.Search(username, query)
	if err != nil {
		return nil, err
	}
	return ticket.ToTicketDTOs(tickets), nil
}

// Approve transitions a ticket Pending -> Approved in place. There is no
// reverse transition; approving an approved ticket is a no-op that still
// succeeds.
func (s *TicketService) Approve(ticketID, actor string) (ticket.Ticket, error) {
	var approved ticket.Ticket

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		t, err := tx.Ticket.FindByTicketID(ticketID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTicketNotFound
			}
			return err
		}

		t.Status = ticket.StatusApproved
		if err := tx.Ticket.Update(&t); err != nil {
			return err
		}
		approved = t

		return tx.Audit.CreateAuditLog(&audit.AuditLog{
			Username:     actor,
			Action:       "approveTicket",
			ResourceType: "ticket",
			ResourceKey:  ticketID,
		})
	})
	if err != nil {
		return ticket.Ticket{}, err
	}

	s.cache.Invalidate(context.Background())

	if publishErr := queue.PublishTicketApproved(context.Background(), queue.TicketApprovedEvent{
		TicketID:      approved.TicketID,
		ProjectNumber: approved.ProjectNumber,
		ProjectName:   approved.ProjectName,
		Username:      approved.Username,
		ApprovedAt:    time.Now().UTC().Format(time.RFC3339),
	}); publishErr != nil {
		log.Printf("ticket approved event not published: %v", publishErr)
	}

	return approved, nil
}

// Delete removes the ticket and its attachment records permanently.
func (s *TicketService) Delete(ticketID, actor string) error {
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		t, err := tx.Ticket.FindByTicketID(ticketID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTicketNotFound
			}
			return err
		}

		if err := tx.Ticket.Delete(t.ID); err != nil {
			return err
		}
		if err := tx.Attachment.DeleteByTicketID(ticketID); err != nil {
			return err
		}

		return tx.Audit.CreateAuditLog(&audit.AuditLog{
			Username:     actor,
			Action:       "deleteTicket",
			ResourceType: "ticket",
			ResourceKey:  ticketID,
		})
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(context.Background())
	return nil
}

// GenerateTicketID builds the same "T-" + yyyymmddhhmmss id the web client
// derives from its clock, for submissions that omit one.
func GenerateTicketID(now time.Time) string {
	return "T-" + now.UTC().Format("20060102150405")
}

func parseDate(value string) (datatypes.Date, error) {
	if value == "" {
		return datatypes.Date{}, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return datatypes.Date{}, ErrInvalidDate
	}
	return datatypes.Date(parsed), nil
}
