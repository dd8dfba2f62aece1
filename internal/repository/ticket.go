package repository

import (
	"github.com/helpdesk-ph/ticketdesk/internal/domain/ticket"
	"gorm.io/gorm"
)

type TicketRepo interface {
	Create(t *ticket.Ticket) error
	FindAll() ([]ticket.Ticket, error)
	FindByOwner(username string) ([]ticket.Ticket, error)
	FindByTicketID(ticketID string) (ticket.Ticket, error)
	ProjectNumberExists(projectNumber string) (bool, error)
	TicketIDExists(ticketID string) (bool, error)
	Update(t *ticket.Ticket) error
	Delete(id uint) error
	Search(username, query string) ([]ticket.Ticket, error)
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{
		db: db,
	}
}

func (r *DBTicketRepo) Create(t *ticket.Ticket) error {
	return r.db.Create(t).Error
}

func (r *DBTicketRepo) FindAll() ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) FindByOwner(username string) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Where("username = ?", username).Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) FindByTicketID(ticketID string) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.Where("ticket_id = ?", ticketID).First(&t).Error
	return t, err
}

func (r *DBTicketRepo) ProjectNumberExists(projectNumber string) (bool, error) {
	var count int64
	err := r.db.Model(&ticket.Ticket{}).Where("project_number = ?", projectNumber).Count(&count).Error
	return count > 0, err
}

func (r *DBTicketRepo) TicketIDExists(ticketID string) (bool, error) {
	var count int64
	err := r.db.Model(&ticket.Ticket{}).Where("ticket_id = ?", ticketID).Count(&count).Error
	return count > 0, err
}

func (r *DBTicketRepo) Update(t *ticket.Ticket) error {
	return r.db.Save(t).Error
}

func (r *DBTicketRepo) Delete(id uint) error {
	return r.db.Delete(&ticket.Ticket{}, id).Error
}

// Search filters the owner's tickets by a case-insensitive match over the
// descriptive columns. An empty query returns everything in scope.
func (r *DBTicketRepo) Search(username, query string) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	q := r.db.Where("username = ?", username).Order("created_at desc")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			r.db.Where("project_number ILIKE ?", like).
				Or("project_name ILIKE ?", like).
				Or("project_manager ILIKE ?", like).
				Or("assigned_team ILIKE ?", like).
				Or("remarks ILIKE ?", like),
		)
	}
	err := q.Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{
		db: tx,
	}
}
