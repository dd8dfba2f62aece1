package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Account    AccountRepo
	Ticket     TicketRepo
	Audit      AuditRepo
	Attachment AttachmentRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Account:    NewAccountRepo(db),
		Ticket:     NewTicketRepo(db),
		Audit:      NewAuditRepo(db),
		Attachment: NewAttachmentRepo(db),
		db:         db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Account:    r.Account.WithTx(tx),
		Ticket:     r.Ticket.WithTx(tx),
		Audit:      r.Audit.WithTx(tx),
		Attachment: r.Attachment.WithTx(tx),
		db:         tx,
	}
}

// ExecTx runs fn inside a single database transaction. Check-then-act
// sequences in the services are atomic under concurrent requests only when
// funneled through here. Without an underlying DB (mocked repos in unit
// tests) fn runs against the container directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
