package repository

import (
	"github.com/helpdesk-ph/ticketdesk/internal/domain/attachment"
	"gorm.io/gorm"
)

type AttachmentRepo interface {
	Create(a *attachment.Attachment) error
	ListByTicketID(ticketID string) ([]attachment.Attachment, error)
	DeleteByTicketID(ticketID string) error
	WithTx(tx *gorm.DB) AttachmentRepo
}

type DBAttachmentRepo struct {
	db *gorm.DB
}

func NewAttachmentRepo(db *gorm.DB) *DBAttachmentRepo {
	return &DBAttachmentRepo{
		db: db,
	}
}

func (r *DBAttachmentRepo) Create(a *attachment.Attachment) error {
	return r.db.Create(a).Error
}

func (r *DBAttachmentRepo) ListByTicketID(ticketID string) ([]attachment.Attachment, error) {
	var attachments []attachment.Attachment
	err := r.db.Where("ticket_id = ?", ticketID).Order("id asc").Find(&attachments).Error
	return attachments, err
}

func (r *DBAttachmentRepo) DeleteByTicketID(ticketID string) error {
	return r.db.Where("ticket_id = ?", ticketID).Delete(&attachment.Attachment{}).Error
}

func (r *DBAttachmentRepo) WithTx(tx *gorm.DB) AttachmentRepo {
	if tx == nil {
		return r
	}
	return &DBAttachmentRepo{
		db: tx,
	}
}
