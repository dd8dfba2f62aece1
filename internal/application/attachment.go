package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/helpdesk-ph/ticketdesk/internal/domain/attachment"
	"github.com/helpdesk-ph/ticketdesk/internal/repository"
	"github.com/helpdesk-ph/ticketdesk/internal/storage"
	minioSDK "github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

const presignExpiry = 15 * time.Minute

type AttachmentService struct {
	Repos *repository.Repos
}

func NewAttachmentService(repos *repository.Repos) *AttachmentService {
	return &AttachmentService{
		Repos: repos,
	}
}

// Upload stores the file in the object store and records it against the
// ticket. The ticket must exist.
func (s *AttachmentService) Upload(ctx context.Context, ticketID, actor, fileName, contentType string, size int64, reader io.Reader) (attachment.Attachment, error) {
	if storage.Client == nil {
		return attachment.Attachment{}, ErrStorageDisabled
	}

	if _, err := s.Repos.Ticket.FindByTicketID(ticketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return attachment.Attachment{}, ErrTicketNotFound
		}
		return attachment.Attachment{}, err
	}

	objectKey := fmt.Sprintf("%s/%s-%s", ticketID, uuid.NewString(), fileName)
	if _, err := storage.Client.PutObject(ctx, storage.BucketName, objectKey, reader, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return attachment.Attachment{}, err
	}

	a := attachment.Attachment{
		TicketID:   ticketID,
		FileName:   fileName,
		ObjectKey:  objectKey,
		SizeBytes:  size,
		UploadedBy: actor,
	}
	if err := s.Repos.Attachment.Create(&a); err != nil {
		return attachment.Attachment{}, err
	}
	return a, nil
}

// List returns the ticket's attachments with presigned download URLs.
func (s *AttachmentService) List(ctx context.Context, ticketID string) ([]attachment.AttachmentDTO, error) {
	if storage.Client == nil {
		return nil, ErrStorageDisabled
	}

	rows, err := s.Repos.Attachment.ListByTicketID(ticketID)
	if err != nil {
		return nil, err
	}

	out := make([]attachment.AttachmentDTO, 0, len(rows))
	for _, row := range rows {
		url, err := storage.Client.PresignedGetObject(ctx, storage.BucketName, row.ObjectKey, presignExpiry, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, attachment.AttachmentDTO{
			ID:          row.ID,
			TicketID:    row.TicketID,
			FileName:    row.FileName,
			SizeBytes:   row.SizeBytes,
			UploadedBy:  row.UploadedBy,
			DownloadURL: url.String(),
		})
	}
	return out, nil
}
