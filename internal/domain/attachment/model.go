package attachment

import "time"

// Attachment is a file stored in the object store and linked to a ticket
// by the client-facing ticket id.
type Attachment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TicketID   string    `gorm:"size:32;not null;index" json:"ticket_id"`
	FileName   string    `gorm:"size:255;not null" json:"file_name"`
	ObjectKey  string    `gorm:"size:255;not null;uniqueIndex" json:"-"`
	SizeBytes  int64     `json:"size_bytes"`
	UploadedBy string    `gorm:"size:50" json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// AttachmentDTO adds the presigned download URL generated at read time.
type AttachmentDTO struct {
	ID          uint   `json:"id"`
	TicketID    string `json:"ticket_id"`
	FileName    string `json:"file_name"`
	SizeBytes   int64  `json:"size_bytes"`
	UploadedBy  string `json:"uploaded_by"`
	DownloadURL string `json:"download_url"`
}
