package audit

import "time"

// AuditLog records an admin mutation. Written in the same transaction as
// the mutation it describes.
type AuditLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;index" json:"username"`
	Action       string    `gorm:"size:50;index" json:"action"`
	ResourceType string    `gorm:"size:50;index" json:"resource_type"`
	ResourceKey  string    `gorm:"size:100" json:"resource_key"`
	Detail       string    `gorm:"type:text" json:"detail"`
	CreatedAt    time.Time `json:"created_at"`
}
