package ticket

import (
	"time"

	"gorm.io/datatypes"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Ticket is a project record tracked through the Pending/Approved
// lifecycle. TicketID is the client-facing key ("T-" + submission time);
// ProjectNumber is unique for the lifetime of the store.
type Ticket struct {
	ID             uint           `gorm:"primaryKey" json:"-"`
	TicketID       string         `gorm:"size:32;not null;uniqueIndex" json:"TicketID"`
	Username       string         `gorm:"size:50;not null;index" json:"Username"`
	ProjectNumber  string         `gorm:"size:50;not null;uniqueIndex" json:"ProjectNumber"`
	ProjectName    string         `gorm:"size:200;not null" json:"ProjectName"`
	ProjectManager string         `gorm:"size:100" json:"ProjectManager"`
	Budget         float64        `gorm:"not null;default:0" json:"Budget"`
	StartDate      datatypes.Date `json:"-"`
	EndDate        datatypes.Date `json:"-"`
	Priority       Priority       `gorm:"size:20;default:'Low'" json:"Priority"`
	AssignedTeam   string         `gorm:"size:100" json:"AssignedTeam"`
	Remarks        string         `gorm:"type:text" json:"Remarks"`
	Status         Status         `gorm:"size:20;not null;default:'Pending'" json:"Status"`
	CreatedAt      time.Time      `json:"-"`
	UpdatedAt      time.Time      `json:"-"`
}
