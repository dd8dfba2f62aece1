package account

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// PendingAccount is a registration awaiting admin approval. Rows are
// removed when the account is promoted into the approved set.
type PendingAccount struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	Username     string    `gorm:"size:50;not null;index" json:"Username"`
	Email        string    `gorm:"size:100;not null;uniqueIndex" json:"Email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Contact      string    `gorm:"size:50" json:"Contact"`
	Department   string    `gorm:"size:100" json:"Department"`
	CreatedAt    time.Time `json:"-"`
}

// Account is an approved user permitted to authenticate. Created only by
// promoting a PendingAccount, or seeded as the reserved admin.
type Account struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	Username     string    `gorm:"size:50;not null;index" json:"Username"`
	Email        string    `gorm:"size:100;not null;uniqueIndex" json:"Email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Contact      string    `gorm:"size:50" json:"Contact"`
	Department   string    `gorm:"size:100" json:"Department"`
	Approved     bool      `gorm:"not null;default:true" json:"-"`
	Role         Role      `gorm:"size:20;not null;default:'user'" json:"Role"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
