package db

import (
	"fmt"
	"log"

	"github.com/helpdesk-ph/ticketdesk/internal/config"
	"github.com/helpdesk-ph/ticketdesk/internal/domain/account"
	"github.com/helpdesk-ph/ticketdesk/internal/domain/attachment"
	"github.com/helpdesk-ph/ticketdesk/internal/domain/audit"
	"github.com/helpdesk-ph/ticketdesk/internal/domain/ticket"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate applies the schema. Unique indexes on email, ticket_id and
// project_number back the application-level uniqueness checks.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&account.PendingAccount{},
		&account.Account{},
		&ticket.Ticket{},
		&attachment.Attachment{},
		&audit.AuditLog{},
	)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
