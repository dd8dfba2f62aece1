package application

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/helpdesk-ph/ticketdesk/internal/api/middleware"
	"github.com/helpdesk-ph/ticketdesk/internal/config"
	"github.com/helpdesk-ph/ticketdesk/internal/domain/account"
	"github.com/helpdesk-ph/ticketdesk/internal/domain/audit"
	"github.com/helpdesk-ph/ticketdesk/internal/queue"
	"github.com/helpdesk-ph/ticketdesk/internal/repository"
	"github.com/helpdesk-ph/ticketdesk/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const sessionDuration = 24 * time.Hour

type AccountService struct {
	Repos *repository.Repos
}

func NewAccountService(repos *repository.Repos) *AccountService {
	return &AccountService{
		Repos: repos,
	}
}

// Register stores a pending registration. The email must be free across
// both the pending and the approved set; the check and the insert share a
// transaction so concurrent signups cannot both pass.
func (s *AccountService) Register(input account.CreateAccountInput) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.PwHash), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}

	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		taken, err := tx.Account.EmailExists(input.Email)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken
		}

		pending := account.PendingAccount{
			Username:     input.User,
			Email:        input.Email,
			PasswordHash: string(hashed),
			Contact:      input.Contact,
			Department:   input.Dept,
		}
		return tx.Account.CreatePending(&pending)
	})
}

func (s *AccountService) ListPending() ([]account.PendingAccount, error) {
	return s.Repos.Account.ListPending()
}

// Approve promotes the first pending registration matching the username.
// The pending row is located by username for wire compatibility, then
// promoted and deleted by primary key inside one transaction, so a
// duplicate username can never promote more than one row and a crash can
// never leave the account duplicated or missing.
func (s *AccountService) Approve(username, actor string) (account.Account, error) {
	var approved account.Account

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		pending, err := tx.Account.GetPendingByUsername(username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		approved = account.Account{
			Username:     pending.Username,
			Email:        pending.Email,
			PasswordHash: pending.PasswordHash,
			Contact:      pending.Contact,
			Department:   pending.Department,
			Approved:     true,
			Role:         account.RoleUser,
		}
		if err := tx.Account.CreateAccount(&approved); err != nil {
			return err
		}
		if err := tx.Account.DeletePending(pending.ID); err != nil {
			return err
		}

		return tx.Audit.CreateAuditLog(&audit.AuditLog{
			Username:     actor,
			Action:       "approveUser",
			ResourceType: "account",
			ResourceKey:  pending.Email,
		})
	})
	if err != nil {
		return account.Account{}, err
	}

	if publishErr := queue.PublishAccountApproved(context.Background(), queue.AccountApprovedEvent{
		Username:   approved.Username,
		Email:      approved.Email,
		Department: approved.Department,
		ApprovedAt: time.Now().UTC().Format(time.RFC3339),
	}); publishErr != nil {
		log.Printf("account approved event not published: %v", publishErr)
	}

	return approved, nil
}

// Authenticate matches the transmitted digest against the stored hash for
// an approved account and issues a session token.
func (s *AccountService) Authenticate(username, pwHash string) (account.Account, string, error) {
	acc, err := s.Repos.Account.GetByUsername(username)
	if err != nil {
		return account.Account{}, "", ErrInvalidCredentials
	}
	if !acc.Approved {
		return account.Account{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(pwHash)); err != nil {
		return account.Account{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(acc.Username, string(acc.Role), sessionDuration)
	if err != nil {
		return account.Account{}, "", err
	}

	return acc, token, nil
}

// EnsureAdmin seeds the reserved admin account on startup.
func (s *AccountService) EnsureAdmin() error {
	_, err := s.Repos.Account.GetByUsername(config.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	digest := utils.Sha256Hex(config.AdminPassword)
	hashed, err := bcrypt.GenerateFromPassword([]byte(digest), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}

	admin := account.Account{
		Username:     config.AdminUsername,
		Email:        config.AdminEmail,
		PasswordHash: string(hashed),
		Approved:     true,
		Role:         account.RoleAdmin,
	}
	if err := s.Repos.Account.CreateAccount(&admin); err != nil {
		return err
	}
	log.Printf("Seeded admin account %q", config.AdminUsername)
	return nil
}
