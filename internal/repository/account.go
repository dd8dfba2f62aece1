package repository

import (
	"github.com/helpdesk-ph/ticketdesk/internal/domain/account"
	"gorm.io/gorm"
)

type AccountRepo interface {
	CreatePending(p *account.PendingAccount) error
	ListPending() ([]account.PendingAccount, error)
	GetPendingByUsername(username string) (account.PendingAccount, error)
	DeletePending(id uint) error
	EmailExists(email string) (bool, error)
	CreateAccount(a *account.Account) error
	GetByUsername(username string) (account.Account, error)
	WithTx(tx *gorm.DB) AccountRepo
}

type DBAccountRepo struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) *DBAccountRepo {
	return &DBAccountRepo{
		db: db,
	}
}

func (r *DBAccountRepo) CreatePending(p *account.PendingAccount) error {
	return r.db.Create(p).Error
}

// ListPending returns pending registrations in insertion order.
func (r *DBAccountRepo) ListPending() ([]account.PendingAccount, error) {
	var pending []account.PendingAccount
	err := r.db.Order("id asc").Find(&pending).Error
	return pending, err
}

func (r *DBAccountRepo) GetPendingByUsername(username string) (account.PendingAccount, error) {
	var p account.PendingAccount
	err := r.db.Where("username = ?", username).Order("id asc").First(&p).Error
	return p, err
}

func (r *DBAccountRepo) DeletePending(id uint) error {
	return r.db.Delete(&account.PendingAccount{}, id).Error
}

// EmailExists reports whether the email is taken in either the pending or
// the approved set.
func (r *DBAccountRepo) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&account.PendingAccount{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := r.db.Model(&account.Account{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DBAccountRepo) CreateAccount(a *account.Account) error {
	return r.db.Create(a).Error
}

func (r *DBAccountRepo) GetByUsername(username string) (account.Account, error) {
	var a account.Account
	err := r.db.Where("username = ?", username).First(&a).Error
	return a, err
}

func (r *DBAccountRepo) WithTx(tx *gorm.DB) AccountRepo {
	if tx == nil {
		return r
	}
	return &DBAccountRepo{
		db: tx,
	}
}
