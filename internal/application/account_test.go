package application

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/helpdesk-ph/ticketdesk/internal/api/middleware"
	"github.com/helpdesk-ph/ticketdesk/internal/config"
	"github.com/helpdesk-ph/ticketdesk/internal/domain/account"
	"github.com/helpdesk-ph/ticketdesk/internal/repository"
	"github.com/helpdesk-ph/ticketdesk/internal/repository/mock"
	"github.com/helpdesk-ph/ticketdesk/pkg/utils"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupAccountServiceMocks(t *testing.T) (*AccountService, *mock.MockAccountRepo, *mock.MockAuditRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockAccount := mock.NewMockAccountRepo(ctrl)
	mockAudit := mock.NewMockAuditRepo(ctrl)
	repos := &repository.Repos{
		Account: mockAccount,
		Audit:   mockAudit,
	}
	svc := NewAccountService(repos)
	return svc, mockAccount, mockAudit
}

// --------------------- Register ---------------------
func TestRegister_Success(t *testing.T) {
	svc, mockAccount, _ := setupAccountServiceMocks(t)

	input := account.CreateAccountInput{
		User:    "alice",
		Email:   "alice@test.com",
		PwHash:  utils.Sha256Hex("123456"),
		Contact: "555-0101",
		Dept:    "Engineering",
	}

	mockAccount.EXPECT().EmailExists("alice@test.com").Return(false, nil)
	mockAccount.EXPECT().CreatePending(gomock.Any()).DoAndReturn(func(p *account.PendingAccount) error {
		assert.Equal(t, "alice", p.Username)
		assert.Equal(t, "alice@test.com", p.Email)
		assert.Equal(t, "Engineering", p.Department)
		// stored hash is bcrypt over the transmitted digest, never the digest itself
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(input.PwHash)))
		return nil
	})

	err := svc.Register(input)
	assert.NoError(t, err)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, mockAccount, _ := setupAccountServiceMocks(t)

	mockAccount.EXPECT().EmailExists("taken@test.com").Return(true, nil)

	input := account.CreateAccountInput{
		User:   "bob",
		Email:  "taken@test.com",
		PwHash: utils.Sha256Hex("123456"),
	}
	err := svc.Register(input)
	assert.Equal(t, ErrEmailTaken, err)
}

// --------------------- Approve ---------------------
func TestApprove_Success(t *testing.T) {
	svc, mockAccount, mockAudit := setupAccountServiceMocks(t)

	pending := account.PendingAccount{
		ID:           7,
		Username:     "carol",
		Email:        "carol@test.com",
		PasswordHash: "bcrypt-hash",
		Contact:      "555-0102",
		Department:   "Finance",
	}

	mockAccount.EXPECT().GetPendingByUsername("carol").Return(pending, nil)
	mockAccount.EXPECT().CreateAccount(gomock.Any()).DoAndReturn(func(a *account.Account) error {
		assert.Equal(t, "carol", a.Username)
		assert.Equal(t, "bcrypt-hash", a.PasswordHash)
		assert.True(t, a.Approved)
		assert.Equal(t, account.RoleUser, a.Role)
		return nil
	})
	mockAccount.EXPECT().DeletePending(uint(7)).Return(nil)
	mockAudit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil)

	approved, err := svc.Approve("carol", "admin")
	assert.NoError(t, err)
	assert.Equal(t, "carol@test.com", approved.Email)
}

func TestApprove_NotFound(t *testing.T) {
	svc, mockAccount, _ := setupAccountServiceMocks(t)

	mockAccount.EXPECT().GetPendingByUsername("ghost").Return(account.PendingAccount{}, gorm.ErrRecordNotFound)

	_, err := svc.Approve("ghost", "admin")
	assert.Equal(t, ErrUserNotFound, err)
}

func TestApprove_DeleteFails_NoPartialPromotion(t *testing.T) {
	svc, mockAccount, _ := setupAccountServiceMocks(t)

	pending := account.PendingAccount{ID: 3, Username: "dave", Email: "dave@test.com"}
	boom := errors.New("connection reset")

	mockAccount.EXPECT().GetPendingByUsername("dave").Return(pending, nil)
	mockAccount.EXPECT().CreateAccount(gomock.Any()).Return(nil)
	mockAccount.EXPECT().DeletePending(uint(3)).Return(boom)

	_, err := svc.Approve("dave", "admin")
	assert.Equal(t, boom, err)
}

// --------------------- Authenticate ---------------------
func TestAuthenticate_Success(t *testing.T) {
	svc, mockAccount, _ := setupAccountServiceMocks(t)

	digest := utils.Sha256Hex("123456")
	stored, _ := bcrypt.GenerateFromPassword([]byte(digest), bcrypt.DefaultCost)
	acc := account.Account{
		Username:     "erin",
		PasswordHash: string(stored),
		Approved:     true,
		Role:         account.RoleUser,
	}

	mockAccount.EXPECT().GetByUsername("erin").Return(acc, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(username, role string, exp time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	got, token, err := svc.Authenticate("erin", digest)
	assert.NoError(t, err)
	assert.Equal(t, "erin", got.Username)
	assert.Equal(t, "token123", token)
}

func TestAuthenticate_WrongDigest(t *testing.T) {
	svc, mockAccount, _ := setupAccountServiceMocks(t)

	stored, _ := bcrypt.GenerateFromPassword([]byte(utils.Sha256Hex("right")), bcrypt.DefaultCost)
	acc := account.Account{Username: "erin", PasswordHash: string(stored), Approved: true}

	mockAccount.EXPECT().GetByUsername("erin").Return(acc, nil)

	_, token, err := svc.Authenticate("erin", utils.Sha256Hex("wrong"))
	assert.Equal(t, ErrInvalidCredentials, err)
	assert.Empty(t, token)
}

func TestAuthenticate_NotApproved(t *testing.T) {
	svc, mockAccount, _ := setupAccountServiceMocks(t)

	digest := utils.Sha256Hex("123456")
	stored, _ := bcrypt.GenerateFromPassword([]byte(digest), bcrypt.DefaultCost)
	acc := account.Account{Username: "frank", PasswordHash: string(stored), Approved: false}

	mockAccount.EXPECT().GetByUsername("frank").Return(acc, nil)

	_, _, err := svc.Authenticate("frank", digest)
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestAuthenticate_UserMissing(t *testing.T) {
	svc, mockAccount, _ := setupAccountServiceMocks(t)

	mockAccount.EXPECT().GetByUsername("ghost").Return(account.Account{}, gorm.ErrRecordNotFound)

	_, _, err := svc.Authenticate("ghost", utils.Sha256Hex("123456"))
	assert.Equal(t, ErrInvalidCredentials, err)
}

// --------------------- EnsureAdmin ---------------------
func TestEnsureAdmin_AlreadySeeded(t *testing.T) {
	svc, mockAccount, _ := setupAccountServiceMocks(t)

	mockAccount.EXPECT().GetByUsername(config.AdminUsername).Return(account.Account{Username: config.AdminUsername}, nil)

	assert.NoError(t, svc.EnsureAdmin())
}

func TestEnsureAdmin_CreatesAdmin(t *testing.T) {
	svc, mockAccount, _ := setupAccountServiceMocks(t)

	mockAccount.EXPECT().GetByUsername(config.AdminUsername).Return(account.Account{}, gorm.ErrRecordNotFound)
	mockAccount.EXPECT().CreateAccount(gomock.Any()).DoAndReturn(func(a *account.Account) error {
		assert.Equal(t, account.RoleAdmin, a.Role)
		assert.True(t, a.Approved)
		return nil
	})

	assert.NoError(t, svc.EnsureAdmin())
}
