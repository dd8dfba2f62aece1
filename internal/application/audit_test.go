package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/helpdesk-ph/ticketdesk/internal/domain/audit"
	"github.com/helpdesk-ph/ticketdesk/internal/repository"
	"github.com/helpdesk-ph/ticketdesk/internal/repository/mock"
	"github.com/stretchr/testify/assert"
)

// --------------------- Setup ---------------------
func setupAuditServiceMocks(t *testing.T) (*AuditService, *mock.MockAuditRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockAudit := mock.NewMockAuditRepo(ctrl)
	repos := &repository.Repos{
		Audit: mockAudit,
	}
	svc := NewAuditService(repos)
	return svc, mockAudit
}

// --------------------- QueryAuditLogs ---------------------
func TestQueryAuditLogs_DefaultLimit(t *testing.T) {
	svc, mockAudit := setupAuditServiceMocks(t)

	mockAudit.EXPECT().GetAuditLogs(gomock.Any()).DoAndReturn(func(p repository.AuditQueryParams) ([]audit.AuditLog, error) {
		assert.Equal(t, 100, p.Limit)
		return []audit.AuditLog{{Action: "approveTicket"}}, nil
	})

	logs, err := svc.QueryAuditLogs(repository.AuditQueryParams{})
	assert.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestQueryAuditLogs_PassesFilters(t *testing.T) {
	svc, mockAudit := setupAuditServiceMocks(t)

	username := "admin"
	action := "deleteTicket"
	mockAudit.EXPECT().GetAuditLogs(gomock.Any()).DoAndReturn(func(p repository.AuditQueryParams) ([]audit.AuditLog, error) {
		assert.Equal(t, &username, p.Username)
		assert.Equal(t, &action, p.Action)
		assert.Equal(t, 25, p.Limit)
		assert.Equal(t, 50, p.Offset)
		return nil, nil
	})

	_, err := svc.QueryAuditLogs(repository.AuditQueryParams{
		Username: &username,
		Action:   &action,
		Limit:    25,
		Offset:   50,
	})
	assert.NoError(t, err)
}

// --------------------- CleanupOldLogs ---------------------
func TestCleanupOldLogs_ClampsRetention(t *testing.T) {
	svc, mockAudit := setupAuditServiceMocks(t)

	mockAudit.EXPECT().DeleteOldAuditLogs(1).Return(nil)

	assert.NoError(t, svc.CleanupOldLogs(0))
}

func TestCleanupOldLogs_PassesRetention(t *testing.T) {
	svc, mockAudit := setupAuditServiceMocks(t)

	mockAudit.EXPECT().DeleteOldAuditLogs(30).Return(nil)

	assert.NoError(t, svc.CleanupOldLogs(30))
}
