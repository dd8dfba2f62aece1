package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/helpdesk-ph/ticketdesk/internal/application"
	"github.com/helpdesk-ph/ticketdesk/internal/domain/audit"
	"github.com/helpdesk-ph/ticketdesk/internal/repository"
	"github.com/helpdesk-ph/ticketdesk/internal/repository/mock"
	"github.com/helpdesk-ph/ticketdesk/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --------------------- Setup ---------------------
func setupAuditRouter(t *testing.T, claims *types.Claims) (*gin.Engine, *mock.MockAuditRepo) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockAudit := mock.NewMockAuditRepo(ctrl)
	repos := &repository.Repos{Audit: mockAudit}
	svc := application.New(repos, nil)

	r := gin.New()
	r.GET("/api/audit/logs", func(c *gin.Context) {
		if claims != nil {
			c.Set("claims", claims)
		}
		NewAuditHandler(svc.Audit).GetAuditLogs(c)
	})
	return r, mockAudit
}

func getAuditLogs(t *testing.T, r *gin.Engine, query string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/audit/logs"+query, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --------------------- GetAuditLogs ---------------------
func TestGetAuditLogs_AdminOnly(t *testing.T) {
	r, _ := setupAuditRouter(t, &types.Claims{Username: "alice", Role: "user"})

	w := getAuditLogs(t, r, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetAuditLogs_Success(t *testing.T) {
	r, mockAudit := setupAuditRouter(t, &types.Claims{Username: "admin", Role: "admin"})

	mockAudit.EXPECT().GetAuditLogs(gomock.Any()).DoAndReturn(func(p repository.AuditQueryParams) ([]audit.AuditLog, error) {
		require.NotNil(t, p.Action)
		assert.Equal(t, "approveTicket", *p.Action)
		assert.Equal(t, 10, p.Limit)
		return []audit.AuditLog{{Username: "admin", Action: "approveTicket", ResourceKey: "T-1"}}, nil
	})

	w := getAuditLogs(t, r, "?action=approveTicket&limit=10")
	require.Equal(t, http.StatusOK, w.Code)

	var logs []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, "approveTicket", logs[0]["action"])
}

func TestGetAuditLogs_InvalidTimeRange(t *testing.T) {
	r, _ := setupAuditRouter(t, &types.Claims{Username: "admin", Role: "admin"})

	w := getAuditLogs(t, r, "?start_time=yesterday")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
