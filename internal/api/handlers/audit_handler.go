package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/helpdesk-ph/ticketdesk/internal/application"
	"github.com/helpdesk-ph/ticketdesk/internal/repository"
	"github.com/helpdesk-ph/ticketdesk/pkg/response"
	"github.com/helpdesk-ph/ticketdesk/pkg/utils"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs returns the admin mutation trail, filtered by optional
// username, action, resource_type and RFC3339 time range, with pagination.
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	if !utils.IsAdmin(c) {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "admin only"})
		return
	}

	var params repository.AuditQueryParams

	if username := c.Query("username"); username != "" {
		params.Username = &username
	}
	if rt := c.Query("resource_type"); rt != "" {
		params.ResourceType = &rt
	}
	if act := c.Query("action"); act != "" {
		params.Action = &act
	}

	if start := c.Query("start_time"); start != "" {
		t, err := time.Parse(time.RFC3339, start)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid start_time"})
			return
		}
		params.StartTime = &t
	}

	if end := c.Query("end_time"); end != "" {
		t, err := time.Parse(time.RFC3339, end)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid end_time"})
			return
		}
		params.EndTime = &t
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit > 1000 {
		limit = 1000
	}
	params.Limit = limit
	params.Offset = offset

	logs, err := h.svc.QueryAuditLogs(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}
