package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/helpdesk-ph/ticketdesk/internal/application"
	"github.com/helpdesk-ph/ticketdesk/pkg/response"
	"github.com/helpdesk-ph/ticketdesk/pkg/utils"
)

type AttachmentHandler struct {
	svc *application.AttachmentService
}

func NewAttachmentHandler(svc *application.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{svc: svc}
}

// Upload accepts a multipart file and stores it against the ticket.
func (h *AttachmentHandler) Upload(c *gin.Context) {
	username, err := utils.GetUserNameFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	ticketID := c.Param("ticketID")
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer func() {
		_ = file.Close()
	}()

	contentType := fileHeader.Header.Get("Content-Type")
	a, err := h.svc.Upload(c.Request.Context(), ticketID, username, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrStorageDisabled):
			c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, a)
}

// List returns the ticket's attachments with presigned download URLs.
func (h *AttachmentHandler) List(c *gin.Context) {
	ticketID := c.Param("ticketID")

	attachments, err := h.svc.List(c.Request.Context(), ticketID)
	if err != nil {
		if errors.Is(err, application.ErrStorageDisabled) {
			c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, attachments)
}
