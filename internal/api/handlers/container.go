package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/helpdesk-ph/ticketdesk/internal/application"
)

type Handlers struct {
	Dispatch   *DispatchHandler
	Stream     *StreamHandler
	Attachment *AttachmentHandler
	Audit      *AuditHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Dispatch:   NewDispatchHandler(svc),
		Stream:     NewStreamHandler(svc),
		Attachment: NewAttachmentHandler(svc.Attachment),
		Audit:      NewAuditHandler(svc.Audit),
	}
}

// Health reports liveness for load balancers and the container runtime.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
