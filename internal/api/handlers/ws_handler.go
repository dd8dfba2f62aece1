package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/helpdesk-ph/ticketdesk/internal/application"
	"github.com/helpdesk-ph/ticketdesk/internal/domain/ticket"
	"github.com/helpdesk-ph/ticketdesk/pkg/response"
	"github.com/helpdesk-ph/ticketdesk/pkg/utils"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pushInterval = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type StreamHandler struct {
	svc *application.Services
}

func NewStreamHandler(svc *application.Services) *StreamHandler {
	return &StreamHandler{svc: svc}
}

// StreamTickets pushes the visible ticket list over WebSocket at the same
// cadence the static pages poll with. Admins see every ticket, users their
// own.
func (h *StreamHandler) StreamTickets(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	isAdmin := claims.Role == "admin"

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	// Heartbeat handling
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Reader consumes control frames and detects close. It never writes;
	// the connection supports only one concurrent writer, the loop below.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	push := func() error {
		var tickets []ticket.TicketDTO
		var listErr error
		if isAdmin {
			tickets, listErr = h.svc.Ticket.ListAll()
		} else {
			tickets, listErr = h.svc.Ticket.ListByOwner(claims.Username)
		}

		payload := []byte("[]")
		if listErr == nil {
			payload, _ = json.Marshal(tickets)
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteMessage(websocket.TextMessage, payload)
	}

	// Initial snapshot, then the clients' polling cadence
	if err := push(); err != nil {
		return
	}

	ticker := time.NewTicker(pushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case <-ticker.C:
			if err := push(); err != nil {
				return
			}
		}
	}
}
