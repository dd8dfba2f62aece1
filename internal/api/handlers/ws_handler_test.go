package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/websocket"
	"github.com/helpdesk-ph/ticketdesk/internal/application"
	"github.com/helpdesk-ph/ticketdesk/internal/domain/ticket"
	"github.com/helpdesk-ph/ticketdesk/internal/repository"
	"github.com/helpdesk-ph/ticketdesk/internal/repository/mock"
	"github.com/helpdesk-ph/ticketdesk/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --------------------- Setup ---------------------
func setupStreamServer(t *testing.T, claims *types.Claims) (*httptest.Server, *mock.MockTicketRepo) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTicket := mock.NewMockTicketRepo(ctrl)
	repos := &repository.Repos{Ticket: mockTicket}
	svc := application.New(repos, nil)

	r := gin.New()
	r.GET("/ws/tickets", func(c *gin.Context) {
		if claims != nil {
			c.Set("claims", claims)
		}
		NewStreamHandler(svc).StreamTickets(c)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, mockTicket
}

func dialStream(t *testing.T, srv *httptest.Server) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/tickets"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readTickets(t *testing.T, conn *websocket.Conn) []ticket.TicketDTO {
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var tickets []ticket.TicketDTO
	require.NoError(t, json.Unmarshal(raw, &tickets))
	return tickets
}

// --------------------- StreamTickets ---------------------
func TestStreamTickets_AdminSeesAll(t *testing.T) {
	srv, mockTicket := setupStreamServer(t, &types.Claims{Username: "admin", Role: "admin"})

	mockTicket.EXPECT().FindAll().Return([]ticket.Ticket{
		{TicketID: "T-1", Username: "alice"},
		{TicketID: "T-2", Username: "bob"},
	}, nil).AnyTimes()

	conn := dialStream(t, srv)
	tickets := readTickets(t, conn)

	require.Len(t, tickets, 2)
	assert.Equal(t, "T-1", tickets[0].TicketID)
	assert.Equal(t, "T-2", tickets[1].TicketID)
}

func TestStreamTickets_UserSeesOwnOnly(t *testing.T) {
	srv, mockTicket := setupStreamServer(t, &types.Claims{Username: "alice", Role: "user"})

	mockTicket.EXPECT().FindByOwner("alice").Return([]ticket.Ticket{
		{TicketID: "T-1", Username: "alice"},
	}, nil).AnyTimes()

	conn := dialStream(t, srv)
	tickets := readTickets(t, conn)

	require.Len(t, tickets, 1)
	assert.Equal(t, "alice", tickets[0].Username)
}

func TestStreamTickets_RejectsMissingClaims(t *testing.T) {
	srv, _ := setupStreamServer(t, nil)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/tickets"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 401, resp.StatusCode)
}
