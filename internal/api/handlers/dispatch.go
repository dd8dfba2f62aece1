package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/helpdesk-ph/ticketdesk/internal/api/middleware"
	"github.com/helpdesk-ph/ticketdesk/internal/application"
	"github.com/helpdesk-ph/ticketdesk/internal/domain/account"
	"github.com/helpdesk-ph/ticketdesk/internal/domain/ticket"
	"github.com/helpdesk-ph/ticketdesk/pkg/response"
)

// DispatchHandler is the single entry point of the legacy wire contract:
// POST {action, ...fields}, always HTTP 200, success or failure in the
// JSON body.
type DispatchHandler struct {
	svc *application.Services
}

func NewDispatchHandler(svc *application.Services) *DispatchHandler {
	return &DispatchHandler{svc: svc}
}

type actionEnvelope struct {
	Action string `json:"action" binding:"required"`
}

func (h *DispatchHandler) Dispatch(c *gin.Context) {
	var env actionEnvelope
	if err := c.ShouldBindBodyWith(&env, binding.JSON); err != nil {
		c.JSON(http.StatusOK, response.Fail("Invalid request"))
		return
	}

	switch env.Action {
	case "createAccount":
		h.createAccount(c)
	case "login":
		h.login(c)
	case "getPendingUsers":
		h.getPendingUsers(c)
	case "approveUser":
		h.approveUser(c)
	case "submitTicket":
		h.submitTicket(c)
	case "getAllTickets":
		h.getAllTickets(c)
	case "getUserTickets":
		h.getUserTickets(c)
	case "getTicketByID":
		h.getTicketByID(c)
	case "approveTicket":
		h.approveTicket(c)
	case "deleteTicket":
		h.deleteTicket(c)
	case "searchTickets":
		h.searchTickets(c)
	default:
		c.JSON(http.StatusOK, response.Fail(application.ErrUnknownAction.Error()))
	}
}

func (h *DispatchHandler) createAccount(c *gin.Context) {
	var input account.CreateAccountInput
	if !h.bind(c, &input) {
		return
	}

	if err := h.svc.Account.Register(input); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Ok())
}

func (h *DispatchHandler) login(c *gin.Context) {
	var input account.LoginInput
	if !h.bind(c, &input) {
		return
	}

	acc, token, err := h.svc.Account.Authenticate(input.User, input.PwHash)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.LoginResponse{
		Success: true,
		User:    acc.Username,
		Role:    string(acc.Role),
		Token:   token,
	})
}

func (h *DispatchHandler) getPendingUsers(c *gin.Context) {
	pending, err := h.svc.Account.ListPending()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, account.ToPendingUserDTOs(pending))
}

func (h *DispatchHandler) approveUser(c *gin.Context) {
	var input account.ApproveUserInput
	if !h.bind(c, &input) {
		return
	}

	if _, err := h.svc.Account.Approve(input.User, actorName(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Ok())
}

func (h *DispatchHandler) submitTicket(c *gin.Context) {
	var input ticket.SubmitTicketInput
	if !h.bind(c, &input) {
		return
	}

	if _, err := h.svc.Ticket.Submit(input); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Ok())
}

func (h *DispatchHandler) getAllTickets(c *gin.Context) {
	tickets, err := h.svc.Ticket.ListAll()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (h *DispatchHandler) getUserTickets(c *gin.Context) {
	var input ticket.UserInput
	if !h.bind(c, &input) {
		return
	}

	tickets, err := h.svc.Ticket.ListByOwner(input.User)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (h *DispatchHandler) getTicketByID(c *gin.Context) {
	var input ticket.TicketIDInput
	if !h.bind(c, &input) {
		return
	}

	t, err := h.svc.Ticket.GetByID(input.TicketID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *DispatchHandler) approveTicket(c *gin.Context) {
	var input ticket.TicketIDInput
	if !h.bind(c, &input) {
		return
	}

	if _, err := h.svc.Ticket.Approve(input.TicketID, actorName(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Ok())
}

func (h *DispatchHandler) deleteTicket(c *gin.Context) {
	var input ticket.TicketIDInput
	if !h.bind(c, &input) {
		return
	}

	if err := h.svc.Ticket.Delete(input.TicketID, actorName(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Ok())
}

func (h *DispatchHandler) searchTickets(c *gin.Context) {
	var input ticket.SearchInput
	if !h.bind(c, &input) {
		return
	}

	username := input.User
	if username == "" {
		if claims := middleware.OptionalClaims(c); claims != nil {
			username = claims.Username
		}
	}
	if username == "" {
		c.JSON(http.StatusOK, response.Fail("user is required"))
		return
	}

	tickets, err := h.svc.Ticket.Search(username, input.Query)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// bind unmarshals the shared request body into the action's input type.
// Validation failures stay inside the envelope; the transport status is
// always 200.
func (h *DispatchHandler) bind(c *gin.Context, input any) bool {
	if err := c.ShouldBindBodyWith(input, binding.JSON); err != nil {
		c.JSON(http.StatusOK, response.Fail(bindMessage(err)))
		return false
	}
	return true
}

func (h *DispatchHandler) fail(c *gin.Context, err error) {
	if application.KindOf(err) == application.KindInternal {
		log.Printf("dispatch: internal failure: %v", err)
	}
	c.JSON(http.StatusOK, response.Fail(err.Error()))
}

func actorName(c *gin.Context) string {
	if claims := middleware.OptionalClaims(c); claims != nil {
		return claims.Username
	}
	return "legacy-client"
}

func bindMessage(err error) string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return "Invalid input"
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		field := strings.ToLower(fe.StructField())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", field)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", field)
		case "len":
			msg = fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
		case "gte":
			msg = fmt.Sprintf("%s must be at least %s", field, fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", field)
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}
