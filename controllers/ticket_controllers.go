package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostkeep/rental-app/services"
	"github.com/hostkeep/rental-app/utils"
)

type TicketController struct {
	Lifecycle *services.LifecycleService
}

func NewTicketController(ls *services.LifecycleService) *TicketController {
	return &TicketController{Lifecycle: ls}
}

// GetOpenTickets returns the maintenance board: open tickets in the
// order they were raised.
func (tc *TicketController) GetOpenTickets(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Open tickets", tc.Lifecycle.ListOpenTickets())
}

// GetAllTickets lists every ticket regardless of status.
func (tc *TicketController) GetAllTickets(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "All tickets", tc.Lifecycle.Tickets())
}

// ResolveTicket closes a ticket with a maintenance record.
func (tc *TicketController) ResolveTicket(c *gin.Context) {
	ticketID := c.Param("ticket_id")

	var body services.ResolutionInput
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	maintLog, err := tc.Lifecycle.ResolveTicket(ticketID, body)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			utils.RespondError(c, http.StatusBadRequest, err)
		case errors.Is(err, services.ErrTicketNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
		case errors.Is(err, services.ErrTicketAlreadyResolved):
			utils.RespondError(c, http.StatusConflict, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Ticket resolved", maintLog)
}
