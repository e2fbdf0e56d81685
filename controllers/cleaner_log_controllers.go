package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostkeep/rental-app/services"
	"github.com/hostkeep/rental-app/utils"
)

type CleanerLogController struct {
	Lifecycle *services.LifecycleService
}

func NewCleanerLogController(ls *services.LifecycleService) *CleanerLogController {
	return &CleanerLogController{Lifecycle: ls}
}

// CreateCleanerVisit records a visit and, when an issue is reported,
// opens a ticket for it in the same submission.
func (clc *CleanerLogController) CreateCleanerVisit(c *gin.Context) {
	type reqBody struct {
		services.VisitInput
		Ticket *services.TicketInput `json:"ticket"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	logEntry, ticket, err := clc.Lifecycle.RecordCleanerVisit(body.VisitInput, body.Ticket)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	resp := gin.H{"log": logEntry}
	if ticket != nil {
		resp["ticket"] = ticket
	}
	utils.RespondJSON(c, http.StatusCreated, "Cleaner visit recorded", resp)
}

// GetAllCleanerLogs lists every recorded visit.
func (clc *CleanerLogController) GetAllCleanerLogs(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "All cleaner logs", clc.Lifecycle.CleanerLogs())
}
