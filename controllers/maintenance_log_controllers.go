package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostkeep/rental-app/services"
	"github.com/hostkeep/rental-app/utils"
)

type MaintenanceLogController struct {
	Lifecycle *services.LifecycleService
}

func NewMaintenanceLogController(ls *services.LifecycleService) *MaintenanceLogController {
	return &MaintenanceLogController{Lifecycle: ls}
}

// GetAllMaintenanceLogs lists every completed fix.
func (mlc *MaintenanceLogController) GetAllMaintenanceLogs(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "All maintenance logs", mlc.Lifecycle.MaintenanceLogs())
}
