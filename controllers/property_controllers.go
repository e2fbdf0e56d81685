package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostkeep/rental-app/services"
	"github.com/hostkeep/rental-app/utils"
)

type PropertyController struct {
	Lifecycle *services.LifecycleService
}

func NewPropertyController(ls *services.LifecycleService) *PropertyController {
	return &PropertyController{Lifecycle: ls}
}

// GetAllProperties lists the portfolio for the visit form dropdown.
func (pc *PropertyController) GetAllProperties(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "All properties", pc.Lifecycle.Properties())
}
