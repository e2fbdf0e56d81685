package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hostkeep/rental-app/models"
	"github.com/hostkeep/rental-app/services"
	"github.com/hostkeep/rental-app/utils"
)

type AdminController struct {
	Lifecycle *services.LifecycleService
	Gemini    *services.GeminiService
}

func NewAdminController(ls *services.LifecycleService, gs *services.GeminiService) *AdminController {
	return &AdminController{Lifecycle: ls, Gemini: gs}
}

// GetDashboardStats aggregates the collections for the admin view.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var stats struct {
		TotalProperties  int `json:"total_properties"`
		TotalCleanerLogs int `json:"total_cleaner_logs"`
		TodayCleanerLogs int `json:"today_cleaner_logs"`
		TicketStats      struct {
			Total    int `json:"total"`
			Open     int `json:"open"`
			Resolved int `json:"resolved"`
		} `json:"ticket_stats"`
		TotalMaintenanceLogs int            `json:"total_maintenance_logs"`
		VisitsPerProperty    map[string]int `json:"visits_per_property"`
		AiAvailable          bool           `json:"ai_available"`
	}

	stats.TotalProperties = len(ac.Lifecycle.Properties())
	stats.VisitsPerProperty = make(map[string]int)

	for _, logEntry := range ac.Lifecycle.CleanerLogs() {
		stats.TotalCleanerLogs++
		if logEntry.Date == today {
			stats.TodayCleanerLogs++
		}
		stats.VisitsPerProperty[logEntry.PropertyID]++
	}

	for _, t := range ac.Lifecycle.Tickets() {
		stats.TicketStats.Total++
		if t.Status == models.TicketOpen {
			stats.TicketStats.Open++
		} else {
			stats.TicketStats.Resolved++
		}
	}

	stats.TotalMaintenanceLogs = len(ac.Lifecycle.MaintenanceLogs())
	stats.AiAvailable = ac.Gemini.IsAvailable()

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}

// SummarizeMaintenanceNotes asks the AI gateway for a report over all
// collected maintenance notes. The gateway degrades to fixed text on
// any failure, so this always answers 200.
func (ac *AdminController) SummarizeMaintenanceNotes(c *gin.Context) {
	summary := ac.Gemini.SummarizeMaintenanceNotes(c.Request.Context(), ac.Lifecycle.MaintenanceNotes())
	utils.RespondJSON(c, http.StatusOK, "Maintenance summary", gin.H{"summary": summary})
}
