package router

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/hostkeep/rental-app/controllers"
	"github.com/hostkeep/rental-app/middlewares"
	"github.com/hostkeep/rental-app/models"
	"github.com/hostkeep/rental-app/services"
)

func SetupRouter(ls *services.LifecycleService, gs *services.GeminiService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.NewRateLimiter(50, 100).RateLimit())

	// Serve the dashboard frontend when a build is present.
	if frontendDir := os.Getenv("FRONTEND_DIR"); frontendDir != "" {
		if _, err := os.Stat(frontendDir); err == nil {
			r.Static("/app", frontendDir)
			r.GET("/", func(c *gin.Context) {
				c.Redirect(http.StatusMovedPermanently, "/app/index.html")
			})
		}
	}

	propertyCtrl := controllers.NewPropertyController(ls)
	cleanerCtrl := controllers.NewCleanerLogController(ls)
	ticketCtrl := controllers.NewTicketController(ls)
	maintCtrl := controllers.NewMaintenanceLogController(ls)
	photoCtrl := controllers.NewPhotoController(gs)
	adminCtrl := controllers.NewAdminController(ls, gs)

	api := r.Group("/api")
	api.Use(middlewares.ActiveRole())
	{
		api.GET("/properties", propertyCtrl.GetAllProperties)

		cleaner := api.Group("/cleaner")
		cleaner.Use(middlewares.RequireRole(models.RoleCleaner))
		{
			cleaner.POST("/visits", cleanerCtrl.CreateCleanerVisit)
			cleaner.POST("/photos/analyze", photoCtrl.AnalyzeIssuePhoto)
		}

		maintenance := api.Group("/maintenance")
		maintenance.Use(middlewares.RequireRole(models.RoleMaintenance))
		{
			maintenance.GET("/tickets/open", ticketCtrl.GetOpenTickets)
			maintenance.POST("/tickets/:ticket_id/resolve", ticketCtrl.ResolveTicket)
		}

		admin := api.Group("/admin")
		admin.Use(middlewares.RequireRole(models.RoleAdmin))
		{
			admin.GET("/cleaner-logs", cleanerCtrl.GetAllCleanerLogs)
			admin.GET("/tickets", ticketCtrl.GetAllTickets)
			admin.GET("/maintenance-logs", maintCtrl.GetAllMaintenanceLogs)
			admin.GET("/dashboard", adminCtrl.GetDashboardStats)
			admin.POST("/maintenance-summary", adminCtrl.SummarizeMaintenanceNotes)
		}
	}

	return r
}
