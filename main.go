package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/hostkeep/rental-app/config"
	"github.com/hostkeep/rental-app/router"
	"github.com/hostkeep/rental-app/services"
	"github.com/hostkeep/rental-app/store"
	"github.com/hostkeep/rental-app/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open database: %v", err)
	}

	st, err := store.New(db)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to prepare collection store: %v", err)
	}

	lifecycle := services.NewLifecycleService(st)
	gemini := services.NewGeminiService()
	if !gemini.IsAvailable() {
		utils.InfoLogger.Println("Gemini API key not found. AI features will be disabled.")
	}

	reminder := services.NewReminderService(lifecycle)
	reminder.Start()
	defer reminder.Stop()

	r := router.SetupRouter(lifecycle, gemini)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
