package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"jobtracker-api/internal/config"
	"jobtracker-api/internal/database"
	"jobtracker-api/internal/handlers"
	"jobtracker-api/internal/repository"
	"jobtracker-api/internal/services"
	"jobtracker-api/internal/storage"
)

func main() {
	// 1. Environment & Logging
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()
	if logFile := config.InitLogging(); logFile != nil {
		defer logFile.Close()
	}

	// 2. Database Connection
	db := database.Connect(cfg)

	// 3. Attachment Store
	files, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to prepare upload directory:", err)
	}

	// 4. Core Services
	repo := repository.NewGorm(db)
	appService := services.NewApplicationService(repo, files)
	statsService := services.NewStatsService(repo)
	scraperService := services.NewScraperService()

	// 5. Handlers
	appHandler := handlers.NewApplicationHandler(appService, statsService)
	scrapeHandler := handlers.NewScrapeHandler(scraperService)

	// 6. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // Single-user local tool; the UI runs on a random local port
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/applications", appHandler.Create)
		api.GET("/applications", appHandler.List)
		api.GET("/applications/stats", appHandler.Summary)
		api.GET("/applications/:id", appHandler.Get)
		api.PATCH("/applications/:id/status", appHandler.UpdateStatus)
		api.PATCH("/applications/:id/people", appHandler.UpdatePeople)
		api.DELETE("/applications/:id", appHandler.Delete)
		api.GET("/applications/:id/attachments/:kind", appHandler.DownloadAttachment)

		api.POST("/jobs/scrape", scrapeHandler.Scrape)
	}

	log.Println("Server starting on port " + cfg.Port + "...")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
