package main

import (
	"log"
	"strings"
	"time"

	"wavectf/config"
	"wavectf/database"
	_ "wavectf/docs"
	"wavectf/middleware"
	"wavectf/routes/v1"
	"wavectf/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title WaveCTF API
// @version 1.0
// @description API for the WaveCTF wireless security competition platform
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	config.Load()

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// The API stays up without redis; caching and cooldowns are disabled
	rdb, err := database.ConnectRedis()
	if err != nil {
		log.Printf("Redis unavailable, continuing without cache: %v", err)
	}

	go middleware.UpdateSystemMetrics()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(config.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1.Register(r, v1.Deps{
		Submissions: services.NewSubmissionService(db, rdb),
		Teams:       services.NewTeamService(db),
		Leaderboard: services.NewLeaderboardService(db),
		Stats:       services.NewStatsService(db),
		Storage:     services.NewStorageService(config.UploadDir),
	})

	log.Printf("Starting server on port %s", config.Port)
	if err := r.Run(":" + config.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
