package main

import (
	"log"
	"os"
	"strings"
	"time"

	"eleganttours/database"
	"eleganttours/handlers"
	"eleganttours/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file (ignored in production where env vars are set directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using environment variables")
	}

	// Initialize database
	database.InitDB()

	// Initialize AI service
	services.InitGemini()

	// Initialize inquiry relay
	services.InitRelay()

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// Trusted proxies (hosted platforms sit behind a proxy)
	r.SetTrustedProxies([]string{"0.0.0.0/0"})

	// CORS — allow configured frontend origins
	frontendURLs := os.Getenv("FRONTEND_URL")
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if frontendURLs != "" {
		for _, u := range strings.Split(frontendURLs, ",") {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Routes
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthHandler)
		api.GET("/tours", handlers.ToursHandler)
		api.GET("/packages", handlers.PackagesHandler)
		api.POST("/inquiry", handlers.InquiryHandler)
		api.POST("/newsletter", handlers.NewsletterHandler)
		api.POST("/recommendations", handlers.RecommendHandler)
		api.POST("/visualize", handlers.VisualizeHandler)
		api.POST("/tours/:id/image", handlers.TourImageHandler)
		api.GET("/tours/:id/image", handlers.TourImageStatusHandler)
		api.GET("/brochure/:id", handlers.BrochureHandler)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Elegant Tours backend starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
