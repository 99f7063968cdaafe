package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rentster/rentster-app/config"
	"github.com/rentster/rentster-app/middlewares"
	"github.com/rentster/rentster-app/router"
	"github.com/rentster/rentster-app/services"
	"github.com/rentster/rentster-app/store"
	"github.com/rentster/rentster-app/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()

	// Open the database handle once for the whole process.
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	// Create tables and seed the default plans. Idempotent.
	s := store.New(db)
	if err := s.Initialize(); err != nil {
		utils.ErrorLogger.Fatalf("Failed to initialize store: %v", err)
	}
	utils.InfoLogger.Println("Store initialized.")

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Push booking/payment/item changes to dashboard clients.
	monitor := services.NewBookingMonitor(db)
	monitor.Start()
	defer monitor.Stop()

	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db)
	r.Use(rateLimiter.RateLimit())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
