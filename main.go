package main

import (
	"net/http"
	"os"

	"restaurant-ordering-api/cart"
	"restaurant-ordering-api/config"
	"restaurant-ordering-api/handlers"
	"restaurant-ordering-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	logger, err := config.NewLogger(env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "" && env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	config.InitDB()

	// Cart persistence: redis when reachable, in-process otherwise
	var carts cart.Storage
	var identifiers cart.IdentifierStore
	if client := config.NewRedisClient(); client != nil {
		logger.Info("redis connected, carts persisted")
		carts = cart.NewRedisStorage(client)
		identifiers = cart.NewRedisIdentifierStore(client)
	} else {
		logger.Warn("redis unreachable, carts held in memory only")
		carts = cart.NewMemoryStorage()
		identifiers = cart.NewMemoryIdentifierStore()
	}

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Ordering API",
			"version": "1.0.0",
		})
	})

	// Register all routes
	h := handlers.New(config.DB, logger, carts, identifiers)
	routes.SetupRoutes(r, h)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("server starting", zap.String("addr", ":"+port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
