package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Sheyman13214/todoright-api/internal/config"
	"github.com/Sheyman13214/todoright-api/internal/database"
	"github.com/Sheyman13214/todoright-api/internal/handlers"
	"github.com/Sheyman13214/todoright-api/internal/middleware"
	"github.com/Sheyman13214/todoright-api/internal/repository"
	"github.com/Sheyman13214/todoright-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(database.GetDB())
	taskRepo := repository.NewTaskRepository(database.GetDB())

	authService := services.NewAuthService(userRepo, cfg.MinPasswordLength)
	tokenService := services.NewTokenService([]byte(cfg.TokenSecret), cfg.TokenTTL)
	taskService := services.NewTaskService(taskRepo, cfg.DescriptionWordCap)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, tokenService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "To-Do Right API is running",
		})
	})

	// User routes
	users := r.Group("/users")
	{
		users.POST("", authHandler.Register)
		users.POST("/login", authHandler.Login)
		users.GET("/me", middleware.RequireAuth(tokenService), authHandler.Me)
	}

	// Task routes (protected)
	tasks := r.Group("/tasks")
	tasks.Use(middleware.RequireAuth(tokenService))
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PATCH("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
		tasks.POST("/:id/items", taskHandler.AddItem)
		tasks.DELETE("/:id/items/:index", taskHandler.RemoveItem)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
