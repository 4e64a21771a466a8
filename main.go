package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"todos-be/internal/cache"
	"todos-be/internal/config"
	"todos-be/internal/controllers"
	"todos-be/internal/database"
	"todos-be/internal/jwt"
	"todos-be/internal/middleware"
	"todos-be/internal/models"
	"todos-be/internal/repository"
	"todos-be/internal/service"
)

func main() {
	cfg := config.Load()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Redis is optional; without it every lookup hits the store.
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: failed to connect to Redis (%v). Continuing without cache.", err)
			cacheClient = nil
		} else {
			log.Println("Connected to Redis cache")
		}
	}

	userRepo := repository.NewUserRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)

	userService := service.NewUserService(userRepo, cacheClient)
	todoService := service.NewTodoService(todoRepo, cacheClient)
	authService := service.NewAuthService(userRepo, jwtService)

	authController := controllers.NewAuthController(authService, userService)
	userController := controllers.NewUserController(userService)
	todoController := controllers.NewTodoController(todoService)

	generalLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	router := gin.Default()
	router.Use(cors.Default())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.TokenExtractor())

	api := router.Group("/api")
	api.Use(generalLimiter.Limit())
	{
		api.GET("/hello", func(c *gin.Context) {
			c.String(http.StatusOK, "Hello World!")
		})

		auth := api.Group("/auth")
		auth.Use(authLimiter.Limit())
		{
			auth.POST("/login", authController.Login)
			auth.POST("/create-user", authController.CreateUser)
		}

		users := api.Group("/users")
		users.Use(middleware.Auth(jwtService), middleware.UserExtractor(jwtService, userRepo))
		{
			users.GET("", userController.GetAll)
			users.GET("/:id", userController.GetOne)
			users.DELETE("", userController.Remove)
		}

		todos := api.Group("/todos")
		todos.Use(middleware.Auth(jwtService), middleware.UserExtractor(jwtService, userRepo))
		{
			todos.GET("", todoController.GetAll)
			todos.GET("/:id", todoController.GetOne)
			todos.POST("", todoController.Create)
			todos.PUT("/:id", todoController.Update)
			todos.DELETE("/:id", todoController.Remove)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorBody("unknown endpoint"))
	})

	log.Printf("App listening on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
