package main

import (
	"fmt"
	"log"
	"os"

	"main/handler"
	"main/middleware"
	"main/model"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()

	// Redis is optional; without it logout falls back to token expiry.
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		blacklist, err := services.NewTokenBlacklist(redisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		services.TokenBlacklist = blacklist
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	// Repositories
	usersRepo := repository.GetUsersRepo(utils.MongoClient)
	notesRepo := repository.GetNotesRepo(utils.MongoClient)
	tagsRepo := repository.GetTagsRepo(utils.MongoClient)
	sessionsRepo := repository.GetSessionsRepo(utils.MongoClient)

	// Services
	usersService := &usecase.UsersService{UsersRepo: usersRepo}
	tagsService := &usecase.TagsService{TagsRepo: tagsRepo}
	notesService := &usecase.NotesService{
		NotesRepo: notesRepo,
		TagsRepo:  tagsRepo,
		UsersRepo: usersRepo,
	}

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		public.GET("/health", handler.HealthHandler)

		auth := public.Group("/auth")
		{
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, usersService, sessionsRepo)
			})
			auth.POST("/refresh", handler.RefreshHandler)
		}

		users := public.Group("/users")
		{
			users.POST("", func(c *gin.Context) {
				handler.RegisterUserHandler(c, usersService)
			})
			users.GET("", func(c *gin.Context) {
				handler.ListUsersHandler(c, usersService)
			})
			users.GET("/:id", func(c *gin.Context) {
				handler.GetUserHandler(c, usersService)
			})
			users.GET("/:id/notes", func(c *gin.Context) {
				handler.UserNotesHandler(c, notesService)
			})
		}

		notes := public.Group("/notes")
		{
			notes.GET("/filter", func(c *gin.Context) {
				handler.FilterNotesHandler(c, notesService)
			})
			notes.PUT("/:id/tags", func(c *gin.Context) {
				handler.AssignTagsHandler(c, notesService)
			})
		}

		tags := public.Group("/tags")
		{
			tags.GET("", func(c *gin.Context) {
				handler.ListTagsHandler(c, tagsService)
			})
			tags.GET("/:id", func(c *gin.Context) {
				handler.GetTagHandler(c, tagsService)
			})
		}
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		auth := protected.Group("/auth")
		{
			auth.POST("/logout", func(c *gin.Context) {
				handler.LogoutHandler(c, sessionsRepo)
			})
			twoFactor := auth.Group("/2fa")
			{
				twoFactor.POST("/enable", func(c *gin.Context) {
					handler.Enable2FAHandler(c, usersService)
				})
				twoFactor.POST("/verify", func(c *gin.Context) {
					handler.Verify2FAHandler(c, usersService)
				})
				twoFactor.POST("/disable", func(c *gin.Context) {
					handler.Disable2FAHandler(c, usersService)
				})
			}
		}

		notes := protected.Group("/notes")
		{
			notes.GET("", func(c *gin.Context) {
				handler.ListNotesHandler(c, notesService)
			})
			notes.POST("", func(c *gin.Context) {
				handler.CreateNoteHandler(c, notesService)
			})
			notes.GET("/:id", func(c *gin.Context) {
				handler.GetNoteHandler(c, notesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, notesService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, notesService)
			})
			notes.PUT("/:id/restore", func(c *gin.Context) {
				handler.RestoreNoteHandler(c, notesService)
			})
		}

		users := protected.Group("/users")
		{
			users.PUT("/:id", middleware.RequireRole(usersRepo, model.RoleAdmin), func(c *gin.Context) {
				handler.UpdateUserHandler(c, usersService)
			})
			users.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteUserHandler(c, usersService)
			})
		}

		tags := protected.Group("/tags")
		{
			tags.POST("", func(c *gin.Context) {
				handler.CreateTagHandler(c, tagsService)
			})
		}
	}

	return router
}

func main() {
	router := setupRouter()

	db := utils.MongoClient.Database(os.Getenv("MONGO_DB"))
	if err := repository.SetupIndexes(db); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
