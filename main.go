package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Swapnil-DevGeek/note-taker/handler"
	"github.com/Swapnil-DevGeek/note-taker/middleware"
	"github.com/Swapnil-DevGeek/note-taker/repository"
	"github.com/Swapnil-DevGeek/note-taker/usecase"
	"github.com/Swapnil-DevGeek/note-taker/utils"
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
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitLogger()
	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()
}

func setupRouter() *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.AccessLogMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	userRepo := repository.GetUserRepo(utils.MongoClient)
	notesRepo := repository.GetNotesRepo(utils.MongoClient)

	userService := &usecase.UserService{UsersRepo: userRepo}
	notesService := &usecase.NotesService{NotesRepo: notesRepo}

	api := router.Group("/api")
	{
		api.POST("/register", func(c *gin.Context) {
			handler.RegistrationHandler(c, userService)
		})
		api.POST("/login", func(c *gin.Context) {
			handler.LoginHandler(c, userService)
		})
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/user", func(c *gin.Context) {
			handler.GetUserHandler(c, userService)
		})

		notes := protected.Group("/notes")
		{
			notes.GET("", func(c *gin.Context) {
				handler.ListNotesHandler(c, userService, notesService)
			})
			notes.POST("", func(c *gin.Context) {
				handler.CreateNoteHandler(c, userService, notesService)
			})
			notes.GET("/:id", func(c *gin.Context) {
				handler.GetNoteHandler(c, userService, notesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, userService, notesService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, userService, notesService)
			})
			notes.GET("/:id/export", func(c *gin.Context) {
				handler.ExportNoteHandler(c, userService, notesService)
			})
		}
	}

	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

func main() {
	router := setupRouter()

	if utils.GetEnvAsBool("SYSTEM_METRICS_ENABLED", true) {
		utils.StartSystemMetricsCollector(utils.GetEnvAsDuration("SYSTEM_METRICS_INTERVAL", 15*time.Second))
	}

	port := utils.GetEnvAsString("PORT", "8000")

	serverAddr := fmt.Sprintf(":%s", port)
	utils.Logger.Info("server starting", zap.String("addr", serverAddr))
	if err := router.Run(serverAddr); err != nil {
		utils.Logger.Fatal("failed to start server", zap.Error(err))
	}
}
