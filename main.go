package main

import (
	"context"
	"log"
	"os"

	"fortumars-mart/config"
	_ "fortumars-mart/docs"
	"fortumars-mart/middleware"
	"fortumars-mart/models"
	"fortumars-mart/routes"
	"fortumars-mart/services"
	"fortumars-mart/store"

	"github.com/gin-gonic/gin"
)

func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	catalog := services.NewCatalogService()
	session := services.NewSessionService()
	device := services.NewDeviceService()
	auth := services.NewAuthService()
	gemini := services.NewGeminiService(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiBaseURL)

	var notifier store.Notifier
	if email, err := models.NewEmailService(); err != nil {
		log.Printf("Email disabled: %v", err)
	} else {
		notifier = email
	}

	app := store.NewController(catalog, session, device, notifier, config.AppConfig.SystemDarkMode)
	app.Init(context.Background())
	log.Printf("Catalog resolved from %s source (%d products)", app.Snapshot().CatalogSource, len(app.Catalog()))

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, app, auth, gemini)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
