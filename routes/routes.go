package routes

import (
	"fortumars-mart/controllers"
	"fortumars-mart/middleware"
	"fortumars-mart/services"
	"fortumars-mart/store"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, app *store.Controller, auth *services.AuthService, gemini *services.GeminiService) {
	stateCtrl := &controllers.StateController{App: app}
	catalogCtrl := &controllers.CatalogController{App: app}
	cartCtrl := &controllers.CartController{App: app}
	authCtrl := &controllers.AuthController{App: app, Auth: auth}
	assistantCtrl := &controllers.AssistantController{App: app, Gemini: gemini}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/state", stateCtrl.GetState)
	router.POST("/state/search", stateCtrl.Search)
	router.POST("/state/category", stateCtrl.SelectCategory)
	router.POST("/state/home", stateCtrl.Home)
	router.POST("/state/select/:id", stateCtrl.SelectProduct)
	router.POST("/state/dark-mode", stateCtrl.ToggleDarkMode)

	router.GET("/categories", catalogCtrl.GetCategories)
	router.GET("/products", catalogCtrl.GetProducts)
	router.GET("/products/:id", catalogCtrl.GetProductByID)

	router.POST("/cart/items", cartCtrl.AddItem)
	router.PATCH("/cart/items/:id", cartCtrl.AdjustItem)
	router.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
	router.POST("/cart/open", cartCtrl.Open)
	router.POST("/cart/close", cartCtrl.Close)
	router.POST("/checkout", cartCtrl.Checkout)

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/assistant/chat", assistantCtrl.Chat)

	authorized := router.Group("/")
	authorized.Use(middleware.AuthMiddleware())
	{
		authorized.POST("/auth/logout", authCtrl.Logout)
		authorized.GET("/auth/profile", authCtrl.GetProfile)
		authorized.PATCH("/auth/profile", authCtrl.UpdateProfile)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/products", catalogCtrl.CreateProduct)
		admin.POST("/assistant/image", assistantCtrl.GenerateImage)
	}
}
