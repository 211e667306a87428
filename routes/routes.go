package routes

import (
	"vipshop-backend/configs"
	"vipshop-backend/controllers"
	"vipshop-backend/middlewares"
	"vipshop-backend/repository"
	"vipshop-backend/services"
	"vipshop-backend/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	cfg := configs.LoadConfig()
	db := configs.DB()

	// Repositories shared across services
	orderRepo := repository.NewOrderRepository(db)
	chatRepo := repository.NewChatRepository(db)
	configRepo := repository.NewConfigRepository(db)

	// Services
	uploads := services.NewUploadService(cfg.UploadDir, cfg.PublicURL)
	notifier := services.NewNotifyService(configRepo)
	orderService := services.NewOrderService(orderRepo, configRepo, notifier, uploads)
	chatService := services.NewChatService(chatRepo, orderRepo)

	// Live order feed (additive to the polling endpoints)
	hub := ws.NewOrderHub(orderService)
	orderService.Events = hub
	chatService.Events = hub
	go hub.Run()

	// Controllers
	authCtrl := controllers.NewAuthController(db)
	orderCtrl := controllers.NewOrderController(orderService)
	chatCtrl := controllers.NewChatController(chatService)
	shopCtrl := controllers.NewShopController(db)
	contentCtrl := controllers.NewContentController(db)
	configCtrl := controllers.NewConfigController(db)
	adminCtrl := controllers.NewAdminController(db, orderService)
	catalogCtrl := controllers.NewAdminCatalogController(db, uploads)

	// Uploaded proof/banner images are served publicly
	r.Static("/uploads", cfg.UploadDir)

	// Auth
	r.POST("/auth/login", authCtrl.Login)

	// Public site
	r.GET("/config", configCtrl.Get)
	r.GET("/shop/items", shopCtrl.List)
	r.GET("/shop/items/:id", shopCtrl.Detail)
	r.GET("/rules", contentCtrl.Rules)
	r.GET("/news", contentCtrl.News)
	r.GET("/news/:id", contentCtrl.NewsDetail)

	// Orders: the id is the capability, no login required
	r.POST("/orders", orderCtrl.Create)
	r.GET("/orders", orderCtrl.Lookup)
	r.GET("/orders/:id", orderCtrl.Detail)
	r.GET("/orders/:id/messages", chatCtrl.ListMessages)
	r.POST("/orders/:id/messages", chatCtrl.SendMessage)

	// Live feed
	r.GET("/ws/orders/:id", hub.HandleWebSocket)

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware("admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/payments", adminCtrl.Payments)
		admin.PATCH("/payments/:id", adminCtrl.Transition)
		admin.POST("/payments/:id/messages", chatCtrl.AdminSendMessage)

		admin.GET("/config", adminCtrl.GetConfig)
		admin.PUT("/config", adminCtrl.SaveConfig)

		admin.POST("/shop/items", catalogCtrl.CreateItem)
		admin.PUT("/shop/items/:id", catalogCtrl.UpdateItem)
		admin.DELETE("/shop/items/:id", catalogCtrl.DeleteItem)

		admin.POST("/rules", catalogCtrl.CreateRule)
		admin.PUT("/rules/:id", catalogCtrl.UpdateRule)
		admin.DELETE("/rules/:id", catalogCtrl.DeleteRule)

		admin.POST("/news", catalogCtrl.CreateNews)
		admin.PUT("/news/:id", catalogCtrl.UpdateNews)
		admin.DELETE("/news/:id", catalogCtrl.DeleteNews)

		admin.POST("/uploads", catalogCtrl.Upload)
	}
}
