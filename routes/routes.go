package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/pkg/events"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *zap.Logger) {
	r.GET("/api/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "healthy"}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	bus := events.NewBus()
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(restRepo, menuRepo)
	cartSvc := services.NewCartService(cartRepo, bus, log)
	orderSvc := services.NewOrderService(db, orderRepo, restRepo, menuRepo)
	checkoutSvc := services.NewCheckoutService(cartSvc, orderSvc, log)
	chatSvc := services.NewChatService()
	bookingSvc := services.NewBookingService(bookingRepo, restRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(catalogSvc)
	menuCtrl := controllers.NewMenuController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc, catalogSvc, checkoutSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	chatCtrl := controllers.NewChatController(chatSvc)
	bookingCtrl := controllers.NewBookingController(bookingSvc)
	uploadCtrl := controllers.NewUploadController(cfg.UploadDir)

	// Cart-change push
	hub := ws.NewCartHub(bus, log)
	r.GET("/ws/cart", hub.HandleWebSocket)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	admin := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")

	api := r.Group("/api")
	{
		// Auth
		a := api.Group("/auth")
		{
			a.POST("/signup", authCtrl.Signup)
			a.POST("/login", authCtrl.Login)
			a.POST("/google-signin", authCtrl.GoogleSignin)
			a.GET("/me", auth, authCtrl.Me)
		}

		// Catalog (public reads, admin writes)
		api.GET("/restaurants", restCtrl.List)
		api.POST("/restaurants", admin, restCtrl.Create)
		api.PUT("/restaurants/:restaurantId", admin, restCtrl.Update)
		api.DELETE("/restaurants/:restaurantId", admin, restCtrl.Delete)
		api.POST("/restaurants/upload-image", admin, uploadCtrl.RestaurantImage)

		api.GET("/menu/:restaurantId", menuCtrl.GetMenu)
		api.POST("/menu/:restaurantId", admin, menuCtrl.AddItem)
		api.PUT("/menu/:restaurantId/:itemId", admin, menuCtrl.UpdateItem)
		api.DELETE("/menu/:restaurantId/:itemId", admin, menuCtrl.DeleteItem)
		api.POST("/menu/upload-image", admin, uploadCtrl.MenuImage)

		// Chat bot
		api.POST("/chat", chatCtrl.Chat)

		// Cart + checkout
		cart := api.Group("/cart", auth)
		{
			cart.GET("", cartCtrl.Get)
			cart.POST("/items", cartCtrl.AddItem)
			cart.PATCH("/items/:itemId", cartCtrl.SetQuantity)
			cart.DELETE("/items/:itemId", cartCtrl.RemoveItem)
			cart.DELETE("", cartCtrl.Clear)
			cart.POST("/checkout", cartCtrl.PlaceOrders)
		}

		// Orders
		api.POST("/orders", auth, orderCtrl.Create)
		api.GET("/orders", admin, orderCtrl.List)
		api.GET("/orders/:id", auth, orderCtrl.Detail)
		api.PATCH("/orders/:id/status", admin, orderCtrl.UpdateStatus)
		api.GET("/profile/orders", auth, orderCtrl.ListForMe)

		// Slot booking
		api.GET("/cafes/:cafeId/slots", bookingCtrl.Slots)
		api.GET("/cafes/:cafeId/tables", bookingCtrl.Tables)
		api.POST("/bookings", auth, bookingCtrl.Book)
		api.GET("/bookings", auth, bookingCtrl.ListForMe)
	}
}
