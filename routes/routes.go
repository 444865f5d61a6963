package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"kgs-gunshop/controllers"
	"kgs-gunshop/middleware"
	"kgs-gunshop/models"
	"kgs-gunshop/repositories"
	"kgs-gunshop/services"
)

func SetupRoutes(router *gin.Engine) {
	var cartRepo repositories.CartRepository
	if models.RedisClient != nil {
		cartRepo = repositories.NewRedisCartRepository(models.RedisClient)
	} else {
		cartRepo = repositories.NewMemoryCartRepository()
	}

	emailService, err := models.NewEmailService()
	if err != nil {
		log.Println("Email notifications disabled:", err)
		emailService = nil
	}

	cartService := services.NewCartService(cartRepo, services.NewCartHub(models.RedisClient))

	productCtrl := controllers.NewProductController(
		services.NewProductService(repositories.NewProductRepository()))
	cartCtrl := controllers.NewCartController(cartService)
	orderCtrl := controllers.NewOrderController(
		services.NewOrderService(repositories.NewOrderRepository(), emailService), cartService)
	appointmentCtrl := controllers.NewAppointmentController(
		repositories.NewAppointmentRepository(), emailService)
	contactCtrl := controllers.NewContactController(repositories.NewContactRepository())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	api.Use(middleware.CartSession())
	{
		api.GET("/products", productCtrl.GetAllProducts)
		api.GET("/products/:id", productCtrl.GetProductByID)
		api.GET("/products/category/:category", productCtrl.GetProductsByCategory)
		api.GET("/categories", productCtrl.GetAllCategories)

		api.GET("/cart", cartCtrl.GetCart)
		api.DELETE("/cart", cartCtrl.ClearCart)
		api.POST("/cart/items", cartCtrl.AddItem)
		api.PATCH("/cart/items/:id", cartCtrl.UpdateItem)
		api.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		api.POST("/cart/open", cartCtrl.OpenCart)
		api.POST("/cart/close", cartCtrl.CloseCart)
		api.POST("/cart/toggle", cartCtrl.ToggleCart)
		api.GET("/cart/ws", cartCtrl.CartWebSocket)

		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders/:number", orderCtrl.GetOrderByNumber)

		api.POST("/appointments", appointmentCtrl.CreateAppointment)
		api.POST("/contact", contactCtrl.CreateContactMessage)
	}
}
