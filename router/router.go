package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Triarom-Engineering/pcrt-rest-api/config"
	"github.com/Triarom-Engineering/pcrt-rest-api/controllers"
	"github.com/Triarom-Engineering/pcrt-rest-api/middlewares"
)

// SetupRouter binds the API surface. Every endpoint is a read;
// writes stay in PCRT itself.
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// 50 requests per second per IP across the whole surface.
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	customerCtrl := controllers.NewCustomerController(db, cfg.PCRT.CompleteStatusID)
	workOrderCtrl := controllers.NewWorkOrderController(db, cfg.PCRT.CompleteStatusID)
	workOrdersCtrl := controllers.NewWorkOrdersController(db, cfg.PCRT.CompleteStatusID)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	v1 := r.Group("/api/v1")

	customer := v1.Group("/customer")
	{
		customer.GET("/:id", customerCtrl.GetCustomerByID)
		customer.GET("/:id/work_orders", customerCtrl.GetWorkOrdersForCustomer)
		customer.GET("/:id/assets", customerCtrl.GetAssetsForCustomer)
		customer.GET("/:id/asset/:asset_id", customerCtrl.GetCustomerAssetByID)
	}

	workOrder := v1.Group("/work_order")
	{
		workOrder.GET("/:id", workOrderCtrl.GetWorkOrder)
		workOrder.GET("/:id/repair_cart", workOrderCtrl.GetRepairCart)
	}

	workOrders := v1.Group("/work_orders")
	{
		workOrders.GET("/open", workOrdersCtrl.GetOpenWorkOrders)
		workOrders.GET("/statuses", workOrdersCtrl.GetStatuses)
	}

	return r
}
