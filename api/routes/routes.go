package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mini-crm/crm-backend/internal/config"
	"github.com/mini-crm/crm-backend/internal/handlers"
	"github.com/mini-crm/crm-backend/internal/middleware"
)

// HandlerDependencies carries the handlers wired up in main
type HandlerDependencies struct {
	AuthHandler      *handlers.AuthHandler
	CampaignHandler  *handlers.CampaignHandler
	CustomerHandler  *handlers.CustomerHandler
	OrderHandler     *handlers.OrderHandler
	SegmentHandler   *handlers.SegmentHandler
	AIHandler        *handlers.AIHandler
	AnalyticsHandler *handlers.AnalyticsHandler
	DeliveryHandler  *handlers.DeliveryHandler
}

// SetupRouter sets up the router. Read endpoints, the AI helpers, analytics
// and the vendor callback surface are public; mutating routes require a JWT.
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
		}

		public.GET("/campaigns", deps.CampaignHandler.GetCampaigns)
		public.GET("/campaigns/:id", deps.CampaignHandler.GetCampaignByID)

		public.GET("/customers", deps.CustomerHandler.GetCustomers)
		public.GET("/customers/:id", deps.CustomerHandler.GetCustomerByID)

		public.GET("/orders", deps.OrderHandler.GetOrders)
		public.GET("/orders/:id", deps.OrderHandler.GetOrderByID)

		public.GET("/segments", deps.SegmentHandler.GetSegments)
		public.GET("/segments/:id", deps.SegmentHandler.GetSegmentByID)
		public.POST("/segments/preview", deps.SegmentHandler.PreviewAudience)

		ai := public.Group("/ai")
		{
			ai.POST("/natural-language", deps.AIHandler.ParseNaturalLanguage)
			ai.POST("/generate-message", deps.AIHandler.GenerateMessage)
		}

		public.GET("/analytics/dashboard", deps.AnalyticsHandler.GetDashboardStats)

		// Vendor-facing surface: receipts arrive from outside, unauthenticated
		public.POST("/delivery-receipts", deps.DeliveryHandler.ProcessReceipt)
		public.GET("/delivery-receipts", deps.DeliveryHandler.GetDeliveryLogs)
		public.POST("/vendor/send-message", deps.DeliveryHandler.VendorSendMessage)
	}

	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		protected.POST("/campaigns", deps.CampaignHandler.CreateCampaign)
		protected.PUT("/campaigns/:id", deps.CampaignHandler.UpdateCampaign)
		protected.DELETE("/campaigns/:id", deps.CampaignHandler.DeleteCampaign)

		protected.POST("/customers", deps.CustomerHandler.CreateCustomer)
		protected.PUT("/customers/:id", deps.CustomerHandler.UpdateCustomer)
		protected.DELETE("/customers/:id", deps.CustomerHandler.DeleteCustomer)

		protected.POST("/orders", deps.OrderHandler.CreateOrder)
		protected.PUT("/orders/:id", deps.OrderHandler.UpdateOrder)
		protected.DELETE("/orders/:id", deps.OrderHandler.DeleteOrder)

		protected.POST("/segments", deps.SegmentHandler.CreateSegment)
		protected.PUT("/segments/:id", deps.SegmentHandler.UpdateSegment)
		protected.DELETE("/segments/:id", deps.SegmentHandler.DeleteSegment)
	}

	return router
}
