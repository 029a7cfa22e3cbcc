package routes

import (
	"net/http"
	"time"

	"fixify/handlers"
	"fixify/middleware"
	"fixify/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.SignIn)
	}
}

// RegisterCatalogRoutes registers service-listing endpoints. Browsing is
// public; authoring requires a provider token.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Catalog.BrowseServices)

		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		protected.GET("/mine", middleware.RequireRole(models.RoleProvider), hb.Catalog.MyServices)
		protected.POST("", middleware.RequireRole(models.RoleProvider), hb.Catalog.CreateService)
		protected.PUT("/:id", middleware.RequireRole(models.RoleProvider, models.RoleAdmin), hb.Catalog.UpdateService)
		protected.DELETE("/:id", middleware.RequireRole(models.RoleProvider, models.RoleAdmin), hb.Catalog.DeactivateService)
	}
}

// RegisterBookingRoutes registers the booking lifecycle and settlement
// endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.AuthRequired())
		api.POST("", middleware.RequireRole(models.RoleCustomer), hb.Booking.CreateBooking)
		api.GET("", hb.Booking.ListBookings)
		api.GET("/:id", hb.Booking.GetBooking)
		api.PATCH("/:id", hb.Booking.UpdateBooking)
		api.POST("/:id/complete", middleware.RequireRole(models.RoleProvider), hb.Booking.CompleteBooking)
		api.POST("/:id/payment-order", hb.Payment.CreatePaymentOrder)
		api.GET("/:id/invoice", hb.Booking.GetInvoice)
	}
}

// RegisterNotificationRoutes registers the notification polling endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.AuthRequired())
		api.GET("", hb.Notification.ListNotifications)
		api.PUT("/:id/read", hb.Notification.MarkNotificationRead)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AuthRequired())
		api.Use(middleware.RequireRole(models.RoleAdmin))
		api.GET("/earnings", hb.Booking.EarningsReport)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Fixify"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
