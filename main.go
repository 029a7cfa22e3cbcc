// File: fixify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixify/config"
	"fixify/database"
	bookingRepoPkg "fixify/database/repository/booking"
	catalogRepoPkg "fixify/database/repository/catalog"
	notificationRepoPkg "fixify/database/repository/notification"
	settlementRepoPkg "fixify/database/repository/settlement"
	userRepoPkg "fixify/database/repository/user"
	"fixify/handlers"
	"fixify/middleware"
	"fixify/routes"
	"fixify/services/booking"
	"fixify/services/catalog"
	"fixify/services/notification"
	"fixify/services/payment"
	"fixify/services/user"
	"fixify/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitLockClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	catalogRepo := catalogRepoPkg.NewMongoServiceRepo()
	settlementRepo := settlementRepoPkg.NewMongoSettlementRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Repo:  notificationRepo,
		Queue: notification.NewQueueClient(),
	}
	notification.InitNotificationWorker(notificationRepo)

	catalogService := &catalog.DefaultCatalogService{
		Repo: catalogRepo,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:            bookingRepo,
		CatalogRepo:     catalogRepo,
		SettlementRepo:  settlementRepo,
		UserRepo:        userRepo,
		NotificationSvc: notificationService,
		Verifier:        payment.HMACVerifier{Secret: config.AppConfig.GatewaySecret},
		Locker:          &booking.RedisSettlementLocker{Client: utils.GetLockClient()},
		CommissionRate:  config.AppConfig.CommissionRate,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:         handlers.NewAuthHandler(userService, logger),
		Booking:      handlers.NewBookingHandler(bookingService, logger),
		Payment:      handlers.NewPaymentHandler(bookingService, payment.StripeGateway{}, logger),
		Catalog:      handlers.NewCatalogHandler(catalogService),
		Notification: handlers.NewNotificationHandler(notificationService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
