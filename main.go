package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"

	"tripnest/config"
	"tripnest/cron"
	"tripnest/database"
	bookingRepo "tripnest/database/repository/booking"
	listingRepo "tripnest/database/repository/listing"
	settlementRepo "tripnest/database/repository/settlement"
	"tripnest/handlers"
	"tripnest/middleware"
	"tripnest/routes"
	"tripnest/services/booking"
	"tripnest/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(routes.CORSMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	listings := listingRepo.NewCachedListingRepo(listingRepo.NewMongoListingRepo(), utils.GetCacheClient())
	bookings := bookingRepo.NewMongoBookingRepo()
	settlements := settlementRepo.NewMongoSettlementRepo()

	for name, ensure := range map[string]func() error{
		"listings":    listings.EnsureIndexes,
		"bookings":    bookings.EnsureIndexes,
		"settlements": settlements.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// Settlement worker and scheduler.
	enqueuer := cron.NewSettlementEnqueuer()
	defer enqueuer.Close()
	cron.InitSettlementWorker(settlements)

	// Services.
	bookingService := &booking.DefaultBookingService{
		ListingRepo:    listings,
		BookingRepo:    bookings,
		SettlementRepo: settlements,
		Enqueuer:       enqueuer,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService)
	routes.RegisterBookingRoutes(router, bookingHandler)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: failed to disconnect mongo", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
