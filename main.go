// File: poojaconnect/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"poojaconnect/config"
	"poojaconnect/cron"
	"poojaconnect/database"
	adminRepo "poojaconnect/database/repository/admin"
	bookingRepo "poojaconnect/database/repository/booking"
	poojaRepo "poojaconnect/database/repository/pooja"
	priestRepo "poojaconnect/database/repository/priest"
	slotRepo "poojaconnect/database/repository/slot"
	zoneRepo "poojaconnect/database/repository/zone"
	"poojaconnect/handlers"
	"poojaconnect/middleware"
	"poojaconnect/routes"
	"poojaconnect/seed"
	"poojaconnect/services/booking"
	"poojaconnect/services/catalog"
	"poojaconnect/services/priest"
	"poojaconnect/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	if err := poojaRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure pooja indexes: %v", err)
	}
	if err := slotRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure slot indexes: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	zones := zoneRepo.NewMongoZoneRepo()
	poojas := poojaRepo.NewMongoPoojaRepo()
	priests := priestRepo.NewMongoPriestRepo()
	slots := slotRepo.NewMongoSlotRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	admins := adminRepo.NewMongoAdminRepo()

	if config.AppConfig.SeedOnStart {
		seeder := &seed.Seeder{
			Zones:   zones,
			Poojas:  poojas,
			Priests: priests,
			Slots:   slots,
			Admins:  admins,
		}
		if err := seeder.Run(context.Background()); err != nil {
			logger.Sugar().Fatalf("main: seeding failed: %v", err)
		}
	}

	// Services.
	catalogService := &catalog.DefaultCatalogService{
		Poojas:   poojas,
		Zones:    zones,
		Cache:    utils.GetCacheClient(),
		CacheTTL: time.Duration(config.AppConfig.CatalogCacheTTLMin) * time.Minute,
	}
	bookingService := &booking.DefaultBookingService{
		Poojas:   poojas,
		Zones:    zones,
		Priests:  priests,
		Slots:    slots,
		Bookings: bookings,
	}
	priestService := &priest.DefaultPriestService{
		Repo:  priests,
		Zones: zones,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Catalog: handlers.NewCatalogHandler(catalogService, logger),
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Admin:   handlers.NewAdminHandler(bookingService, priestService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	slotWorker := &cron.SlotTopUpWorker{Priests: priests, Slots: slots}
	slotWorker.Start()
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

	slotWorker.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
