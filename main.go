package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-frontdesk/config"
	"hotel-frontdesk/controllers"
	"hotel-frontdesk/routes"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

func main() {
	cfg, envLoaded, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := config.NewLogger(cfg.LogLevel, cfg.GinMode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if !envLoaded {
		logger.Info(".env not found; continuing with environment variables")
	}

	gin.SetMode(cfg.GinMode)
	if err := utils.RegisterValidators(); err != nil {
		logger.Fatal("validator setup failed", zap.Error(err))
	}

	db, err := config.ConnectDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}

	// Initialize services
	authService := services.NewAuthService(db, logger, cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	guestService := services.NewGuestService(db, logger)
	roomService := services.NewRoomService(db, logger)
	reservationService := services.NewReservationService(db, logger)
	billingService := services.NewBillingService(db, logger)
	receiptService := services.NewReceiptService(db, logger)

	// Initialize controllers
	handlers := routes.Handlers{
		Auth:        controllers.NewAuthController(authService),
		Guests:      controllers.NewGuestController(guestService),
		Rooms:       controllers.NewRoomController(roomService),
		Reservation: controllers.NewReservationController(reservationService, roomService),
		Billing:     controllers.NewBillingController(billingService, services.NewRoomServiceLog(db)),
		Receipts:    controllers.NewReceiptController(receiptService, cfg.ReceiptTitle, cfg.CurrencySymbol),
		Dashboard:   controllers.NewDashboardController(services.NewDashboardService(db)),
	}

	router := routes.SetupRouter(handlers, authService, logger, cfg.CorsOriginList())

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("server stopped gracefully")
}
