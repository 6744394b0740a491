package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"

	"hotel-booking/cache"
	"hotel-booking/config"
	"hotel-booking/controllers"
	"hotel-booking/metrics"
	"hotel-booking/middleware"
	"hotel-booking/repository"
	"hotel-booking/routes"
	"hotel-booking/services"
	"hotel-booking/utils"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	config.SetupLogging(cfg.Logging)
	if utils.EnvOrDefault("GIN_MODE", "") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	if cfg.App.SeedData {
		if err := config.SeedDatabase(db); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}
	store := repository.New(db)

	var catalogCache cache.Cache = cache.Noop{}
	if cfg.Redis.Address != "" {
		client := cache.NewRedisClient(cfg.Redis)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := cache.Ping(ctx, client); err != nil {
			log.WithError(err).Warn("redis unavailable, caching disabled")
		} else {
			catalogCache = cache.NewRedisCache(client, "hotel:")
			log.WithField("addr", cfg.Redis.Address).Info("redis cache enabled")
		}
		cancel()
		defer client.Close()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Initialize services
	pricing := services.NewPricingEngine(nil)
	mailer := utils.NewBookingMailer(cfg.SMTP)
	bookingService := services.NewBookingService(store, pricing, m, mailer)
	hotelService := services.NewHotelService(store, catalogCache)
	userService := services.NewUserService(store, 0)
	reviewService := services.NewReviewService(store)
	adminService := services.NewAdminService(store, hotelService)
	tokens := middleware.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	router := routes.SetupRouter(routes.Deps{
		Auth:        controllers.NewAuthController(userService, tokens),
		Hotels:      controllers.NewHotelController(hotelService, reviewService),
		Rooms:       controllers.NewRoomController(bookingService),
		Bookings:    controllers.NewBookingController(bookingService),
		Admin:       controllers.NewAdminController(adminService, bookingService),
		Tokens:      tokens,
		Store:       store,
		Metrics:     m,
		Gatherer:    reg,
		CorsOrigins: cfg.App.CorsOrigins,
	})

	addr := ":" + cfg.App.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Infof("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Info("server stopped gracefully")
}
