// File: trimly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trimly/config"
	"trimly/database"
	profileRepo "trimly/database/repository/profile"
	scheduleRepo "trimly/database/repository/schedule"
	"trimly/handlers"
	"trimly/middleware"
	"trimly/routes"
	"trimly/services/assistant"
	"trimly/services/booking"
	"trimly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	schedRepo := scheduleRepo.NewMongoScheduleRepo()
	profRepo := profileRepo.NewMongoProfileRepo()

	// The live-slot unique index is the double-booking guard; refuse to serve
	// without it.
	if err := schedRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure schedule indexes: %v", err)
	}
	if err := profRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure profile indexes: %v", err)
	}

	// services.
	bookingService := booking.NewDefaultBookingService(schedRepo)
	briefings := assistant.NewBriefingCache(utils.GetCacheClient(), 2*time.Minute)
	assistantService := assistant.NewDefaultAssistantService(profRepo, schedRepo, bookingService, assistant.NewGeminiGenerator(), briefings)
	assistantService.Timeout = time.Duration(config.AppConfig.AssistantTimeoutSecs) * time.Second
	assistantService.FallbackAPIKey = config.AppConfig.GeminiAPIKey

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Chat:         handlers.NewChatHandler(assistantService),
		Appointments: handlers.NewAppointmentHandler(bookingService, briefings),
		Services:     handlers.NewServiceHandler(bookingService, briefings),
		Clients:      handlers.NewClientHandler(bookingService),
		Profile:      handlers.NewProfileHandler(profRepo, briefings),
		Reports:      handlers.NewReportHandler(bookingService),
	}

	routes.RegisterRoutes(router, handlerBundle)
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

	logger.Sugar().Info("main: server stopped gracefully")
}
