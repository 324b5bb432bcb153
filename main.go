// File: slotify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotify/config"
	"slotify/cron"
	"slotify/database"
	bookingRepoPkg "slotify/database/repository/booking"
	rescheduleRepoPkg "slotify/database/repository/reschedule"
	scheduleRepoPkg "slotify/database/repository/schedule"
	"slotify/handlers"
	"slotify/middleware"
	"slotify/routes"
	"slotify/services/notification"
	"slotify/services/scheduling"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	rescheduleRepo := rescheduleRepoPkg.NewMongoRescheduleRepo()

	for _, ensure := range []func() error{
		scheduleRepo.EnsureIndexes,
		bookingRepo.EnsureIndexes,
		rescheduleRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
	}

	// notification pipeline.
	redisOpt := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
	publisher := notification.NewAsynqPublisher(redisOpt)
	defer publisher.Close()
	cron.InitNotificationWorker(notification.LogNotifier{})

	// services.
	scheduleService := &scheduling.DefaultScheduleService{
		Repo: scheduleRepo,
	}
	availabilityService := &scheduling.DefaultAvailabilityService{
		Schedules: scheduleRepo,
		Bookings:  bookingRepo,
	}
	bookingService := &scheduling.DefaultBookingService{
		Repo:         bookingRepo,
		Availability: availabilityService,
		Publisher:    publisher,
	}
	rescheduleService := &scheduling.DefaultRescheduleService{
		Requests:     rescheduleRepo,
		Bookings:     bookingRepo,
		Availability: availabilityService,
		Publisher:    publisher,
	}

	scheduleHandler := handlers.NewScheduleHandler(scheduleService, availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	rescheduleHandler := handlers.NewRescheduleHandler(rescheduleService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Schedule template endpoints.
		UpsertScheduleHandler: scheduleHandler.UpsertScheduleHandler,
		GetScheduleHandler:    scheduleHandler.GetScheduleHandler,
		GetDayHandler:         scheduleHandler.GetDayHandler,
		ToggleDayHandler:      scheduleHandler.ToggleDayHandler,
		AddSlotHandler:        scheduleHandler.AddSlotHandler,
		RemoveSlotHandler:     scheduleHandler.RemoveSlotHandler,
		DeleteScheduleHandler: scheduleHandler.DeleteScheduleHandler,

		// Availability endpoints.
		GetSlotsForDateHandler:  scheduleHandler.GetSlotsForDateHandler,
		GetSlotsForRangeHandler: scheduleHandler.GetSlotsForRangeHandler,

		// Booking endpoints.
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		GetBookingHandler:          bookingHandler.GetBookingHandler,
		ListBookingsHandler:        bookingHandler.ListBookingsHandler,
		ListUserBookingsHandler:    bookingHandler.ListUserBookingsHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,
		CancelBookingHandler:       bookingHandler.CancelBookingHandler,
		UpdatePaymentStatusHandler: bookingHandler.UpdatePaymentStatusHandler,

		// Reschedule endpoints.
		CreateRescheduleHandler:       rescheduleHandler.CreateRequestHandler,
		ReviewRescheduleHandler:       rescheduleHandler.ReviewRequestHandler,
		GetRescheduleHandler:          rescheduleHandler.GetRequestHandler,
		ListPendingReschedulesHandler: rescheduleHandler.ListPendingHandler,
	}

	// Register routes with the assembled handler bundle.
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
