package routes

import (
	"net/http"
	"time"

	"slotify/handlers"
	"slotify/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes registers availability template endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedules")
	{
		api.PUT("", hb.UpsertScheduleHandler)
		api.GET("/:type", hb.GetScheduleHandler)
		api.GET("/:type/days/:day", hb.GetDayHandler)
		api.PATCH("/:type/days/:day", hb.ToggleDayHandler)
		api.POST("/:type/days/:day/slots", hb.AddSlotHandler)
		api.DELETE("/:type/days/:day/slots/:index", hb.RemoveSlotHandler)
		api.DELETE("/id/:id", hb.DeleteScheduleHandler)
	}
}

// RegisterAvailabilityRoutes registers slot resolution endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/:type", hb.GetSlotsForDateHandler)
		api.GET("/:type/range", hb.GetSlotsForRangeHandler)
	}
}

// RegisterBookingRoutes registers booking ledger endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.GET("/user/:userId", hb.ListUserBookingsHandler)
		api.PATCH("/:id/status", hb.UpdateBookingStatusHandler)
		api.POST("/:id/cancel", hb.CancelBookingHandler)
		api.PATCH("/:id/payment-status", hb.UpdatePaymentStatusHandler)
	}
}

// RegisterRescheduleRoutes registers the reschedule workflow endpoints.
func RegisterRescheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reschedules")
	{
		api.POST("", hb.CreateRescheduleHandler)
		api.GET("/pending", hb.ListPendingReschedulesHandler)
		api.GET("/:id", hb.GetRescheduleHandler)
		api.POST("/:id/review", hb.ReviewRescheduleHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterScheduleRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterRescheduleRoutes(r, hb)
	RegisterHealthRoute(r)
}
