// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every endpoint handler for route registration.
type HandlerBundle struct {
	// Schedule template endpoints.
	UpsertScheduleHandler gin.HandlerFunc
	GetScheduleHandler    gin.HandlerFunc
	GetDayHandler         gin.HandlerFunc
	ToggleDayHandler      gin.HandlerFunc
	AddSlotHandler        gin.HandlerFunc
	RemoveSlotHandler     gin.HandlerFunc
	DeleteScheduleHandler gin.HandlerFunc

	// Availability endpoints.
	GetSlotsForDateHandler  gin.HandlerFunc
	GetSlotsForRangeHandler gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler       gin.HandlerFunc
	GetBookingHandler          gin.HandlerFunc
	ListBookingsHandler        gin.HandlerFunc
	ListUserBookingsHandler    gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	CancelBookingHandler       gin.HandlerFunc
	UpdatePaymentStatusHandler gin.HandlerFunc

	// Reschedule endpoints.
	CreateRescheduleHandler       gin.HandlerFunc
	ReviewRescheduleHandler       gin.HandlerFunc
	GetRescheduleHandler          gin.HandlerFunc
	ListPendingReschedulesHandler gin.HandlerFunc
}
