// File: handlers/booking.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"slotify/models"
	"slotify/services/scheduling"
	"slotify/utils"
)

// BookingHandler exposes the booking ledger endpoints.
type BookingHandler struct {
	Bookings scheduling.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(bookings scheduling.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: bookings}
}

type createBookingRequest struct {
	Type          models.ServiceType `json:"type"`
	Date          string             `json:"date"`
	Slots         []models.SlotRange `json:"slots"`
	UserID        string             `json:"userId"`
	Status        string             `json:"status"`
	PaymentStatus string             `json:"paymentStatus"`
}

// CreateBookingHandler reserves one or more slots on a date.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req createBookingRequest
	if !bindStrictJSON(c, &req) {
		return
	}
	booking, err := h.Bookings.CreateBooking(c.Request.Context(), scheduling.CreateBookingInput{
		Type:          req.Type,
		Date:          req.Date,
		Slots:         req.Slots,
		UserID:        req.UserID,
		Status:        models.BookingStatus(req.Status),
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GetBookingHandler fetches a booking by id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	booking, err := h.Bookings.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ListBookingsHandler lists occupancy-relevant bookings for a type and range.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Bookings.FindBookingsByDateRange(c.Request.Context(),
		models.ServiceType(c.Query("type")), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListUserBookingsHandler lists a user's booking history.
func (h *BookingHandler) ListUserBookingsHandler(c *gin.Context) {
	bookings, err := h.Bookings.ListUserBookings(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateBookingStatusHandler drives the booking status state machine.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var req updateStatusRequest
	if !bindStrictJSON(c, &req) {
		return
	}
	status, ok := models.ParseBookingStatus(req.Status)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "validation failed", "unknown booking status "+req.Status)
		return
	}
	booking, err := h.Bookings.UpdateBookingStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

type cancelBookingRequest struct {
	Reason string `json:"reason"`
}

// CancelBookingHandler cancels a booking, freeing its slots immediately.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	var req cancelBookingRequest
	if c.Request.ContentLength > 0 && !bindStrictJSON(c, &req) {
		return
	}
	booking, err := h.Bookings.CancelBooking(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

type paymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

// UpdatePaymentStatusHandler is the payment collaborator's inbound surface.
// It only sets the payment status and never touches scheduling state.
func (h *BookingHandler) UpdatePaymentStatusHandler(c *gin.Context) {
	var req paymentStatusRequest
	if !bindStrictJSON(c, &req) {
		return
	}
	booking, err := h.Bookings.SetPaymentStatus(c.Request.Context(), c.Param("id"), req.PaymentStatus)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}
