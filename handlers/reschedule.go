// File: handlers/reschedule.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"slotify/models"
	"slotify/services/scheduling"
)

// RescheduleHandler exposes the reschedule workflow endpoints.
type RescheduleHandler struct {
	Reschedules scheduling.RescheduleService
}

// NewRescheduleHandler constructs a RescheduleHandler.
func NewRescheduleHandler(reschedules scheduling.RescheduleService) *RescheduleHandler {
	return &RescheduleHandler{Reschedules: reschedules}
}

type createRescheduleRequest struct {
	BookingID      string             `json:"bookingId"`
	RequestedDate  string             `json:"requestedDate"`
	RequestedSlots []models.SlotRange `json:"requestedSlots"`
	RequestedBy    string             `json:"requestedBy"`
}

// CreateRequestHandler opens a reschedule request against a booking.
func (h *RescheduleHandler) CreateRequestHandler(c *gin.Context) {
	var req createRescheduleRequest
	if !bindStrictJSON(c, &req) {
		return
	}
	request, err := h.Reschedules.CreateRequest(c.Request.Context(),
		req.BookingID, req.RequestedDate, req.RequestedSlots, req.RequestedBy)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

type reviewRescheduleRequest struct {
	Decision   string `json:"decision"`
	ReviewedBy string `json:"reviewedBy"`
	AdminNotes string `json:"adminNotes"`
}

// ReviewRequestHandler resolves a pending request to approved or rejected.
func (h *RescheduleHandler) ReviewRequestHandler(c *gin.Context) {
	var req reviewRescheduleRequest
	if !bindStrictJSON(c, &req) {
		return
	}
	request, err := h.Reschedules.ReviewRequest(c.Request.Context(),
		c.Param("id"), req.Decision, req.ReviewedBy, req.AdminNotes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// GetRequestHandler fetches a reschedule request by id.
func (h *RescheduleHandler) GetRequestHandler(c *gin.Context) {
	request, err := h.Reschedules.GetRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// ListPendingHandler lists the open review queue.
func (h *RescheduleHandler) ListPendingHandler(c *gin.Context) {
	requests, err := h.Reschedules.ListPendingRequests(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}
