// File: handlers/schedule.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"slotify/models"
	"slotify/services/scheduling"
	"slotify/utils"
)

// ScheduleHandler exposes the availability template and slot resolution
// endpoints.
type ScheduleHandler struct {
	Schedules    scheduling.ScheduleService
	Availability scheduling.AvailabilityService
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(schedules scheduling.ScheduleService, availability scheduling.AvailabilityService) *ScheduleHandler {
	return &ScheduleHandler{Schedules: schedules, Availability: availability}
}

type upsertScheduleRequest struct {
	Type           models.ServiceType       `json:"type"`
	WeeklySchedule []models.DayAvailability `json:"weeklySchedule"`
	IsActive       *bool                    `json:"isActive"`
}

// UpsertScheduleHandler creates or full-replaces a weekly schedule.
func (h *ScheduleHandler) UpsertScheduleHandler(c *gin.Context) {
	var req upsertScheduleRequest
	if !bindStrictJSON(c, &req) {
		return
	}
	schedule, err := h.Schedules.UpsertSchedule(c.Request.Context(), req.Type, req.WeeklySchedule, req.IsActive)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// GetScheduleHandler returns the schedule for a service type.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	schedule, err := h.Schedules.GetScheduleByType(c.Request.Context(), models.ServiceType(c.Param("type")))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// GetDayHandler returns the single day template for a type.
func (h *ScheduleHandler) GetDayHandler(c *gin.Context) {
	day, ok := models.ParseWeekday(c.Param("day"))
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "validation failed", "unknown day "+c.Param("day"))
		return
	}
	dayAvail, err := h.Schedules.GetDayAvailability(c.Request.Context(), models.ServiceType(c.Param("type")), day)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dayAvail)
}

type toggleDayRequest struct {
	IsEnabled *bool `json:"isEnabled"`
}

// ToggleDayHandler flips a day's enabled flag.
func (h *ScheduleHandler) ToggleDayHandler(c *gin.Context) {
	day, ok := models.ParseWeekday(c.Param("day"))
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "validation failed", "unknown day "+c.Param("day"))
		return
	}
	var req toggleDayRequest
	if !bindStrictJSON(c, &req) {
		return
	}
	if req.IsEnabled == nil {
		utils.JSONError(c, http.StatusBadRequest, "validation failed", "isEnabled is required")
		return
	}
	schedule, err := h.Schedules.ToggleDay(c.Request.Context(), models.ServiceType(c.Param("type")), day, *req.IsEnabled)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

type addSlotRequest struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsEnabled *bool  `json:"isEnabled"`
}

// AddSlotHandler appends a slot to a day.
func (h *ScheduleHandler) AddSlotHandler(c *gin.Context) {
	day, ok := models.ParseWeekday(c.Param("day"))
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "validation failed", "unknown day "+c.Param("day"))
		return
	}
	var req addSlotRequest
	if !bindStrictJSON(c, &req) {
		return
	}
	slot := models.TimeSlot{StartTime: req.StartTime, EndTime: req.EndTime, IsEnabled: true}
	if req.IsEnabled != nil {
		slot.IsEnabled = *req.IsEnabled
	}
	schedule, err := h.Schedules.AddTimeSlot(c.Request.Context(), models.ServiceType(c.Param("type")), day, slot)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// RemoveSlotHandler removes a slot by its position within the day.
func (h *ScheduleHandler) RemoveSlotHandler(c *gin.Context) {
	day, ok := models.ParseWeekday(c.Param("day"))
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "validation failed", "unknown day "+c.Param("day"))
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation failed", "slot index must be an integer")
		return
	}
	schedule, err := h.Schedules.RemoveTimeSlot(c.Request.Context(), models.ServiceType(c.Param("type")), day, index)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// DeleteScheduleHandler hard-deletes a schedule by id.
func (h *ScheduleHandler) DeleteScheduleHandler(c *gin.Context) {
	if err := h.Schedules.RemoveSchedule(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// GetSlotsForDateHandler resolves the open slots for one calendar date.
func (h *ScheduleHandler) GetSlotsForDateHandler(c *gin.Context) {
	slots, err := h.Availability.GetAvailableSlotsForDate(c.Request.Context(), models.ServiceType(c.Param("type")), c.Query("date"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// GetSlotsForRangeHandler resolves open slots per day across a date range.
func (h *ScheduleHandler) GetSlotsForRangeHandler(c *gin.Context) {
	views, err := h.Availability.GetAvailableSlots(c.Request.Context(), models.ServiceType(c.Param("type")), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": views})
}
