// File: services/scheduling/interface.go
package scheduling

import (
	"context"

	"slotify/models"
)

// ScheduleService manages the recurring weekly availability templates, one
// per service type.
type ScheduleService interface {
	// UpsertSchedule validates and full-replaces the weekly template for the
	// type, creating it on first call. isActive defaults to true when nil.
	UpsertSchedule(ctx context.Context, serviceType models.ServiceType, weekly []models.DayAvailability, isActive *bool) (*models.AvailabilitySchedule, error)
	GetScheduleByType(ctx context.Context, serviceType models.ServiceType) (*models.AvailabilitySchedule, error)
	GetDayAvailability(ctx context.Context, serviceType models.ServiceType, day models.Weekday) (*models.DayAvailability, error)
	ToggleDay(ctx context.Context, serviceType models.ServiceType, day models.Weekday, enabled bool) (*models.AvailabilitySchedule, error)
	AddTimeSlot(ctx context.Context, serviceType models.ServiceType, day models.Weekday, slot models.TimeSlot) (*models.AvailabilitySchedule, error)
	RemoveTimeSlot(ctx context.Context, serviceType models.ServiceType, day models.Weekday, index int) (*models.AvailabilitySchedule, error)
	RemoveSchedule(ctx context.Context, id string) error
}

// DayView is one calendar day of resolved availability.
type DayView struct {
	Date  string            `json:"date"`
	Day   models.Weekday    `json:"day"`
	Slots []models.TimeSlot `json:"slots"`
}

// AvailabilityService resolves which template slots are currently bookable.
// Availability is always computed fresh from template minus enabled filter
// minus active bookings; it is never cached or denormalized.
type AvailabilityService interface {
	// GetAvailableSlotsForDate returns the open slots for the literal
	// calendar date, in template order. A missing schedule, disabled day or
	// empty slot list yields an empty result, not an error.
	GetAvailableSlotsForDate(ctx context.Context, serviceType models.ServiceType, date string) ([]models.TimeSlot, error)
	// GetAvailableSlots is the range variant; both bounds are optional and
	// default to a window starting today.
	GetAvailableSlots(ctx context.Context, serviceType models.ServiceType, startDate, endDate string) ([]DayView, error)
	// OfferedAndOpenKeys is the write-path re-check used by booking creation
	// and reschedule approval: offered is every enabled slot key in the day's
	// template, open is the subset not held by an active booking.
	// excludeBookingID ignores that booking's own reservation.
	OfferedAndOpenKeys(ctx context.Context, serviceType models.ServiceType, date string, excludeBookingID string) (offered, open map[string]bool, err error)
}

// CreateBookingInput carries the caller-supplied fields of a new booking.
type CreateBookingInput struct {
	Type          models.ServiceType
	Date          string
	Slots         []models.SlotRange
	UserID        string
	Status        models.BookingStatus // optional; defaults to pending
	PaymentStatus string
}

// BookingService drives the booking ledger and its status state machine.
type BookingService interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	// FindBookingsByDateRange returns the bookings that count toward slot
	// occupancy (never cancelled or rejected ones) within the range.
	FindBookingsByDateRange(ctx context.Context, serviceType models.ServiceType, from, to string) ([]models.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, newStatus models.BookingStatus) (*models.Booking, error)
	CancelBooking(ctx context.Context, id, reason string) (*models.Booking, error)
	// SetPaymentStatus is the narrow inbound surface for the payment
	// collaborator; it never touches scheduling state.
	SetPaymentStatus(ctx context.Context, id, paymentStatus string) (*models.Booking, error)
}

// RescheduleService mediates requested date/slot changes against the same
// availability rules before mutating a booking.
type RescheduleService interface {
	CreateRequest(ctx context.Context, bookingID, requestedDate string, requestedSlots []models.SlotRange, requestedBy string) (*models.RescheduleRequest, error)
	ReviewRequest(ctx context.Context, requestID, decision, reviewedBy, adminNotes string) (*models.RescheduleRequest, error)
	GetRequest(ctx context.Context, id string) (*models.RescheduleRequest, error)
	ListPendingRequests(ctx context.Context) ([]models.RescheduleRequest, error)
}
