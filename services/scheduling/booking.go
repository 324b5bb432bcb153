// File: services/scheduling/booking.go
package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "slotify/database/repository/booking"
	"slotify/models"
	"slotify/services/notification"
	"slotify/utils"
)

// DefaultBookingService is the production BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	Availability AvailabilityService
	Publisher    notification.Publisher
}

func (s *DefaultBookingService) validateCreateInput(input CreateBookingInput) error {
	if !input.Type.IsValid() {
		return NewValidationError("unknown service type %q", input.Type)
	}
	if input.UserID == "" {
		return NewValidationError("userId is required")
	}
	if len(input.Slots) == 0 {
		return NewValidationError("at least one slot is required")
	}
	if _, err := ParseDate(input.Date); err != nil {
		return err
	}
	seen := make(map[string]bool, len(input.Slots))
	for _, slot := range input.Slots {
		if err := ValidateSlotRange(slot.StartTime, slot.EndTime); err != nil {
			return err
		}
		if seen[slot.Key()] {
			return NewValidationError("slot %s requested twice", slot.Key())
		}
		seen[slot.Key()] = true
	}
	if input.Status != "" && input.Status != models.BookingPending && input.Status != models.BookingConfirmed {
		return NewValidationError("initial status must be pending or confirmed, got %q", input.Status)
	}
	return nil
}

// CreateBooking re-runs the availability check at write time and reserves the
// slots through the repository's check-and-reserve transaction. The read-time
// check alone would race another booker who observed the same free slot.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	if err := s.validateCreateInput(input); err != nil {
		return nil, err
	}

	offered, open, err := s.Availability.OfferedAndOpenKeys(ctx, input.Type, input.Date, "")
	if err != nil {
		return nil, err
	}
	for _, slot := range input.Slots {
		key := slot.Key()
		if !offered[key] {
			return nil, NewValidationError("slot %s is not offered for type %s on %s", key, input.Type, input.Date)
		}
		if !open[key] {
			return nil, &ConflictError{
				Message: "slot already reserved",
				Type:    string(input.Type),
				Date:    input.Date,
				SlotKey: key,
			}
		}
	}

	status := input.Status
	if status == "" {
		status = models.BookingPending
	}
	now := time.Now().UTC()
	booking := &models.Booking{
		ID:            uuid.New().String(),
		Type:          input.Type,
		Date:          input.Date,
		Slots:         input.Slots,
		SlotKeys:      models.SlotKeys(input.Slots),
		Status:        status,
		Active:        status.CountsTowardOccupancy(),
		PaymentStatus: input.PaymentStatus,
		UserID:        input.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Reserve(ctx, booking); err != nil {
		var taken *bookingRepo.SlotTakenError
		if errors.As(err, &taken) {
			return nil, &ConflictError{
				Message: "slot already reserved",
				Type:    string(taken.Type),
				Date:    taken.Date,
				SlotKey: taken.SlotKey,
			}
		}
		return nil, err
	}

	s.publish(ctx, models.BookingEventCreated, booking)
	return booking, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, NewNotFoundError("no booking with id %s", id)
	}
	return booking, nil
}

func (s *DefaultBookingService) FindBookingsByDateRange(ctx context.Context, serviceType models.ServiceType, from, to string) ([]models.Booking, error) {
	if !serviceType.IsValid() {
		return nil, NewValidationError("unknown service type %q", serviceType)
	}
	start, err := ParseDate(from)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(to)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, NewValidationError("end %s is before start %s", to, from)
	}
	return s.Repo.ListActiveByTypeAndDateRange(ctx, serviceType, from, to)
}

func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	if userID == "" {
		return nil, NewValidationError("userId is required")
	}
	return s.Repo.ListByUser(ctx, userID)
}

func (s *DefaultBookingService) UpdateBookingStatus(ctx context.Context, id string, newStatus models.BookingStatus) (*models.Booking, error) {
	if _, ok := models.ParseBookingStatus(string(newStatus)); !ok {
		return nil, NewValidationError("unknown booking status %q", newStatus)
	}
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(newStatus) {
		return nil, &InvalidTransitionError{From: string(booking.Status), To: string(newStatus)}
	}

	active := newStatus.CountsTowardOccupancy()
	if _, err := s.Repo.UpdateStatus(ctx, id, newStatus, active, ""); err != nil {
		return nil, err
	}
	booking.Status = newStatus
	booking.Active = active

	if newStatus == models.BookingCancelled {
		s.publish(ctx, models.BookingEventCancelled, booking)
	}
	return booking, nil
}

// CancelBooking moves a booking to cancelled from any non-terminal state,
// freeing its slot keys for the very next availability read.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, id, reason string) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status.IsTerminal() {
		return nil, &InvalidTransitionError{From: string(booking.Status), To: string(models.BookingCancelled)}
	}

	if _, err := s.Repo.UpdateStatus(ctx, id, models.BookingCancelled, false, reason); err != nil {
		return nil, err
	}
	booking.Status = models.BookingCancelled
	booking.Active = false
	booking.CancelReason = reason

	s.publish(ctx, models.BookingEventCancelled, booking)
	return booking, nil
}

func (s *DefaultBookingService) SetPaymentStatus(ctx context.Context, id, paymentStatus string) (*models.Booking, error) {
	if paymentStatus == "" {
		return nil, NewValidationError("paymentStatus is required")
	}
	booking, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.Repo.SetPaymentStatus(ctx, id, paymentStatus); err != nil {
		return nil, err
	}
	booking.PaymentStatus = paymentStatus
	return booking, nil
}

// publish hands a booking event to the notification pipeline. Delivery
// failure is logged and never surfaced as the operation's error.
func (s *DefaultBookingService) publish(ctx context.Context, kind models.BookingEventKind, booking *models.Booking) {
	if s.Publisher == nil {
		return
	}
	event := models.BookingEvent{
		Kind:       kind,
		BookingID:  booking.ID,
		Type:       booking.Type,
		Date:       booking.Date,
		SlotKeys:   booking.SlotKeys,
		UserID:     booking.UserID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.Publisher.PublishBookingEvent(ctx, event); err != nil {
		utils.GetLogger().Warn("failed to publish booking event",
			zap.String("kind", string(kind)), zap.String("bookingId", booking.ID), zap.Error(err))
	}
}
