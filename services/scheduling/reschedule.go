// File: services/scheduling/reschedule.go
package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "slotify/database/repository/booking"
	rescheduleRepo "slotify/database/repository/reschedule"
	"slotify/models"
	"slotify/services/notification"
	"slotify/utils"
)

// DefaultRescheduleService is the production RescheduleService.
type DefaultRescheduleService struct {
	Requests     rescheduleRepo.RescheduleRepository
	Bookings     bookingRepo.BookingRepository
	Availability AvailabilityService
	Publisher    notification.Publisher
}

func (s *DefaultRescheduleService) CreateRequest(ctx context.Context, bookingID, requestedDate string, requestedSlots []models.SlotRange, requestedBy string) (*models.RescheduleRequest, error) {
	if requestedBy == "" {
		return nil, NewValidationError("requestedBy is required")
	}
	if len(requestedSlots) == 0 {
		return nil, NewValidationError("at least one requested slot is required")
	}
	if _, err := ParseDate(requestedDate); err != nil {
		return nil, err
	}
	for _, slot := range requestedSlots {
		if err := ValidateSlotRange(slot.StartTime, slot.EndTime); err != nil {
			return nil, err
		}
	}

	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, NewNotFoundError("no booking with id %s", bookingID)
	}
	if booking.Status.IsTerminal() {
		return nil, NewValidationError("booking %s is %s and cannot be rescheduled", bookingID, booking.Status)
	}

	req := &models.RescheduleRequest{
		ID:             uuid.New().String(),
		BookingID:      bookingID,
		RequestedDate:  requestedDate,
		RequestedSlots: requestedSlots,
		Status:         models.ReschedulePending,
		RequestedBy:    requestedBy,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Requests.Create(ctx, req); err != nil {
		if errors.Is(err, rescheduleRepo.ErrDuplicatePending) {
			return nil, &ConflictError{Message: "a pending reschedule request already exists for booking " + bookingID}
		}
		return nil, err
	}
	return req, nil
}

// ReviewRequest resolves a pending request exactly once. Approval re-validates
// the requested date/slots the same way booking creation does, except the
// booking's own current slots count as vacated, so it can swap into a slot it
// already partially holds. A conflicting approval fails and leaves the
// request pending for a later retry against fresh availability.
func (s *DefaultRescheduleService) ReviewRequest(ctx context.Context, requestID, decision, reviewedBy, adminNotes string) (*models.RescheduleRequest, error) {
	if reviewedBy == "" {
		return nil, NewValidationError("reviewedBy is required")
	}

	req, err := s.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != models.ReschedulePending {
		return nil, &InvalidTransitionError{From: string(req.Status), To: decision}
	}

	now := time.Now().UTC()
	switch models.RescheduleStatus(decision) {
	case models.RescheduleRejected:
		matched, err := s.Requests.MarkRejected(ctx, requestID, reviewedBy, adminNotes)
		if err != nil {
			return nil, err
		}
		if !matched {
			// Lost a race with another reviewer.
			return nil, &InvalidTransitionError{From: "resolved", To: decision}
		}
		req.Status = models.RescheduleRejected

	case models.RescheduleApproved:
		booking, err := s.Bookings.GetByID(ctx, req.BookingID)
		if err != nil {
			return nil, err
		}
		if booking == nil {
			return nil, NewNotFoundError("no booking with id %s", req.BookingID)
		}

		offered, open, err := s.Availability.OfferedAndOpenKeys(ctx, booking.Type, req.RequestedDate, booking.ID)
		if err != nil {
			return nil, err
		}
		for _, slot := range req.RequestedSlots {
			key := slot.Key()
			if !offered[key] {
				return nil, NewValidationError("slot %s is not offered for type %s on %s", key, booking.Type, req.RequestedDate)
			}
			if !open[key] {
				return nil, &ConflictError{
					Message: "requested slot already reserved",
					Type:    string(booking.Type),
					Date:    req.RequestedDate,
					SlotKey: key,
				}
			}
		}

		if err := s.Bookings.ApplyReschedule(ctx, booking, req.RequestedDate, req.RequestedSlots, requestID, reviewedBy, adminNotes); err != nil {
			var taken *bookingRepo.SlotTakenError
			if errors.As(err, &taken) {
				return nil, &ConflictError{
					Message: "requested slot already reserved",
					Type:    string(taken.Type),
					Date:    taken.Date,
					SlotKey: taken.SlotKey,
				}
			}
			return nil, err
		}
		req.Status = models.RescheduleApproved

		booking.Date = req.RequestedDate
		booking.Slots = req.RequestedSlots
		booking.SlotKeys = models.SlotKeys(req.RequestedSlots)
		booking.IsRescheduled = true
		s.publishRescheduled(ctx, booking)

	default:
		return nil, NewValidationError("decision must be approved or rejected, got %q", decision)
	}

	req.ReviewedBy = reviewedBy
	req.AdminNotes = adminNotes
	req.ReviewedAt = &now
	return req, nil
}

func (s *DefaultRescheduleService) GetRequest(ctx context.Context, id string) (*models.RescheduleRequest, error) {
	req, err := s.Requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, NewNotFoundError("no reschedule request with id %s", id)
	}
	return req, nil
}

func (s *DefaultRescheduleService) ListPendingRequests(ctx context.Context) ([]models.RescheduleRequest, error) {
	return s.Requests.ListPending(ctx)
}

func (s *DefaultRescheduleService) publishRescheduled(ctx context.Context, booking *models.Booking) {
	if s.Publisher == nil {
		return
	}
	event := models.BookingEvent{
		Kind:       models.BookingEventRescheduled,
		BookingID:  booking.ID,
		Type:       booking.Type,
		Date:       booking.Date,
		SlotKeys:   booking.SlotKeys,
		UserID:     booking.UserID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.Publisher.PublishBookingEvent(ctx, event); err != nil {
		utils.GetLogger().Warn("failed to publish reschedule event",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
}
