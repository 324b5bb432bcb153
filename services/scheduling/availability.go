// File: services/scheduling/availability.go
package scheduling

import (
	"context"
	"time"

	"slotify/config"
	bookingRepo "slotify/database/repository/booking"
	scheduleRepo "slotify/database/repository/schedule"
	"slotify/models"
)

// DefaultAvailabilityService is the production AvailabilityService.
type DefaultAvailabilityService struct {
	Schedules scheduleRepo.ScheduleRepository
	Bookings  bookingRepo.BookingRepository
}

// maxRangeDays caps a single range query.
const maxRangeDays = 31

// dayTemplate loads the day's template entry for the date's weekday. The nil
// result covers every "nothing offered" case: missing schedule, inactive
// schedule, missing or disabled day.
func (s *DefaultAvailabilityService) dayTemplate(ctx context.Context, serviceType models.ServiceType, date string) (*models.DayAvailability, error) {
	day, err := DayOfWeekFor(date)
	if err != nil {
		return nil, err
	}
	schedule, err := s.Schedules.GetByType(ctx, serviceType)
	if err != nil {
		return nil, err
	}
	if schedule == nil || !schedule.IsActive {
		return nil, nil
	}
	dayAvail := schedule.DayFor(day)
	if dayAvail == nil || !dayAvail.IsEnabled || len(dayAvail.Slots) == 0 {
		return nil, nil
	}
	return dayAvail, nil
}

// bookedKeys is the union of slot keys across the date's active bookings.
func (s *DefaultAvailabilityService) bookedKeys(ctx context.Context, serviceType models.ServiceType, date, excludeBookingID string) (map[string]bool, error) {
	bookings, err := s.Bookings.ListActiveByTypeAndDate(ctx, serviceType, date)
	if err != nil {
		return nil, err
	}
	booked := make(map[string]bool)
	for _, b := range bookings {
		if b.ID == excludeBookingID {
			continue
		}
		for _, slot := range b.Slots {
			booked[slot.Key()] = true
		}
	}
	return booked, nil
}

func (s *DefaultAvailabilityService) GetAvailableSlotsForDate(ctx context.Context, serviceType models.ServiceType, date string) ([]models.TimeSlot, error) {
	if !serviceType.IsValid() {
		return nil, NewValidationError("unknown service type %q", serviceType)
	}
	dayAvail, err := s.dayTemplate(ctx, serviceType, date)
	if err != nil {
		return nil, err
	}
	if dayAvail == nil {
		return []models.TimeSlot{}, nil
	}

	booked, err := s.bookedKeys(ctx, serviceType, date, "")
	if err != nil {
		return nil, err
	}

	open := make([]models.TimeSlot, 0, len(dayAvail.Slots))
	for _, slot := range dayAvail.Slots {
		if slot.IsEnabled && !booked[slot.Key()] {
			open = append(open, slot)
		}
	}
	return open, nil
}

func (s *DefaultAvailabilityService) GetAvailableSlots(ctx context.Context, serviceType models.ServiceType, startDate, endDate string) ([]DayView, error) {
	if !serviceType.IsValid() {
		return nil, NewValidationError("unknown service type %q", serviceType)
	}

	rangeDays := config.AppConfig.AvailabilityRangeDays
	if rangeDays <= 0 {
		rangeDays = 7
	}

	var start time.Time
	var err error
	if startDate == "" {
		now := time.Now().UTC()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else if start, err = ParseDate(startDate); err != nil {
		return nil, err
	}

	var end time.Time
	if endDate == "" {
		end = start.AddDate(0, 0, rangeDays-1)
	} else if end, err = ParseDate(endDate); err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, NewValidationError("endDate %s is before startDate %s", end.Format(dateLayout), start.Format(dateLayout))
	}
	if end.Sub(start) >= maxRangeDays*24*time.Hour {
		return nil, NewValidationError("date range exceeds %d days", maxRangeDays)
	}

	views := make([]DayView, 0, rangeDays)
	for _, date := range DatesBetween(start, end) {
		slots, err := s.GetAvailableSlotsForDate(ctx, serviceType, date)
		if err != nil {
			return nil, err
		}
		day, _ := DayOfWeekFor(date)
		views = append(views, DayView{Date: date, Day: day, Slots: slots})
	}
	return views, nil
}

func (s *DefaultAvailabilityService) OfferedAndOpenKeys(ctx context.Context, serviceType models.ServiceType, date, excludeBookingID string) (map[string]bool, map[string]bool, error) {
	dayAvail, err := s.dayTemplate(ctx, serviceType, date)
	if err != nil {
		return nil, nil, err
	}

	offered := make(map[string]bool)
	open := make(map[string]bool)
	if dayAvail == nil {
		return offered, open, nil
	}

	booked, err := s.bookedKeys(ctx, serviceType, date, excludeBookingID)
	if err != nil {
		return nil, nil, err
	}
	for _, slot := range dayAvail.Slots {
		if !slot.IsEnabled {
			continue
		}
		offered[slot.Key()] = true
		if !booked[slot.Key()] {
			open[slot.Key()] = true
		}
	}
	return offered, open, nil
}
