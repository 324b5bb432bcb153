// File: services/scheduling/schedule.go
package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	scheduleRepo "slotify/database/repository/schedule"
	"slotify/models"
	"slotify/utils"
)

// DefaultScheduleService is the production ScheduleService.
type DefaultScheduleService struct {
	Repo scheduleRepo.ScheduleRepository
}

// validateWeekly enforces the template invariants: exactly one entry per
// weekday, well-formed clock strings, start < end, and no duplicate
// (startTime, endTime) pair within a single day.
func validateWeekly(weekly []models.DayAvailability) error {
	if len(weekly) != len(models.WeekdayOrder) {
		return NewValidationError("weeklySchedule must contain exactly %d days, got %d", len(models.WeekdayOrder), len(weekly))
	}
	seenDays := make(map[models.Weekday]bool, len(weekly))
	for _, day := range weekly {
		if _, ok := models.ParseWeekday(string(day.Day)); !ok {
			return NewValidationError("unknown day %q", day.Day)
		}
		if seenDays[day.Day] {
			return NewValidationError("day %s appears more than once", day.Day)
		}
		seenDays[day.Day] = true

		seenSlots := make(map[string]bool, len(day.Slots))
		for _, slot := range day.Slots {
			if err := ValidateSlotRange(slot.StartTime, slot.EndTime); err != nil {
				return err
			}
			if seenSlots[slot.Key()] {
				return NewValidationError("duplicate slot %s on %s", slot.Key(), day.Day)
			}
			seenSlots[slot.Key()] = true
		}
	}
	return nil
}

func (s *DefaultScheduleService) UpsertSchedule(ctx context.Context, serviceType models.ServiceType, weekly []models.DayAvailability, isActive *bool) (*models.AvailabilitySchedule, error) {
	if !serviceType.IsValid() {
		return nil, NewValidationError("unknown service type %q", serviceType)
	}
	if err := validateWeekly(weekly); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByType(ctx, serviceType)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	schedule := &models.AvailabilitySchedule{
		Type:           serviceType,
		WeeklySchedule: weekly,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if isActive != nil {
		schedule.IsActive = *isActive
	}
	if existing != nil {
		schedule.ID = existing.ID
		schedule.CreatedAt = existing.CreatedAt
	} else {
		schedule.ID = uuid.New().String()
	}

	if err := s.Repo.Replace(ctx, schedule); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("schedule upserted",
		zap.String("type", string(serviceType)), zap.Bool("created", existing == nil))
	return schedule, nil
}

func (s *DefaultScheduleService) GetScheduleByType(ctx context.Context, serviceType models.ServiceType) (*models.AvailabilitySchedule, error) {
	schedule, err := s.Repo.GetByType(ctx, serviceType)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, NewNotFoundError("no schedule for type %s", serviceType)
	}
	return schedule, nil
}

func (s *DefaultScheduleService) GetDayAvailability(ctx context.Context, serviceType models.ServiceType, day models.Weekday) (*models.DayAvailability, error) {
	schedule, err := s.GetScheduleByType(ctx, serviceType)
	if err != nil {
		return nil, err
	}
	dayAvail := schedule.DayFor(day)
	if dayAvail == nil {
		return nil, NewNotFoundError("schedule for type %s has no day %s", serviceType, day)
	}
	return dayAvail, nil
}

func (s *DefaultScheduleService) ToggleDay(ctx context.Context, serviceType models.ServiceType, day models.Weekday, enabled bool) (*models.AvailabilitySchedule, error) {
	matched, err := s.Repo.ToggleDay(ctx, serviceType, day, enabled)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, NewNotFoundError("no schedule for type %s with day %s", serviceType, day)
	}
	return s.GetScheduleByType(ctx, serviceType)
}

// AddTimeSlot appends a slot to the day. Unlike the original incremental add,
// an exact duplicate (startTime, endTime) pair is rejected here too, so the
// intra-day uniqueness invariant holds under both write paths.
func (s *DefaultScheduleService) AddTimeSlot(ctx context.Context, serviceType models.ServiceType, day models.Weekday, slot models.TimeSlot) (*models.AvailabilitySchedule, error) {
	if err := ValidateSlotRange(slot.StartTime, slot.EndTime); err != nil {
		return nil, err
	}

	dayAvail, err := s.GetDayAvailability(ctx, serviceType, day)
	if err != nil {
		return nil, err
	}
	for _, existing := range dayAvail.Slots {
		if existing.Key() == slot.Key() {
			return nil, NewValidationError("duplicate slot %s on %s", slot.Key(), day)
		}
	}

	matched, err := s.Repo.AppendSlot(ctx, serviceType, day, slot)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, NewNotFoundError("no schedule for type %s with day %s", serviceType, day)
	}
	return s.GetScheduleByType(ctx, serviceType)
}

func (s *DefaultScheduleService) RemoveTimeSlot(ctx context.Context, serviceType models.ServiceType, day models.Weekday, index int) (*models.AvailabilitySchedule, error) {
	dayAvail, err := s.GetDayAvailability(ctx, serviceType, day)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(dayAvail.Slots) {
		return nil, NewNotFoundError("day %s has no slot at index %d", day, index)
	}

	matched, err := s.Repo.RemoveSlotAt(ctx, serviceType, day, index)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, NewNotFoundError("no schedule for type %s with day %s", serviceType, day)
	}
	return s.GetScheduleByType(ctx, serviceType)
}

func (s *DefaultScheduleService) RemoveSchedule(ctx context.Context, id string) error {
	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return NewNotFoundError("no schedule with id %s", id)
	}
	utils.GetLogger().Info("schedule removed", zap.String("id", id))
	return nil
}
