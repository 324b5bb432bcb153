// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository owns the availability schedule collection, one document
// per service type.
type ScheduleRepository interface {
	// Replace writes the whole schedule document for its type, creating it if
	// absent. Full-replace semantics, never a merge.
	Replace(ctx context.Context, schedule *models.AvailabilitySchedule) error
	// GetByType returns (nil, nil) when no schedule exists for the type.
	GetByType(ctx context.Context, serviceType models.ServiceType) (*models.AvailabilitySchedule, error)
	// ToggleDay flips isEnabled on the named day; matched is false when the
	// type or day is unknown.
	ToggleDay(ctx context.Context, serviceType models.ServiceType, day models.Weekday, enabled bool) (matched bool, err error)
	// AppendSlot appends a slot to the named day's list.
	AppendSlot(ctx context.Context, serviceType models.ServiceType, day models.Weekday, slot models.TimeSlot) (matched bool, err error)
	// RemoveSlotAt removes the slot at the given position within the day.
	RemoveSlotAt(ctx context.Context, serviceType models.ServiceType, day models.Weekday, index int) (matched bool, err error)
	// Delete hard-deletes a schedule by id.
	Delete(ctx context.Context, id string) (deleted bool, err error)
	EnsureIndexes() error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	return &mongoScheduleRepo{
		coll: database.DB().Collection("schedules"),
	}
}
