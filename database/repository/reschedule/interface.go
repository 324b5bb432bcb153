// File: database/repository/reschedule/interface.go
package rescheduleRepo

import (
	"context"
	"errors"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicatePending is returned when a booking already has an open request.
var ErrDuplicatePending = errors.New("a pending reschedule request already exists for this booking")

// RescheduleRepository owns the reschedule_requests collection. Approval is
// not here: it mutates the booking too, so it lives in the booking
// repository's transaction.
type RescheduleRepository interface {
	// Create inserts a pending request. Returns ErrDuplicatePending when the
	// booking already has one, enforced by a partial unique index.
	Create(ctx context.Context, req *models.RescheduleRequest) error
	// GetByID returns (nil, nil) when the request does not exist.
	GetByID(ctx context.Context, id string) (*models.RescheduleRequest, error)
	ListPending(ctx context.Context) ([]models.RescheduleRequest, error)
	// MarkRejected resolves a pending request; matched is false when the
	// request is not currently pending.
	MarkRejected(ctx context.Context, id, reviewedBy, adminNotes string) (matched bool, err error)
	EnsureIndexes() error
}

type mongoRescheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoRescheduleRepo constructs a new MongoDB RescheduleRepository.
func NewMongoRescheduleRepo() RescheduleRepository {
	return &mongoRescheduleRepo{
		coll: database.DB().Collection("reschedule_requests"),
	}
}
