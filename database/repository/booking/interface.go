// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"fmt"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SlotTakenError is returned when a reservation loses the race for a slot key.
// The caller translates it into its own conflict taxonomy.
type SlotTakenError struct {
	Type    models.ServiceType
	Date    string
	SlotKey string
}

func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("slot %s already reserved for type %s on %s", e.SlotKey, e.Type, e.Date)
}

// BookingRepository owns the bookings collection and the slot-occupancy
// invariant: at most one active booking per (type, date, slotKey). The
// invariant is enforced by a partial unique index plus transactional
// check-and-reserve writes, never by application-level locking.
type BookingRepository interface {
	// Reserve inserts the booking inside a transaction that first re-checks
	// no active booking holds any of its slot keys. Returns *SlotTakenError
	// on collision.
	Reserve(ctx context.Context, booking *models.Booking) error
	// GetByID returns (nil, nil) when the booking does not exist.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListActiveByTypeAndDate returns non-cancelled, non-rejected bookings
	// for the calendar day.
	ListActiveByTypeAndDate(ctx context.Context, serviceType models.ServiceType, date string) ([]models.Booking, error)
	// ListActiveByTypeAndDateRange returns non-cancelled, non-rejected
	// bookings with from <= date <= to.
	ListActiveByTypeAndDateRange(ctx context.Context, serviceType models.ServiceType, from, to string) ([]models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// UpdateStatus persists a status change together with its occupancy flag.
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus, active bool, cancelReason string) (bool, error)
	SetPaymentStatus(ctx context.Context, id string, paymentStatus string) (bool, error)
	// ApplyReschedule moves the booking to the requested date/slots and marks
	// the reschedule request approved, in one transaction that re-checks the
	// target slots (ignoring the booking's own current reservation).
	ApplyReschedule(ctx context.Context, booking *models.Booking, date string, slots []models.SlotRange, requestID, reviewedBy, adminNotes string) error
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll        *mongo.Collection
	requestColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &mongoBookingRepo{
		coll:        db.Collection("bookings"),
		requestColl: db.Collection("reschedule_requests"),
	}
}
