package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingUpcoming  BookingStatus = "upcoming"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
	BookingRejected  BookingStatus = "rejected"
)

// ParseBookingStatus resolves a status string; ok is false for unknown values.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingUpcoming,
		BookingCompleted, BookingCancelled, BookingRejected:
		return BookingStatus(s), true
	}
	return "", false
}

var bookingTransitions = map[BookingStatus]map[BookingStatus]bool{
	BookingPending:   {BookingConfirmed: true, BookingRejected: true, BookingCancelled: true},
	BookingConfirmed: {BookingUpcoming: true, BookingCancelled: true},
	BookingUpcoming:  {BookingCompleted: true, BookingCancelled: true},
	BookingCompleted: {},
	BookingCancelled: {},
	BookingRejected:  {},
}

// CanTransitionTo reports whether the status machine permits moving to next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	allowed, ok := bookingTransitions[s]
	return ok && allowed[next]
}

// IsTerminal reports whether no further transitions are permitted.
func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

// CountsTowardOccupancy reports whether a booking in this status holds its slot
// keys. Cancelled and rejected bookings free their slots immediately.
func (s BookingStatus) CountsTowardOccupancy() bool {
	return s != BookingCancelled && s != BookingRejected
}

// SlotRange is one reserved (startTime, endTime) pair on a booking.
type SlotRange struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// Key returns the slot-key form used for occupancy checks, e.g. "09:00-10:00".
func (r SlotRange) Key() string {
	return r.StartTime + "-" + r.EndTime
}

// SlotKeys derives the ordered key set for a reserved slot list.
func SlotKeys(slots []SlotRange) []string {
	keys := make([]string, len(slots))
	for i, s := range slots {
		keys[i] = s.Key()
	}
	return keys
}

// Booking is a reservation of one or more slot keys on a calendar date.
//
// SlotKeys duplicates Slots in key form and Active mirrors
// Status.CountsTowardOccupancy(); both are maintained by the repository so the
// bookings collection can carry a partial unique index on (type, date,
// slotKeys) over active documents, which is what serializes two concurrent
// reservations of the same slot.
type Booking struct {
	ID            string        `bson:"id" json:"id"`
	Type          ServiceType   `bson:"type" json:"type"`
	Date          string        `bson:"date" json:"date"` // "YYYY-MM-DD"
	Slots         []SlotRange   `bson:"slots" json:"slots"`
	SlotKeys      []string      `bson:"slotKeys" json:"-"`
	Status        BookingStatus `bson:"status" json:"status"`
	Active        bool          `bson:"active" json:"-"`
	PaymentStatus string        `bson:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
	UserID        string        `bson:"userId" json:"userId"`
	IsRescheduled bool          `bson:"isRescheduled" json:"isRescheduled"`
	CancelReason  string        `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}
