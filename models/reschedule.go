package models

import "time"

// RescheduleStatus is the review state of a reschedule request.
type RescheduleStatus string

const (
	ReschedulePending  RescheduleStatus = "pending"
	RescheduleApproved RescheduleStatus = "approved"
	RescheduleRejected RescheduleStatus = "rejected"
)

// RescheduleRequest asks to move an existing booking to a new date and slot
// set. A request is resolved exactly once: approved mutates the booking,
// rejected leaves it untouched. Resolved requests are immutable.
type RescheduleRequest struct {
	ID             string           `bson:"id" json:"id"`
	BookingID      string           `bson:"bookingId" json:"bookingId"`
	RequestedDate  string           `bson:"requestedDate" json:"requestedDate"` // "YYYY-MM-DD"
	RequestedSlots []SlotRange      `bson:"requestedSlots" json:"requestedSlots"`
	Status         RescheduleStatus `bson:"status" json:"status"`
	RequestedBy    string           `bson:"requestedBy" json:"requestedBy"`
	ReviewedBy     string           `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	AdminNotes     string           `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`
	CreatedAt      time.Time        `bson:"createdAt" json:"createdAt"`
	ReviewedAt     *time.Time       `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
}
