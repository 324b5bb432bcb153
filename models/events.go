package models

import "time"

// BookingEventKind names a booking lifecycle change worth notifying about.
type BookingEventKind string

const (
	BookingEventCreated     BookingEventKind = "booking.created"
	BookingEventCancelled   BookingEventKind = "booking.cancelled"
	BookingEventRescheduled BookingEventKind = "booking.rescheduled"
)

// BookingEvent is the outbound message handed to the notification pipeline
// when a booking is created, cancelled or rescheduled. Delivery is
// fire-and-forget; the scheduling operation never depends on it.
type BookingEvent struct {
	Kind       BookingEventKind `json:"kind"`
	BookingID  string           `json:"bookingId"`
	Type       ServiceType      `json:"type"`
	Date       string           `json:"date"`
	SlotKeys   []string         `json:"slotKeys"`
	UserID     string           `json:"userId"`
	OccurredAt time.Time        `json:"occurredAt"`
}
