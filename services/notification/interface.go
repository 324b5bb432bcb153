// File: services/notification/interface.go
package notification

import (
	"context"

	"slotify/models"
)

// Publisher hands booking lifecycle events to the messaging pipeline. Callers
// treat a failed publish as non-fatal: it is logged, never returned as the
// scheduling operation's error.
type Publisher interface {
	PublishBookingEvent(ctx context.Context, event models.BookingEvent) error
}

// Notifier delivers an event to the requesting party. Real delivery channels
// (push, email, websocket) plug in here; the default implementation only logs.
type Notifier interface {
	Notify(ctx context.Context, event models.BookingEvent) error
}
