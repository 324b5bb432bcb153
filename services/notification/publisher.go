// File: services/notification/publisher.go
package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"slotify/models"
	"slotify/utils"
)

// TypeBookingEvent is the asynq task type carrying a booking event payload.
const TypeBookingEvent = "booking:event"

// AsynqPublisher enqueues booking events onto the redis-backed task queue.
// Retry and backoff for delivery belong to asynq, not to the scheduling core.
type AsynqPublisher struct {
	client *asynq.Client
}

// NewAsynqPublisher constructs a Publisher over the given redis connection.
func NewAsynqPublisher(redisOpt asynq.RedisClientOpt) *AsynqPublisher {
	return &AsynqPublisher{client: asynq.NewClient(redisOpt)}
}

func (p *AsynqPublisher) PublishBookingEvent(ctx context.Context, event models.BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}
	task := asynq.NewTask(TypeBookingEvent, payload)
	if _, err := p.client.EnqueueContext(ctx, task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("failed to enqueue booking event: %w", err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (p *AsynqPublisher) Close() error {
	return p.client.Close()
}

// LogNotifier is the default delivery sink: it records the event and does
// nothing else. Real channels replace it behind the Notifier interface.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, event models.BookingEvent) error {
	utils.GetLogger().Info("booking event",
		zap.String("kind", string(event.Kind)),
		zap.String("bookingId", event.BookingID),
		zap.String("type", string(event.Type)),
		zap.String("date", event.Date),
		zap.Strings("slotKeys", event.SlotKeys),
		zap.String("userId", event.UserID),
	)
	return nil
}
