// File: database/repository/booking/transaction.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"slotify/models"
)

// conflictingKey returns the first of keys already held by an active booking
// for (type, date), or "" when all are free. excludeBookingID lets a
// reschedule ignore the booking being moved.
func (r *mongoBookingRepo) conflictingKey(ctx context.Context, serviceType models.ServiceType, date string, keys []string, excludeBookingID string) (string, error) {
	filter := bson.M{
		"type":     serviceType,
		"date":     date,
		"active":   true,
		"slotKeys": bson.M{"$in": keys},
	}
	if excludeBookingID != "" {
		filter["id"] = bson.M{"$ne": excludeBookingID}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return "", fmt.Errorf("conflict check failed: %w", err)
	}
	defer cursor.Close(ctx)

	var holders []models.Booking
	if err := cursor.All(ctx, &holders); err != nil {
		return "", fmt.Errorf("conflict check decode failed: %w", err)
	}

	held := make(map[string]bool)
	for _, b := range holders {
		for _, k := range b.SlotKeys {
			held[k] = true
		}
	}
	for _, k := range keys {
		if held[k] {
			return k, nil
		}
	}
	return "", nil
}

// Reserve inserts the booking inside a check-and-reserve transaction. The
// partial unique index on (type, date, slotKeys) backs the in-transaction
// check, so two racing reservations cannot both commit.
func (r *mongoBookingRepo) Reserve(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		taken, err := r.conflictingKey(sc, booking.Type, booking.Date, booking.SlotKeys, "")
		if err != nil {
			return err
		}
		if taken != "" {
			return &SlotTakenError{Type: booking.Type, Date: booking.Date, SlotKey: taken}
		}
		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return &SlotTakenError{Type: booking.Type, Date: booking.Date, SlotKey: booking.SlotKeys[0]}
			}
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	return runInTransaction(ctx, sess, txnFn)
}

// ApplyReschedule moves the booking and resolves the reschedule request in a
// single transaction. The availability re-check excludes the booking itself,
// so it may swap into slots it already holds.
func (r *mongoBookingRepo) ApplyReschedule(ctx context.Context, booking *models.Booking, date string, slots []models.SlotRange, requestID, reviewedBy, adminNotes string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	keys := models.SlotKeys(slots)
	now := time.Now().UTC()

	txnFn := func(sc mongo.SessionContext) error {
		taken, err := r.conflictingKey(sc, booking.Type, date, keys, booking.ID)
		if err != nil {
			return err
		}
		if taken != "" {
			return &SlotTakenError{Type: booking.Type, Date: date, SlotKey: taken}
		}

		bookingUpdate := bson.M{"$set": bson.M{
			"date":          date,
			"slots":         slots,
			"slotKeys":      keys,
			"isRescheduled": true,
			"updatedAt":     now,
		}}
		res, err := r.coll.UpdateOne(sc, bson.M{"id": booking.ID}, bookingUpdate)
		if err != nil {
			return fmt.Errorf("reschedule booking update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("booking %s disappeared during reschedule", booking.ID)
		}

		requestUpdate := bson.M{"$set": bson.M{
			"status":     models.RescheduleApproved,
			"reviewedBy": reviewedBy,
			"adminNotes": adminNotes,
			"reviewedAt": now,
		}}
		res, err = r.requestColl.UpdateOne(sc, bson.M{"id": requestID, "status": models.ReschedulePending}, requestUpdate)
		if err != nil {
			return fmt.Errorf("reschedule request update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("reschedule request %s is no longer pending", requestID)
		}
		return nil
	}

	return runInTransaction(ctx, sess, txnFn)
}

func runInTransaction(ctx context.Context, sess mongo.Session, txnFn func(mongo.SessionContext) error) error {
	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}
