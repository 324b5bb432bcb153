// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotify/models"
)

func (r *mongoScheduleRepo) Replace(ctx context.Context, schedule *models.AvailabilitySchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"type": schedule.Type}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, schedule, opts); err != nil {
		return fmt.Errorf("failed to replace schedule for type %s: %w", schedule.Type, err)
	}
	return nil
}

func (r *mongoScheduleRepo) GetByType(ctx context.Context, serviceType models.ServiceType) (*models.AvailabilitySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var schedule models.AvailabilitySchedule
	err := r.coll.FindOne(ctx, bson.M{"type": serviceType}).Decode(&schedule)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *mongoScheduleRepo) ToggleDay(ctx context.Context, serviceType models.ServiceType, day models.Weekday, enabled bool) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"type":           serviceType,
		"weeklySchedule": bson.M{"$elemMatch": bson.M{"day": day}},
	}
	update := bson.M{
		"$set": bson.M{
			"weeklySchedule.$.isEnabled": enabled,
			"updatedAt":                  time.Now().UTC(),
		},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to toggle day %s for type %s: %w", day, serviceType, err)
	}
	return res.MatchedCount > 0, nil
}

func (r *mongoScheduleRepo) AppendSlot(ctx context.Context, serviceType models.ServiceType, day models.Weekday, slot models.TimeSlot) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"type":           serviceType,
		"weeklySchedule": bson.M{"$elemMatch": bson.M{"day": day}},
	}
	update := bson.M{
		"$push": bson.M{"weeklySchedule.$.slots": slot},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to append slot to day %s for type %s: %w", day, serviceType, err)
	}
	return res.MatchedCount > 0, nil
}

func (r *mongoScheduleRepo) RemoveSlotAt(ctx context.Context, serviceType models.ServiceType, day models.Weekday, index int) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"type": serviceType}
	arrayOpts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"d.day": day}},
	})

	// Mongo has no positional pull, so unset the element to null first and
	// pull the null out in a second statement.
	unset := bson.M{
		"$unset": bson.M{fmt.Sprintf("weeklySchedule.$[d].slots.%d", index): 1},
		"$set":   bson.M{"updatedAt": time.Now().UTC()},
	}
	res, err := r.coll.UpdateOne(ctx, filter, unset, arrayOpts)
	if err != nil {
		return false, fmt.Errorf("failed to unset slot %d on day %s for type %s: %w", index, day, serviceType, err)
	}
	if res.MatchedCount == 0 {
		return false, nil
	}

	pull := bson.M{"$pull": bson.M{"weeklySchedule.$[d].slots": nil}}
	if _, err := r.coll.UpdateOne(ctx, filter, pull, arrayOpts); err != nil {
		return false, fmt.Errorf("failed to pull removed slot on day %s for type %s: %w", day, serviceType, err)
	}
	return true, nil
}

func (r *mongoScheduleRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete schedule %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}
