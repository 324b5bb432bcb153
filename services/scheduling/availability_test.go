// File: services/scheduling/availability_test.go
package scheduling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"slotify/models"
)

// mondayDate falls on a Monday.
const mondayDate = "2024-06-10"

func seedVideoMonday(t *testing.T, env *testEnv) {
	t.Helper()
	weekly := weeklyWith(map[models.Weekday][]models.TimeSlot{
		models.Monday: {slot("09:00", "10:00"), slot("10:00", "11:00")},
	})
	_, err := env.schedule.UpsertSchedule(context.Background(), models.ServiceVideoConsultancy, weekly, nil)
	require.NoError(t, err)
}

func TestGetAvailableSlotsForDateEmptyCases(t *testing.T) {
	ctx := context.Background()

	t.Run("no schedule for type", func(t *testing.T) {
		env := newTestEnv()
		slots, err := env.resolver.GetAvailableSlotsForDate(ctx, models.ServiceVideoConsultancy, mondayDate)
		require.NoError(t, err)
		require.NotNil(t, slots)
		require.Empty(t, slots)
	})

	t.Run("inactive schedule", func(t *testing.T) {
		env := newTestEnv()
		inactive := false
		weekly := weeklyWith(map[models.Weekday][]models.TimeSlot{
			models.Monday: {slot("09:00", "10:00")},
		})
		_, err := env.schedule.UpsertSchedule(ctx, models.ServiceVideoConsultancy, weekly, &inactive)
		require.NoError(t, err)

		slots, err := env.resolver.GetAvailableSlotsForDate(ctx, models.ServiceVideoConsultancy, mondayDate)
		require.NoError(t, err)
		require.Empty(t, slots)
	})

	t.Run("disabled day", func(t *testing.T) {
		env := newTestEnv()
		seedVideoMonday(t, env)
		_, err := env.schedule.ToggleDay(ctx, models.ServiceVideoConsultancy, models.Monday, false)
		require.NoError(t, err)

		slots, err := env.resolver.GetAvailableSlotsForDate(ctx, models.ServiceVideoConsultancy, mondayDate)
		require.NoError(t, err)
		require.Empty(t, slots)
	})

	t.Run("enabled day without slots", func(t *testing.T) {
		env := newTestEnv()
		seedVideoMonday(t, env)
		// Tuesday is disabled and empty; the day after mondayDate.
		slots, err := env.resolver.GetAvailableSlotsForDate(ctx, models.ServiceVideoConsultancy, "2024-06-11")
		require.NoError(t, err)
		require.Empty(t, slots)
	})

	t.Run("all slots disabled", func(t *testing.T) {
		env := newTestEnv()
		weekly := weeklyWith(map[models.Weekday][]models.TimeSlot{
			models.Monday: {
				{StartTime: "09:00", EndTime: "10:00", IsEnabled: false},
				{StartTime: "10:00", EndTime: "11:00", IsEnabled: false},
			},
		})
		_, err := env.schedule.UpsertSchedule(ctx, models.ServiceVideoConsultancy, weekly, nil)
		require.NoError(t, err)

		slots, err := env.resolver.GetAvailableSlotsForDate(ctx, models.ServiceVideoConsultancy, mondayDate)
		require.NoError(t, err)
		require.Empty(t, slots)
	})
}

func TestGetAvailableSlotsForDateInvalidInput(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	var verr *ValidationError
	_, err := env.resolver.GetAvailableSlotsForDate(ctx, models.ServiceVideoConsultancy, "2024-13-40")
	require.ErrorAs(t, err, &verr)

	_, err = env.resolver.GetAvailableSlotsForDate(ctx, models.ServiceType("HOUSE_CALL"), mondayDate)
	require.ErrorAs(t, err, &verr)
}

func TestAvailabilityReflectsBookingsAndCancellation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	seedVideoMonday(t, env)

	slots, err := env.resolver.GetAvailableSlotsForDate(ctx, models.ServiceVideoConsultancy, mondayDate)
	require.NoError(t, err)
	require.Equal(t, []string{"09:00-10:00", "10:00-11:00"}, slotKeysOf(slots))

	booking, err := env.booking.CreateBooking(ctx, CreateBookingInput{
		Type:   models.ServiceVideoConsultancy,
		Date:   mondayDate,
		Slots:  []models.SlotRange{{StartTime: "09:00", EndTime: "10:00"}},
		UserID: "user-1",
	})
	require.NoError(t, err)

	slots, err = env.resolver.GetAvailableSlotsForDate(ctx, models.ServiceVideoConsultancy, mondayDate)
	require.NoError(t, err)
	require.Equal(t, []string{"10:00-11:00"}, slotKeysOf(slots))

	// The slot is scoped to its type: the other type's pool is untouched.
	weekly := weeklyWith(map[models.Weekday][]models.TimeSlot{
		models.Monday: {slot("09:00", "10:00")},
	})
	_, err = env.schedule.UpsertSchedule(ctx, models.ServiceOnsiteVisit, weekly, nil)
	require.NoError(t, err)
	slots, err = env.resolver.GetAvailableSlotsForDate(ctx, models.ServiceOnsiteVisit, mondayDate)
	require.NoError(t, err)
	require.Equal(t, []string{"09:00-10:00"}, slotKeysOf(slots))

	// Cancelling frees the slot for the very next read.
	_, err = env.booking.CancelBooking(ctx, booking.ID, "changed plans")
	require.NoError(t, err)

	slots, err = env.resolver.GetAvailableSlotsForDate(ctx, models.ServiceVideoConsultancy, mondayDate)
	require.NoError(t, err)
	require.Equal(t, []string{"09:00-10:00", "10:00-11:00"}, slotKeysOf(slots))
}

func TestAvailabilityPreservesTemplateOrder(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	weekly := weeklyWith(map[models.Weekday][]models.TimeSlot{
		models.Monday: {slot("14:00", "15:00"), slot("09:00", "10:00"), slot("11:00", "12:00")},
	})
	_, err := env.schedule.UpsertSchedule(ctx, models.ServiceVideoConsultancy, weekly, nil)
	require.NoError(t, err)

	slots, err := env.resolver.GetAvailableSlotsForDate(ctx, models.ServiceVideoConsultancy, mondayDate)
	require.NoError(t, err)
	require.Equal(t, []string{"14:00-15:00", "09:00-10:00", "11:00-12:00"}, slotKeysOf(slots))
}

func TestGetAvailableSlotsRange(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	seedVideoMonday(t, env)

	// Sunday through Tuesday around mondayDate.
	views, err := env.resolver.GetAvailableSlots(ctx, models.ServiceVideoConsultancy, "2024-06-09", "2024-06-11")
	require.NoError(t, err)
	require.Len(t, views, 3)

	require.Equal(t, "2024-06-09", views[0].Date)
	require.Equal(t, models.Sunday, views[0].Day)
	require.Empty(t, views[0].Slots)

	require.Equal(t, mondayDate, views[1].Date)
	require.Equal(t, models.Monday, views[1].Day)
	require.Equal(t, []string{"09:00-10:00", "10:00-11:00"}, slotKeysOf(views[1].Slots))

	require.Empty(t, views[2].Slots)
}

func TestGetAvailableSlotsRangeValidation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	seedVideoMonday(t, env)

	var verr *ValidationError

	_, err := env.resolver.GetAvailableSlots(ctx, models.ServiceVideoConsultancy, "2024-06-11", "2024-06-09")
	require.ErrorAs(t, err, &verr)

	_, err = env.resolver.GetAvailableSlots(ctx, models.ServiceVideoConsultancy, "2024-06-01", "2024-08-01")
	require.ErrorAs(t, err, &verr)

	_, err = env.resolver.GetAvailableSlots(ctx, models.ServiceVideoConsultancy, "2024-13-40", "")
	require.ErrorAs(t, err, &verr)
}

func TestGetAvailableSlotsRangeCap(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	seedVideoMonday(t, env)

	// 31 inclusive days is the widest permitted window.
	views, err := env.resolver.GetAvailableSlots(ctx, models.ServiceVideoConsultancy, "2024-06-01", "2024-07-01")
	require.NoError(t, err)
	require.Len(t, views, 31)

	// One more day tips over the cap.
	var verr *ValidationError
	_, err = env.resolver.GetAvailableSlots(ctx, models.ServiceVideoConsultancy, "2024-06-01", "2024-07-02")
	require.ErrorAs(t, err, &verr)
}

func TestOfferedAndOpenKeys(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	seedVideoMonday(t, env)

	booking, err := env.booking.CreateBooking(ctx, CreateBookingInput{
		Type:   models.ServiceVideoConsultancy,
		Date:   mondayDate,
		Slots:  []models.SlotRange{{StartTime: "09:00", EndTime: "10:00"}},
		UserID: "user-1",
	})
	require.NoError(t, err)

	offered, open, err := env.resolver.OfferedAndOpenKeys(ctx, models.ServiceVideoConsultancy, mondayDate, "")
	require.NoError(t, err)
	require.True(t, offered["09:00-10:00"])
	require.True(t, offered["10:00-11:00"])
	require.False(t, open["09:00-10:00"])
	require.True(t, open["10:00-11:00"])

	// Excluding the booking's own id treats its slots as vacated.
	_, open, err = env.resolver.OfferedAndOpenKeys(ctx, models.ServiceVideoConsultancy, mondayDate, booking.ID)
	require.NoError(t, err)
	require.True(t, open["09:00-10:00"])
}

func slotKeysOf(slots []models.TimeSlot) []string {
	keys := make([]string, len(slots))
	for i, s := range slots {
		keys[i] = s.Key()
	}
	return keys
}
