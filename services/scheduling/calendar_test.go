// File: services/scheduling/calendar_test.go
package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"slotify/models"
)

func TestParseDate(t *testing.T) {
	valid := []string{"2024-01-01", "2024-02-29", "2024-12-31", "1999-12-31"}
	for _, s := range valid {
		parsed, err := ParseDate(s)
		require.NoError(t, err, s)
		require.Equal(t, s, parsed.Format("2006-01-02"))
		require.Equal(t, time.UTC, parsed.Location())
	}

	invalid := []string{
		"",
		"2024-13-40",
		"2023-02-29",
		"2024-6-10",
		"2024-06-1",
		"24-06-10",
		"2024/06/10",
		"2024-06-10T00:00:00Z",
		"tomorrow",
	}
	for _, s := range invalid {
		_, err := ParseDate(s)
		require.Error(t, err, s)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, s)
	}
}

func TestDayOfWeekFor(t *testing.T) {
	cases := []struct {
		date string
		want models.Weekday
	}{
		{"2024-06-09", models.Sunday},
		{"2024-06-10", models.Monday},
		{"2024-06-11", models.Tuesday},
		{"2024-02-29", models.Thursday},
		{"2000-01-01", models.Saturday},
		{"1999-12-31", models.Friday},
	}
	for _, tc := range cases {
		got, err := DayOfWeekFor(tc.date)
		require.NoError(t, err, tc.date)
		require.Equal(t, tc.want, got, tc.date)
	}

	_, err := DayOfWeekFor("2024-13-40")
	require.Error(t, err)
}

func TestValidateClock(t *testing.T) {
	for _, s := range []string{"00:00", "09:00", "13:45", "23:59"} {
		require.NoError(t, ValidateClock(s), s)
	}
	for _, s := range []string{"", "9:00", "24:00", "12:60", "12", "12:00:00", "noon"} {
		require.Error(t, ValidateClock(s), s)
	}
}

func TestValidateSlotRange(t *testing.T) {
	require.NoError(t, ValidateSlotRange("09:00", "10:00"))
	require.NoError(t, ValidateSlotRange("00:00", "23:59"))

	// Zero-length and inverted ranges are both rejected.
	require.Error(t, ValidateSlotRange("10:00", "10:00"))
	require.Error(t, ValidateSlotRange("11:00", "10:00"))
	require.Error(t, ValidateSlotRange("9:00", "10:00"))
	require.Error(t, ValidateSlotRange("09:00", "25:00"))
}

func TestDatesBetween(t *testing.T) {
	start, err := ParseDate("2024-06-28")
	require.NoError(t, err)
	end, err := ParseDate("2024-07-02")
	require.NoError(t, err)

	require.Equal(t,
		[]string{"2024-06-28", "2024-06-29", "2024-06-30", "2024-07-01", "2024-07-02"},
		DatesBetween(start, end))

	// A single-day range yields just that day.
	require.Equal(t, []string{"2024-06-28"}, DatesBetween(start, start))
}
