package models

import "time"

// ServiceType discriminates which availability template and booking pool applies.
type ServiceType string

const (
	ServiceVideoConsultancy ServiceType = "VIDEO_CONSULTANCY"
	ServiceOnsiteVisit      ServiceType = "ONSITE_VISIT"
)

// IsValid reports whether the service type is one the platform offers.
func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceVideoConsultancy, ServiceOnsiteVisit:
		return true
	}
	return false
}

// Weekday identifies a day within the recurring weekly template.
type Weekday string

const (
	Sunday    Weekday = "SUNDAY"
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
)

// WeekdayOrder is the canonical Sunday-first ordering used by weekly schedules.
var WeekdayOrder = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WeekdayOf maps the standard library weekday (Sunday=0) onto ours.
func WeekdayOf(d time.Weekday) Weekday {
	return WeekdayOrder[int(d)]
}

// ParseWeekday resolves a day name; ok is false for anything outside SUNDAY..SATURDAY.
func ParseWeekday(s string) (Weekday, bool) {
	for _, d := range WeekdayOrder {
		if Weekday(s) == d {
			return d, true
		}
	}
	return "", false
}

// TimeSlot is a bookable window within a day template. Times are "HH:mm", 24h.
type TimeSlot struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
	IsEnabled bool   `bson:"isEnabled" json:"isEnabled"`
}

// Key returns the slot's identity within a day, e.g. "09:00-10:00".
func (s TimeSlot) Key() string {
	return s.StartTime + "-" + s.EndTime
}

// DayAvailability is one day of the recurring weekly template. A disabled day
// offers no slots regardless of its slot list.
type DayAvailability struct {
	Day       Weekday    `bson:"day" json:"day"`
	IsEnabled bool       `bson:"isEnabled" json:"isEnabled"`
	Slots     []TimeSlot `bson:"slots" json:"slots"`
}

// AvailabilitySchedule is the weekly availability template for one service type.
// There is at most one schedule per type; upserts replace the whole document.
type AvailabilitySchedule struct {
	ID             string            `bson:"id" json:"id"`
	Type           ServiceType       `bson:"type" json:"type"`
	WeeklySchedule []DayAvailability `bson:"weeklySchedule" json:"weeklySchedule"`
	IsActive       bool              `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// DayFor returns the template entry for the given day, or nil if the schedule
// does not carry one.
func (s *AvailabilitySchedule) DayFor(day Weekday) *DayAvailability {
	for i := range s.WeeklySchedule {
		if s.WeeklySchedule[i].Day == day {
			return &s.WeeklySchedule[i]
		}
	}
	return nil
}
