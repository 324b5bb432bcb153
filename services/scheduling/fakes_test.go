// File: services/scheduling/fakes_test.go
package scheduling

import (
	"context"
	"errors"
	"sync"
	"time"

	bookingRepo "slotify/database/repository/booking"
	rescheduleRepo "slotify/database/repository/reschedule"
	"slotify/models"
)

// fakeScheduleRepo is an in-memory ScheduleRepository.
type fakeScheduleRepo struct {
	mu        sync.Mutex
	schedules map[models.ServiceType]*models.AvailabilitySchedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[models.ServiceType]*models.AvailabilitySchedule)}
}

func copySchedule(s *models.AvailabilitySchedule) *models.AvailabilitySchedule {
	out := *s
	out.WeeklySchedule = make([]models.DayAvailability, len(s.WeeklySchedule))
	for i, day := range s.WeeklySchedule {
		out.WeeklySchedule[i] = day
		out.WeeklySchedule[i].Slots = append([]models.TimeSlot(nil), day.Slots...)
	}
	return &out
}

func (r *fakeScheduleRepo) Replace(_ context.Context, schedule *models.AvailabilitySchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schedules[schedule.Type] = copySchedule(schedule)
	return nil
}

func (r *fakeScheduleRepo) GetByType(_ context.Context, serviceType models.ServiceType) (*models.AvailabilitySchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.schedules[serviceType]
	if !ok {
		return nil, nil
	}
	return copySchedule(s), nil
}

func (r *fakeScheduleRepo) ToggleDay(_ context.Context, serviceType models.ServiceType, day models.Weekday, enabled bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.schedules[serviceType]
	if !ok {
		return false, nil
	}
	dayAvail := s.DayFor(day)
	if dayAvail == nil {
		return false, nil
	}
	dayAvail.IsEnabled = enabled
	return true, nil
}

func (r *fakeScheduleRepo) AppendSlot(_ context.Context, serviceType models.ServiceType, day models.Weekday, slot models.TimeSlot) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.schedules[serviceType]
	if !ok {
		return false, nil
	}
	dayAvail := s.DayFor(day)
	if dayAvail == nil {
		return false, nil
	}
	dayAvail.Slots = append(dayAvail.Slots, slot)
	return true, nil
}

func (r *fakeScheduleRepo) RemoveSlotAt(_ context.Context, serviceType models.ServiceType, day models.Weekday, index int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.schedules[serviceType]
	if !ok {
		return false, nil
	}
	dayAvail := s.DayFor(day)
	if dayAvail == nil || index < 0 || index >= len(dayAvail.Slots) {
		return false, nil
	}
	dayAvail.Slots = append(dayAvail.Slots[:index], dayAvail.Slots[index+1:]...)
	return true, nil
}

func (r *fakeScheduleRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for t, s := range r.schedules {
		if s.ID == id {
			delete(r.schedules, t)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeScheduleRepo) EnsureIndexes() error { return nil }

// fakeBookingRepo is an in-memory BookingRepository. Reserve and
// ApplyReschedule hold the lock across check and write, mirroring the
// serialization the Mongo transaction plus partial unique index provide.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
	requests *fakeRescheduleRepo
}

func newFakeBookingRepo(requests *fakeRescheduleRepo) *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking), requests: requests}
}

func (r *fakeBookingRepo) conflictingKeyLocked(serviceType models.ServiceType, date string, keys []string, excludeID string) string {
	held := make(map[string]bool)
	for _, b := range r.bookings {
		if b.Type != serviceType || b.Date != date || !b.Active || b.ID == excludeID {
			continue
		}
		for _, k := range b.SlotKeys {
			held[k] = true
		}
	}
	for _, k := range keys {
		if held[k] {
			return k
		}
	}
	return ""
}

func (r *fakeBookingRepo) Reserve(_ context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if taken := r.conflictingKeyLocked(booking.Type, booking.Date, booking.SlotKeys, ""); taken != "" {
		return &bookingRepo.SlotTakenError{Type: booking.Type, Date: booking.Date, SlotKey: taken}
	}
	clone := *booking
	r.bookings[booking.ID] = &clone
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (r *fakeBookingRepo) ListActiveByTypeAndDate(_ context.Context, serviceType models.ServiceType, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Type == serviceType && b.Date == date && b.Active {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListActiveByTypeAndDateRange(_ context.Context, serviceType models.ServiceType, from, to string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Type == serviceType && b.Active && b.Date >= from && b.Date <= to {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByUser(_ context.Context, userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status models.BookingStatus, active bool, cancelReason string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return false, nil
	}
	b.Status = status
	b.Active = active
	if cancelReason != "" {
		b.CancelReason = cancelReason
	}
	b.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *fakeBookingRepo) SetPaymentStatus(_ context.Context, id string, paymentStatus string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return false, nil
	}
	b.PaymentStatus = paymentStatus
	return true, nil
}

func (r *fakeBookingRepo) ApplyReschedule(_ context.Context, booking *models.Booking, date string, slots []models.SlotRange, requestID, reviewedBy, adminNotes string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := models.SlotKeys(slots)
	if taken := r.conflictingKeyLocked(booking.Type, date, keys, booking.ID); taken != "" {
		return &bookingRepo.SlotTakenError{Type: booking.Type, Date: date, SlotKey: taken}
	}
	b, ok := r.bookings[booking.ID]
	if !ok {
		return errors.New("booking disappeared")
	}
	b.Date = date
	b.Slots = append([]models.SlotRange(nil), slots...)
	b.SlotKeys = keys
	b.IsRescheduled = true
	b.UpdatedAt = time.Now().UTC()
	return r.requests.resolveApproved(requestID, reviewedBy, adminNotes)
}

func (r *fakeBookingRepo) EnsureIndexes() error { return nil }

// fakeRescheduleRepo is an in-memory RescheduleRepository.
type fakeRescheduleRepo struct {
	mu       sync.Mutex
	requests map[string]*models.RescheduleRequest
}

func newFakeRescheduleRepo() *fakeRescheduleRepo {
	return &fakeRescheduleRepo{requests: make(map[string]*models.RescheduleRequest)}
}

func (r *fakeRescheduleRepo) Create(_ context.Context, req *models.RescheduleRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.requests {
		if existing.BookingID == req.BookingID && existing.Status == models.ReschedulePending {
			return rescheduleRepo.ErrDuplicatePending
		}
	}
	clone := *req
	r.requests[req.ID] = &clone
	return nil
}

func (r *fakeRescheduleRepo) GetByID(_ context.Context, id string) (*models.RescheduleRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	clone := *req
	return &clone, nil
}

func (r *fakeRescheduleRepo) ListPending(_ context.Context) ([]models.RescheduleRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.RescheduleRequest
	for _, req := range r.requests {
		if req.Status == models.ReschedulePending {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *fakeRescheduleRepo) MarkRejected(_ context.Context, id, reviewedBy, adminNotes string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok || req.Status != models.ReschedulePending {
		return false, nil
	}
	req.Status = models.RescheduleRejected
	req.ReviewedBy = reviewedBy
	req.AdminNotes = adminNotes
	now := time.Now().UTC()
	req.ReviewedAt = &now
	return true, nil
}

func (r *fakeRescheduleRepo) resolveApproved(id, reviewedBy, adminNotes string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok || req.Status != models.ReschedulePending {
		return errors.New("reschedule request is no longer pending")
	}
	req.Status = models.RescheduleApproved
	req.ReviewedBy = reviewedBy
	req.AdminNotes = adminNotes
	now := time.Now().UTC()
	req.ReviewedAt = &now
	return nil
}

func (r *fakeRescheduleRepo) EnsureIndexes() error { return nil }

// recordingPublisher captures published events; failWith makes every publish
// fail, for asserting that notification failures never fail the operation.
type recordingPublisher struct {
	mu       sync.Mutex
	events   []models.BookingEvent
	failWith error
}

func (p *recordingPublisher) PublishBookingEvent(_ context.Context, event models.BookingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failWith != nil {
		return p.failWith
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) kinds() []models.BookingEventKind {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.BookingEventKind, len(p.events))
	for i, e := range p.events {
		out[i] = e.Kind
	}
	return out
}

// testEnv wires the services over the in-memory fakes.
type testEnv struct {
	schedules   *fakeScheduleRepo
	bookings    *fakeBookingRepo
	requests    *fakeRescheduleRepo
	events      *recordingPublisher
	schedule    *DefaultScheduleService
	resolver    *DefaultAvailabilityService
	booking     *DefaultBookingService
	reschedules *DefaultRescheduleService
}

func newTestEnv() *testEnv {
	schedules := newFakeScheduleRepo()
	requests := newFakeRescheduleRepo()
	bookings := newFakeBookingRepo(requests)
	events := &recordingPublisher{}

	resolver := &DefaultAvailabilityService{Schedules: schedules, Bookings: bookings}
	return &testEnv{
		schedules: schedules,
		bookings:  bookings,
		requests:  requests,
		events:    events,
		schedule:  &DefaultScheduleService{Repo: schedules},
		resolver:  resolver,
		booking:   &DefaultBookingService{Repo: bookings, Availability: resolver, Publisher: events},
		reschedules: &DefaultRescheduleService{
			Requests:     requests,
			Bookings:     bookings,
			Availability: resolver,
			Publisher:    events,
		},
	}
}

// weeklyWith builds a full 7-day template with every day disabled except the
// given ones.
func weeklyWith(enabled map[models.Weekday][]models.TimeSlot) []models.DayAvailability {
	weekly := make([]models.DayAvailability, 0, len(models.WeekdayOrder))
	for _, day := range models.WeekdayOrder {
		slots, ok := enabled[day]
		weekly = append(weekly, models.DayAvailability{
			Day:       day,
			IsEnabled: ok,
			Slots:     slots,
		})
	}
	return weekly
}

func slot(start, end string) models.TimeSlot {
	return models.TimeSlot{StartTime: start, EndTime: end, IsEnabled: true}
}
