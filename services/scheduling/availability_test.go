package scheduling

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"caresync/models"
)

// ── mock repositories ──

type mockScheduleRepo struct {
	schedules map[string]*models.WeeklySchedule
	err       error
}

func (m *mockScheduleRepo) GetByProvider(providerID string) (*models.WeeklySchedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.schedules[providerID], nil
}

func (m *mockScheduleRepo) Upsert(schedule *models.WeeklySchedule) error {
	if m.schedules == nil {
		m.schedules = map[string]*models.WeeklySchedule{}
	}
	m.schedules[schedule.ProviderID] = schedule
	return nil
}

func (m *mockScheduleRepo) Delete(providerID string) error {
	delete(m.schedules, providerID)
	return nil
}

type mockAppointmentRepo struct {
	appointments []models.Appointment
	err          error
	calls        int
}

func (m *mockAppointmentRepo) Insert(appt *models.Appointment) error { return nil }
func (m *mockAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	return nil, nil
}
func (m *mockAppointmentRepo) ListByProviderBetween(providerID string, from, to time.Time) ([]models.Appointment, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Appointment
	for _, a := range m.appointments {
		if a.ProviderID != providerID {
			continue
		}
		if a.ScheduledAt.Before(from) || a.ScheduledAt.After(to) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}
func (m *mockAppointmentRepo) ListByPatient(patientID string) ([]models.Appointment, error) {
	return nil, nil
}
func (m *mockAppointmentRepo) ListByProvider(providerID string) ([]models.Appointment, error) {
	return nil, nil
}
func (m *mockAppointmentRepo) UpdateStatus(id string, status models.AppointmentStatus, notes string) (*models.Appointment, error) {
	return nil, nil
}
func (m *mockAppointmentRepo) Delete(id string) error { return nil }
func (m *mockAppointmentRepo) DistinctProvidersForPatient(patientID string) ([]string, error) {
	return nil, nil
}

// 2025-06-02 is a Monday.
const testDate = "2025-06-02"

func newService(schedules *mockScheduleRepo, appts *mockAppointmentRepo) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		Schedules:    schedules,
		Appointments: appts,
		Loc:          time.UTC,
	}
}

func weeklyWith(providerID string, day string, rule models.DayRule) *mockScheduleRepo {
	return &mockScheduleRepo{
		schedules: map[string]*models.WeeklySchedule{
			providerID: {
				ProviderID: providerID,
				Days:       map[string]models.DayRule{day: rule},
			},
		},
	}
}

func bookingAt(providerID, date, clock string) models.Appointment {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.UTC)
	if err != nil {
		panic(err)
	}
	return models.Appointment{
		ProviderID:  providerID,
		ScheduledAt: t,
		Status:      models.AppointmentConfirmed,
	}
}

// ── tests ──

func TestGetFreeSlots_NoTemplate(t *testing.T) {
	svc := newService(&mockScheduleRepo{}, &mockAppointmentRepo{})

	slots, err := svc.GetFreeSlots("doc-1", testDate)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots for provider without template, got %v", slots)
	}
}

func TestGetFreeSlots_DayDisabled(t *testing.T) {
	schedules := weeklyWith("doc-1", "mon", models.DayRule{Enabled: false, Start: "09:00", End: "17:00"})
	svc := newService(schedules, &mockAppointmentRepo{})

	slots, err := svc.GetFreeSlots("doc-1", testDate)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots on a disabled day, got %v", slots)
	}
}

func TestGetFreeSlots_DayNotInTemplate(t *testing.T) {
	// Template only covers Tuesday; the target date is a Monday.
	schedules := weeklyWith("doc-1", "tue", models.DayRule{Enabled: true, Start: "09:00", End: "17:00"})
	svc := newService(schedules, &mockAppointmentRepo{})

	slots, err := svc.GetFreeSlots("doc-1", testDate)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots for uncovered weekday, got %v", slots)
	}
}

func TestGetFreeSlots_EndNotAfterStart(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
	}{
		{"equal", "09:00", "09:00"},
		{"inverted", "17:00", "09:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			schedules := weeklyWith("doc-1", "mon", models.DayRule{Enabled: true, Start: tc.start, End: tc.end})
			appts := &mockAppointmentRepo{appointments: []models.Appointment{
				bookingAt("doc-1", testDate, "09:00"),
			}}
			svc := newService(schedules, appts)

			slots, err := svc.GetFreeSlots("doc-1", testDate)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(slots) != 0 {
				t.Errorf("expected no slots when end <= start, got %v", slots)
			}
		})
	}
}

func TestGetFreeSlots_FullHourWindow(t *testing.T) {
	schedules := weeklyWith("doc-1", "mon", models.DayRule{Enabled: true, Start: "09:00", End: "10:00"})
	svc := newService(schedules, &mockAppointmentRepo{})

	slots, err := svc.GetFreeSlots("doc-1", testDate)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{"9:00 AM", "9:30 AM"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("expected %v, got %v", want, slots)
	}
}

func TestGetFreeSlots_RemainderDropped(t *testing.T) {
	// A 45-minute window holds exactly one 30-minute slot; the trailing
	// 15 minutes never become a short slot.
	schedules := weeklyWith("doc-1", "mon", models.DayRule{Enabled: true, Start: "09:00", End: "09:45"})
	svc := newService(schedules, &mockAppointmentRepo{})

	slots, err := svc.GetFreeSlots("doc-1", testDate)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{"9:00 AM"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("expected %v, got %v", want, slots)
	}
}

func TestGetFreeSlots_ExactThirtyMinuteWindow(t *testing.T) {
	schedules := weeklyWith("doc-1", "mon", models.DayRule{Enabled: true, Start: "09:00", End: "09:30"})
	svc := newService(schedules, &mockAppointmentRepo{})

	slots, err := svc.GetFreeSlots("doc-1", testDate)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{"9:00 AM"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("expected exactly one slot, got %v", slots)
	}
}

func TestGetFreeSlots_BookedSlotExcluded(t *testing.T) {
	schedules := weeklyWith("doc-1", "mon", models.DayRule{Enabled: true, Start: "09:00", End: "10:00"})
	appts := &mockAppointmentRepo{appointments: []models.Appointment{
		bookingAt("doc-1", testDate, "09:30"),
	}}
	svc := newService(schedules, appts)

	slots, err := svc.GetFreeSlots("doc-1", testDate)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{"9:00 AM"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("expected %v, got %v", want, slots)
	}
}

func TestGetFreeSlots_BookingAtWindowStart(t *testing.T) {
	schedules := weeklyWith("doc-1", "mon", models.DayRule{Enabled: true, Start: "09:00", End: "10:00"})
	appts := &mockAppointmentRepo{appointments: []models.Appointment{
		bookingAt("doc-1", testDate, "09:00"),
	}}
	svc := newService(schedules, appts)

	slots, err := svc.GetFreeSlots("doc-1", testDate)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{"9:30 AM"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("expected %v, got %v", want, slots)
	}
}

func TestGetFreeSlots_DuplicateBookingsDeduplicated(t *testing.T) {
	schedules := weeklyWith("doc-1", "mon", models.DayRule{Enabled: true, Start: "09:00", End: "10:30"})
	appts := &mockAppointmentRepo{appointments: []models.Appointment{
		bookingAt("doc-1", testDate, "09:30"),
		bookingAt("doc-1", testDate, "09:30"),
	}}
	svc := newService(schedules, appts)

	slots, err := svc.GetFreeSlots("doc-1", testDate)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{"9:00 AM", "10:00 AM"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("expected %v, got %v", want, slots)
	}
}

func TestGetFreeSlots_OtherDateBookingsIgnored(t *testing.T) {
	schedules := weeklyWith("doc-1", "mon", models.DayRule{Enabled: true, Start: "09:00", End: "10:00"})
	appts := &mockAppointmentRepo{appointments: []models.Appointment{
		bookingAt("doc-1", "2025-06-09", "09:00"), // the following Monday
		bookingAt("doc-1", "2025-06-01", "09:30"),
	}}
	svc := newService(schedules, appts)

	slots, err := svc.GetFreeSlots("doc-1", testDate)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{"9:00 AM", "9:30 AM"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("bookings on other dates must not affect the result; got %v", slots)
	}
}

func TestGetFreeSlots_Idempotent(t *testing.T) {
	schedules := weeklyWith("doc-1", "mon", models.DayRule{Enabled: true, Start: "08:00", End: "12:00"})
	appts := &mockAppointmentRepo{appointments: []models.Appointment{
		bookingAt("doc-1", testDate, "10:00"),
	}}
	svc := newService(schedules, appts)

	first, err := svc.GetFreeSlots("doc-1", testDate)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := svc.GetFreeSlots("doc-1", testDate)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs must yield identical output: %v vs %v", first, second)
	}
	if appts.calls != 2 {
		t.Errorf("expected a fresh booking read per invocation, got %d", appts.calls)
	}
}

func TestGetFreeSlots_AscendingOrder(t *testing.T) {
	schedules := weeklyWith("doc-1", "mon", models.DayRule{Enabled: true, Start: "08:00", End: "14:00"})
	svc := newService(schedules, &mockAppointmentRepo{})

	slots, err := svc.GetFreeSlots("doc-1", testDate)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(slots) != 12 {
		t.Fatalf("expected 12 slots for a 6-hour window, got %d", len(slots))
	}
	// Spot-check the noon crossover keeps AM before PM.
	if slots[7] != "11:30 AM" || slots[8] != "12:00 PM" {
		t.Errorf("unexpected noon ordering: %v", slots[7:9])
	}
}

func TestGetFreeSlots_MalformedRuleTimes(t *testing.T) {
	schedules := weeklyWith("doc-1", "mon", models.DayRule{Enabled: true, Start: "nine", End: "10:00"})
	svc := newService(schedules, &mockAppointmentRepo{})

	slots, err := svc.GetFreeSlots("doc-1", testDate)
	if err != nil {
		t.Fatalf("malformed rule must not error, got %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots for malformed rule, got %v", slots)
	}
}

func TestGetFreeSlots_UnparseableDate(t *testing.T) {
	schedules := weeklyWith("doc-1", "mon", models.DayRule{Enabled: true, Start: "09:00", End: "10:00"})
	svc := newService(schedules, &mockAppointmentRepo{})

	slots, err := svc.GetFreeSlots("doc-1", "not-a-date")
	if err != nil {
		t.Fatalf("unparseable date must not error, got %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots for unparseable date, got %v", slots)
	}
}

func TestGetFreeSlots_ScheduleStoreFailure(t *testing.T) {
	schedules := &mockScheduleRepo{err: errors.New("connection reset")}
	svc := newService(schedules, &mockAppointmentRepo{})

	if _, err := svc.GetFreeSlots("doc-1", testDate); err == nil {
		t.Fatal("expected store failure to propagate")
	}
}

func TestGetFreeSlots_BookingStoreFailure(t *testing.T) {
	schedules := weeklyWith("doc-1", "mon", models.DayRule{Enabled: true, Start: "09:00", End: "10:00"})
	appts := &mockAppointmentRepo{err: errors.New("connection reset")}
	svc := newService(schedules, appts)

	if _, err := svc.GetFreeSlots("doc-1", testDate); err == nil {
		t.Fatal("expected store failure to propagate")
	}
}

func TestGetFreeSlots_ZoneIsInjected(t *testing.T) {
	// A booking stored in UTC must exclude the local-time slot it lands on
	// in the clinic zone, not its UTC clock time.
	nairobi := time.FixedZone("EAT", 3*60*60)
	schedules := weeklyWith("doc-1", "mon", models.DayRule{Enabled: true, Start: "09:00", End: "10:00"})

	booked := time.Date(2025, time.June, 2, 6, 30, 0, 0, time.UTC) // 09:30 EAT
	appts := &mockAppointmentRepo{appointments: []models.Appointment{{
		ProviderID:  "doc-1",
		ScheduledAt: booked,
		Status:      models.AppointmentConfirmed,
	}}}

	svc := &DefaultAvailabilityService{Schedules: schedules, Appointments: appts, Loc: nairobi}
	slots, err := svc.GetFreeSlots("doc-1", testDate)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{"9:00 AM"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("expected %v, got %v", want, slots)
	}
}
