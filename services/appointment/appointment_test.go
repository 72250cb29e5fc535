package appointment

import (
	"errors"
	"testing"
	"time"

	appointmentRepo "caresync/database/repository/appointment"
	"caresync/models"
)

type stubAvailability struct {
	slots []string
	err   error
}

func (s *stubAvailability) GetFreeSlots(providerID, date string) ([]string, error) {
	return s.slots, s.err
}

type stubApptRepo struct {
	inserted  *models.Appointment
	insertErr error
	byID      map[string]*models.Appointment
	updated   *models.Appointment
}

func (s *stubApptRepo) Insert(appt *models.Appointment) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = appt
	return nil
}
func (s *stubApptRepo) GetByID(id string) (*models.Appointment, error) {
	return s.byID[id], nil
}
func (s *stubApptRepo) ListByProviderBetween(providerID string, from, to time.Time) ([]models.Appointment, error) {
	return nil, nil
}
func (s *stubApptRepo) ListByPatient(patientID string) ([]models.Appointment, error) {
	return nil, nil
}
func (s *stubApptRepo) ListByProvider(providerID string) ([]models.Appointment, error) {
	return nil, nil
}
func (s *stubApptRepo) UpdateStatus(id string, status models.AppointmentStatus, notes string) (*models.Appointment, error) {
	a := *s.byID[id]
	a.Status = status
	a.Notes = notes
	s.updated = &a
	return &a, nil
}
func (s *stubApptRepo) Delete(id string) error { return nil }
func (s *stubApptRepo) DistinctProvidersForPatient(patientID string) ([]string, error) {
	return nil, nil
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func TestBook_SlotOnGrid(t *testing.T) {
	repo := &stubApptRepo{}
	svc := &DefaultAppointmentService{
		Repo:         repo,
		Availability: &stubAvailability{slots: []string{"9:00 AM", "9:30 AM"}},
		Loc:          time.UTC,
	}

	appt, err := svc.Book("pat-1", models.BookAppointmentRequest{
		ProviderID: "doc-1",
		Date:       futureDate(),
		Time:       "09:30",
		Reason:     "checkup",
	})
	if err != nil {
		t.Fatalf("expected booking to succeed, got %v", err)
	}
	if appt.Status != models.AppointmentPending {
		t.Errorf("new appointments start pending, got %s", appt.Status)
	}
	if repo.inserted == nil || repo.inserted.ProviderID != "doc-1" {
		t.Error("appointment was not persisted")
	}
}

func TestBook_SlotNotOnGrid(t *testing.T) {
	svc := &DefaultAppointmentService{
		Repo:         &stubApptRepo{},
		Availability: &stubAvailability{slots: []string{"9:00 AM"}},
		Loc:          time.UTC,
	}

	_, err := svc.Book("pat-1", models.BookAppointmentRequest{
		ProviderID: "doc-1",
		Date:       futureDate(),
		Time:       "11:00",
	})
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("expected ErrSlotUnavailable, got %v", err)
	}
}

func TestBook_RaceLosesToUniqueIndex(t *testing.T) {
	svc := &DefaultAppointmentService{
		Repo:         &stubApptRepo{insertErr: appointmentRepo.ErrSlotTaken},
		Availability: &stubAvailability{slots: []string{"9:00 AM"}},
		Loc:          time.UTC,
	}

	_, err := svc.Book("pat-1", models.BookAppointmentRequest{
		ProviderID: "doc-1",
		Date:       futureDate(),
		Time:       "09:00",
	})
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}
}

func TestBook_PastTimeRejected(t *testing.T) {
	svc := &DefaultAppointmentService{
		Repo:         &stubApptRepo{},
		Availability: &stubAvailability{slots: []string{"9:00 AM"}},
		Loc:          time.UTC,
	}

	_, err := svc.Book("pat-1", models.BookAppointmentRequest{
		ProviderID: "doc-1",
		Date:       "2020-01-06",
		Time:       "09:00",
	})
	if err == nil {
		t.Fatal("expected past booking to be rejected")
	}
}

func TestChangeStatus_Transitions(t *testing.T) {
	cases := []struct {
		name  string
		from  models.AppointmentStatus
		to    models.AppointmentStatus
		role  string
		allow bool
	}{
		{"doctor confirms pending", models.AppointmentPending, models.AppointmentConfirmed, "doctor", true},
		{"patient confirms pending", models.AppointmentPending, models.AppointmentConfirmed, "patient", false},
		{"doctor completes confirmed", models.AppointmentConfirmed, models.AppointmentCompleted, "doctor", true},
		{"doctor completes pending", models.AppointmentPending, models.AppointmentCompleted, "doctor", false},
		{"patient cancels pending", models.AppointmentPending, models.AppointmentCancelled, "patient", true},
		{"doctor cancels confirmed", models.AppointmentConfirmed, models.AppointmentCancelled, "doctor", true},
		{"cancel completed", models.AppointmentCompleted, models.AppointmentCancelled, "patient", false},
		{"revive cancelled", models.AppointmentCancelled, models.AppointmentConfirmed, "doctor", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubApptRepo{byID: map[string]*models.Appointment{
				"app-1": {ID: "app-1", Status: tc.from},
			}}
			svc := &DefaultAppointmentService{Repo: repo, Availability: &stubAvailability{}, Loc: time.UTC}

			_, err := svc.ChangeStatus("app-1", tc.role, tc.to, "")
			if tc.allow && err != nil {
				t.Errorf("expected transition to succeed, got %v", err)
			}
			if !tc.allow && !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("expected ErrInvalidTransition, got %v", err)
			}
		})
	}
}
