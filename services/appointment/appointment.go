package appointment

import (
	"errors"
	"fmt"
	"time"

	appointmentRepo "caresync/database/repository/appointment"
	"caresync/models"
	"caresync/services/scheduling"
	"caresync/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AppointmentService manages booking and lifecycle of appointments.
type AppointmentService interface {
	Book(patientID string, req models.BookAppointmentRequest) (*models.Appointment, error)
	Get(id string) (*models.Appointment, error)
	ListForPatient(patientID string) ([]models.Appointment, error)
	ListForProvider(providerID string) ([]models.Appointment, error)
	// ChangeStatus applies a transition on behalf of the acting role.
	ChangeStatus(id, actorRole string, status models.AppointmentStatus, notes string) (*models.Appointment, error)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo         appointmentRepo.AppointmentRepository
	Availability scheduling.AvailabilityService
	Loc          *time.Location
}

func (s *DefaultAppointmentService) location() *time.Location {
	if s.Loc != nil {
		return s.Loc
	}
	return time.Local
}

// Book validates the requested time against the doctor's free-slot grid and
// inserts the appointment. The unique (providerId, scheduledAt) index closes
// the window between the free-slot read and the insert.
func (s *DefaultAppointmentService) Book(patientID string, req models.BookAppointmentRequest) (*models.Appointment, error) {
	loc := s.location()

	scheduledAt, err := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.Time, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date or time: %w", err)
	}
	if scheduledAt.Before(time.Now()) {
		return nil, fmt.Errorf("cannot book a time in the past")
	}

	free, err := s.Availability.GetFreeSlots(req.ProviderID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to check availability: %w", err)
	}
	label := scheduledAt.Format("3:04 PM")
	if !contains(free, label) {
		return nil, ErrSlotUnavailable
	}

	appt := &models.Appointment{
		ID:          uuid.NewString(),
		ProviderID:  req.ProviderID,
		PatientID:   patientID,
		ScheduledAt: scheduledAt,
		Reason:      req.Reason,
		Status:      models.AppointmentPending,
	}
	if err := s.Repo.Insert(appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	utils.GetLogger().Info("appointment booked",
		zap.String("appointmentId", appt.ID),
		zap.String("providerId", appt.ProviderID),
		zap.Time("scheduledAt", appt.ScheduledAt),
	)
	return appt, nil
}

// Get fetches a single appointment.
func (s *DefaultAppointmentService) Get(id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, ErrNotFound
	}
	return appt, nil
}

// ListForPatient returns a patient's appointments.
func (s *DefaultAppointmentService) ListForPatient(patientID string) ([]models.Appointment, error) {
	return s.Repo.ListByPatient(patientID)
}

// ListForProvider returns a doctor's appointments.
func (s *DefaultAppointmentService) ListForProvider(providerID string) ([]models.Appointment, error) {
	return s.Repo.ListByProvider(providerID)
}

// ChangeStatus applies a lifecycle transition. Doctors confirm and complete;
// either party cancels. Completed and cancelled are terminal.
func (s *DefaultAppointmentService) ChangeStatus(id, actorRole string, status models.AppointmentStatus, notes string) (*models.Appointment, error) {
	current, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(current.Status, status, actorRole) {
		return nil, ErrInvalidTransition
	}

	appt, err := s.Repo.UpdateStatus(id, status, notes)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, ErrNotFound
	}
	return appt, nil
}

func transitionAllowed(from, to models.AppointmentStatus, actorRole string) bool {
	if from == models.AppointmentCompleted || from == models.AppointmentCancelled {
		return false
	}
	switch to {
	case models.AppointmentConfirmed:
		return actorRole == models.RoleDoctor && from == models.AppointmentPending
	case models.AppointmentCompleted:
		return actorRole == models.RoleDoctor && from == models.AppointmentConfirmed
	case models.AppointmentCancelled:
		return true
	default:
		return false
	}
}

func contains(items []string, v string) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}
