package emergency

import (
	"context"
	"errors"
	"time"

	appointmentRepo "caresync/database/repository/appointment"
	emergencyRepo "caresync/database/repository/emergency"
	"caresync/models"
	"caresync/services/notification"
	"caresync/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound means the emergency contact does not exist.
var ErrNotFound = errors.New("emergency contact not found")

// EmergencyService manages emergency contacts and SOS alerts.
type EmergencyService interface {
	AddContact(patientID string, req models.CreateContactRequest) (*models.EmergencyContact, error)
	GetContact(id string) (*models.EmergencyContact, error)
	ListContacts(patientID string) ([]models.EmergencyContact, error)
	RemoveContact(id string) error
	// TriggerSOS records the event and pushes an alert to every doctor the
	// patient has booked with. Push failures are logged, never fatal.
	TriggerSOS(patientID, patientName string, req models.SOSRequest) (*models.SOSEvent, error)
	ListSOSEvents(patientID string) ([]models.SOSEvent, error)
}

// DefaultEmergencyService is the production implementation.
type DefaultEmergencyService struct {
	Repo         emergencyRepo.EmergencyRepository
	Appointments appointmentRepo.AppointmentRepository
	Notifier     notification.NotificationService
}

// AddContact stores a new emergency contact for the patient.
func (s *DefaultEmergencyService) AddContact(patientID string, req models.CreateContactRequest) (*models.EmergencyContact, error) {
	contact := &models.EmergencyContact{
		ID:        uuid.NewString(),
		PatientID: patientID,
		Name:      req.Name,
		Relation:  req.Relation,
		Phone:     req.Phone,
		Priority:  req.Priority,
	}
	if err := s.Repo.CreateContact(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// GetContact fetches a single emergency contact.
func (s *DefaultEmergencyService) GetContact(id string) (*models.EmergencyContact, error) {
	contact, err := s.Repo.GetContact(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrNotFound
	}
	return contact, nil
}

// ListContacts returns the patient's contacts ordered by priority.
func (s *DefaultEmergencyService) ListContacts(patientID string) ([]models.EmergencyContact, error) {
	return s.Repo.ListContacts(patientID)
}

// RemoveContact deletes an emergency contact.
func (s *DefaultEmergencyService) RemoveContact(id string) error {
	return s.Repo.DeleteContact(id)
}

// TriggerSOS records the event and alerts the patient's doctors.
func (s *DefaultEmergencyService) TriggerSOS(patientID, patientName string, req models.SOSRequest) (*models.SOSEvent, error) {
	logger := utils.GetLogger()

	event := &models.SOSEvent{
		ID:          uuid.NewString(),
		PatientID:   patientID,
		Message:     req.Message,
		Location:    req.Location,
		TriggeredAt: time.Now(),
	}

	doctorIDs, err := s.Appointments.DistinctProvidersForPatient(patientID)
	if err != nil {
		logger.Error("TriggerSOS: failed to resolve doctors", zap.Error(err))
		doctorIDs = nil
	}

	title := "Emergency SOS"
	body := patientName + " triggered an emergency alert"
	if req.Location != "" {
		body += " near " + req.Location
	}
	data := map[string]string{
		"type":      "sos",
		"patientId": patientID,
		"eventId":   event.ID,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, doctorID := range doctorIDs {
		if err := s.Notifier.SendPush(ctx, doctorID, title, body, data); err != nil {
			logger.Warn("TriggerSOS: push failed", zap.String("doctorId", doctorID), zap.Error(err))
			continue
		}
		event.Notified = append(event.Notified, doctorID)
	}

	if err := s.Repo.RecordSOS(event); err != nil {
		return nil, err
	}
	return event, nil
}

// ListSOSEvents returns the patient's SOS history.
func (s *DefaultEmergencyService) ListSOSEvents(patientID string) ([]models.SOSEvent, error) {
	return s.Repo.ListSOSEvents(patientID)
}
