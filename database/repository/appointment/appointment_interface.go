package appointmentRepo

import (
	"errors"
	"time"

	"caresync/models"
)

// ErrSlotTaken is returned when an insert collides with an existing booking at
// the same provider and scheduled instant.
var ErrSlotTaken = errors.New("appointment slot already taken")

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	// Insert stores a new appointment. Returns ErrSlotTaken when the
	// (providerId, scheduledAt) pair is already booked.
	Insert(appt *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	// ListByProviderBetween returns the provider's appointments whose
	// scheduled instant falls within [from, to], boundaries inclusive.
	ListByProviderBetween(providerID string, from, to time.Time) ([]models.Appointment, error)
	ListByPatient(patientID string) ([]models.Appointment, error)
	ListByProvider(providerID string) ([]models.Appointment, error)
	UpdateStatus(id string, status models.AppointmentStatus, notes string) (*models.Appointment, error)
	Delete(id string) error
	// DistinctProvidersForPatient returns ids of every doctor the patient has
	// booked with.
	DistinctProvidersForPatient(patientID string) ([]string, error)
}
