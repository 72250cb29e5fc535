package prescription

import (
	"errors"
	"time"

	prescriptionRepo "caresync/database/repository/prescription"
	"caresync/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound means the prescription does not exist.
	ErrNotFound = errors.New("prescription not found")
	// ErrInvalidStatus means the requested status value is not recognized.
	ErrInvalidStatus = errors.New("invalid prescription status")
)

// PrescriptionService manages medication orders.
type PrescriptionService interface {
	Issue(doctorID string, req models.CreatePrescriptionRequest) (*models.Prescription, error)
	Get(id string) (*models.Prescription, error)
	ListForPatient(patientID string) ([]models.Prescription, error)
	ListForDoctor(doctorID string) ([]models.Prescription, error)
	ListActiveMedications(patientID string) ([]string, error)
	ChangeStatus(id string, status models.PrescriptionStatus) (*models.Prescription, error)
}

// DefaultPrescriptionService is the production implementation.
type DefaultPrescriptionService struct {
	Repo prescriptionRepo.PrescriptionRepository
}

// Issue creates an active prescription under the prescribing doctor.
func (s *DefaultPrescriptionService) Issue(doctorID string, req models.CreatePrescriptionRequest) (*models.Prescription, error) {
	p := &models.Prescription{
		ID:           uuid.NewString(),
		PatientID:    req.PatientID,
		DoctorID:     doctorID,
		Medication:   req.Medication,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		Duration:     req.Duration,
		Instructions: req.Instructions,
		Status:       models.PrescriptionActive,
		IssuedAt:     time.Now(),
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get fetches a single prescription.
func (s *DefaultPrescriptionService) Get(id string) (*models.Prescription, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// ListForPatient returns a patient's prescriptions.
func (s *DefaultPrescriptionService) ListForPatient(patientID string) ([]models.Prescription, error) {
	return s.Repo.ListByPatient(patientID)
}

// ListForDoctor returns prescriptions issued by a doctor.
func (s *DefaultPrescriptionService) ListForDoctor(doctorID string) ([]models.Prescription, error) {
	return s.Repo.ListByDoctor(doctorID)
}

// ListActiveMedications returns the medication names in a patient's active
// prescriptions, used by the AI interaction check.
func (s *DefaultPrescriptionService) ListActiveMedications(patientID string) ([]string, error) {
	active, err := s.Repo.ListActiveByPatient(patientID)
	if err != nil {
		return nil, err
	}
	meds := make([]string, 0, len(active))
	for _, p := range active {
		meds = append(meds, p.Medication)
	}
	return meds, nil
}

// ChangeStatus transitions a prescription's status.
func (s *DefaultPrescriptionService) ChangeStatus(id string, status models.PrescriptionStatus) (*models.Prescription, error) {
	switch status {
	case models.PrescriptionActive, models.PrescriptionCompleted, models.PrescriptionCancelled:
	default:
		return nil, ErrInvalidStatus
	}

	p, err := s.Repo.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}
