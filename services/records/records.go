package records

import (
	"errors"
	"time"

	recordsRepo "caresync/database/repository/records"
	"caresync/models"

	"github.com/google/uuid"
)

// ErrNotFound means the requested record or lab result does not exist.
var ErrNotFound = errors.New("record not found")

// RecordService manages medical records and lab results.
type RecordService interface {
	CreateRecord(doctorID string, req models.CreateRecordRequest) (*models.MedicalRecord, error)
	GetRecord(id string) (*models.MedicalRecord, error)
	ListRecords(patientID string) ([]models.MedicalRecord, error)
	DeleteRecord(id string) error

	CreateLabResult(doctorID string, req models.CreateLabResultRequest) (*models.LabResult, error)
	GetLabResult(id string) (*models.LabResult, error)
	ListLabResults(patientID string) ([]models.LabResult, error)
}

// DefaultRecordService is the production implementation.
type DefaultRecordService struct {
	Records recordsRepo.RecordRepository
	Labs    recordsRepo.LabRepository
}

// CreateRecord files a new clinical note under the authoring doctor.
func (s *DefaultRecordService) CreateRecord(doctorID string, req models.CreateRecordRequest) (*models.MedicalRecord, error) {
	recordedAt := req.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	record := &models.MedicalRecord{
		ID:         uuid.NewString(),
		PatientID:  req.PatientID,
		DoctorID:   doctorID,
		Title:      req.Title,
		Category:   req.Category,
		Summary:    req.Summary,
		Details:    req.Details,
		RecordedAt: recordedAt,
	}
	if err := s.Records.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

// GetRecord fetches a single medical record.
func (s *DefaultRecordService) GetRecord(id string) (*models.MedicalRecord, error) {
	record, err := s.Records.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return record, nil
}

// ListRecords returns a patient's medical history.
func (s *DefaultRecordService) ListRecords(patientID string) ([]models.MedicalRecord, error) {
	return s.Records.ListByPatient(patientID)
}

// DeleteRecord removes a medical record.
func (s *DefaultRecordService) DeleteRecord(id string) error {
	return s.Records.Delete(id)
}

// CreateLabResult files a lab report ordered by the doctor.
func (s *DefaultRecordService) CreateLabResult(doctorID string, req models.CreateLabResultRequest) (*models.LabResult, error) {
	collectedAt := req.CollectedAt
	if collectedAt.IsZero() {
		collectedAt = time.Now()
	}

	result := &models.LabResult{
		ID:          uuid.NewString(),
		PatientID:   req.PatientID,
		OrderedBy:   doctorID,
		TestName:    req.TestName,
		Values:      req.Values,
		Notes:       req.Notes,
		CollectedAt: collectedAt,
		ReportedAt:  time.Now(),
	}
	if err := s.Labs.Create(result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetLabResult fetches a single lab result.
func (s *DefaultRecordService) GetLabResult(id string) (*models.LabResult, error) {
	result, err := s.Labs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, ErrNotFound
	}
	return result, nil
}

// ListLabResults returns a patient's lab history.
func (s *DefaultRecordService) ListLabResults(patientID string) ([]models.LabResult, error) {
	return s.Labs.ListByPatient(patientID)
}
