package recordsRepo

import "caresync/models"

// RecordRepository defines persistence operations for medical records.
type RecordRepository interface {
	Create(record *models.MedicalRecord) error
	GetByID(id string) (*models.MedicalRecord, error)
	ListByPatient(patientID string) ([]models.MedicalRecord, error)
	Delete(id string) error
}

// LabRepository defines persistence operations for lab results.
type LabRepository interface {
	Create(result *models.LabResult) error
	GetByID(id string) (*models.LabResult, error)
	ListByPatient(patientID string) ([]models.LabResult, error)
	Delete(id string) error
}
