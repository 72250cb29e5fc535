package models

import "time"

// MedicalRecord is a clinical note authored by a doctor for a patient.
type MedicalRecord struct {
	ID         string    `bson:"id" json:"id"`
	PatientID  string    `bson:"patientId" json:"patientId"`
	DoctorID   string    `bson:"doctorId" json:"doctorId"`
	Title      string    `bson:"title" json:"title"`
	Category   string    `bson:"category,omitempty" json:"category,omitempty"` // e.g. "consultation", "surgery", "allergy"
	Summary    string    `bson:"summary,omitempty" json:"summary,omitempty"`
	Details    string    `bson:"details,omitempty" json:"details,omitempty"`
	RecordedAt time.Time `bson:"recordedAt" json:"recordedAt"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateRecordRequest is the payload for adding a medical record.
type CreateRecordRequest struct {
	PatientID  string    `json:"patientId" binding:"required"`
	Title      string    `json:"title" binding:"required"`
	Category   string    `json:"category"`
	Summary    string    `json:"summary"`
	Details    string    `json:"details"`
	RecordedAt time.Time `json:"recordedAt"`
}
