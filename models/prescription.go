package models

import "time"

// PrescriptionStatus represents the lifecycle state of a prescription.
type PrescriptionStatus string

const (
	PrescriptionActive    PrescriptionStatus = "active"
	PrescriptionCompleted PrescriptionStatus = "completed"
	PrescriptionCancelled PrescriptionStatus = "cancelled"
)

// Prescription is a medication order issued by a doctor to a patient.
type Prescription struct {
	ID           string             `bson:"id" json:"id"`
	PatientID    string             `bson:"patientId" json:"patientId"`
	DoctorID     string             `bson:"doctorId" json:"doctorId"`
	Medication   string             `bson:"medication" json:"medication"`
	Dosage       string             `bson:"dosage" json:"dosage"`       // e.g. "500mg"
	Frequency    string             `bson:"frequency" json:"frequency"` // e.g. "twice daily"
	Duration     string             `bson:"duration,omitempty" json:"duration,omitempty"`
	Instructions string             `bson:"instructions,omitempty" json:"instructions,omitempty"`
	Status       PrescriptionStatus `bson:"status" json:"status"`
	IssuedAt     time.Time          `bson:"issuedAt" json:"issuedAt"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreatePrescriptionRequest is the payload for issuing a prescription.
type CreatePrescriptionRequest struct {
	PatientID    string `json:"patientId" binding:"required"`
	Medication   string `json:"medication" binding:"required"`
	Dosage       string `json:"dosage" binding:"required"`
	Frequency    string `json:"frequency" binding:"required"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
}
