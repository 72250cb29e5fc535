package models

import "time"

// LabValue is a single measured analyte within a lab result.
type LabValue struct {
	Name           string  `bson:"name" json:"name"`
	Value          float64 `bson:"value" json:"value"`
	Unit           string  `bson:"unit,omitempty" json:"unit,omitempty"`
	ReferenceRange string  `bson:"referenceRange,omitempty" json:"referenceRange,omitempty"`
	Flag           string  `bson:"flag,omitempty" json:"flag,omitempty"` // "low", "high", "" for normal
}

// LabResult is a reported laboratory test for a patient.
type LabResult struct {
	ID          string     `bson:"id" json:"id"`
	PatientID   string     `bson:"patientId" json:"patientId"`
	OrderedBy   string     `bson:"orderedBy" json:"orderedBy"` // doctor id
	TestName    string     `bson:"testName" json:"testName"`
	Values      []LabValue `bson:"values" json:"values"`
	Notes       string     `bson:"notes,omitempty" json:"notes,omitempty"`
	CollectedAt time.Time  `bson:"collectedAt" json:"collectedAt"`
	ReportedAt  time.Time  `bson:"reportedAt" json:"reportedAt"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// CreateLabResultRequest is the payload for filing a lab report.
type CreateLabResultRequest struct {
	PatientID   string     `json:"patientId" binding:"required"`
	TestName    string     `json:"testName" binding:"required"`
	Values      []LabValue `json:"values" binding:"required"`
	Notes       string     `json:"notes"`
	CollectedAt time.Time  `json:"collectedAt"`
}
