package models

import "time"

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

// Appointment is a booked visit between a patient and a doctor.
type Appointment struct {
	ID          string            `bson:"id" json:"id"`
	ProviderID  string            `bson:"providerId" json:"providerId"`
	PatientID   string            `bson:"patientId" json:"patientId"`
	ScheduledAt time.Time         `bson:"scheduledAt" json:"scheduledAt"`
	Reason      string            `bson:"reason,omitempty" json:"reason,omitempty"`
	Status      AppointmentStatus `bson:"status" json:"status"`
	Notes       string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// BookAppointmentRequest is the payload for booking a visit.
type BookAppointmentRequest struct {
	ProviderID string `json:"providerId" binding:"required"`
	Date       string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Time       string `json:"time" binding:"required"` // "HH:MM", 24-hour
	Reason     string `json:"reason"`
}

// FreeSlotsResponse is the availability query response body.
type FreeSlotsResponse struct {
	Slots []string `json:"slots"`
}
