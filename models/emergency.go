package models

import "time"

// EmergencyContact is a person to alert when a patient triggers SOS.
type EmergencyContact struct {
	ID        string    `bson:"id" json:"id"`
	PatientID string    `bson:"patientId" json:"patientId"`
	Name      string    `bson:"name" json:"name"`
	Relation  string    `bson:"relation,omitempty" json:"relation,omitempty"`
	Phone     string    `bson:"phone" json:"phone"`
	Priority  int       `bson:"priority" json:"priority"` // 1 = call first
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateContactRequest is the payload for adding an emergency contact.
type CreateContactRequest struct {
	Name     string `json:"name" binding:"required"`
	Relation string `json:"relation"`
	Phone    string `json:"phone" binding:"required"`
	Priority int    `json:"priority"`
}

// SOSEvent records a triggered emergency alert and who was notified.
type SOSEvent struct {
	ID          string    `bson:"id" json:"id"`
	PatientID   string    `bson:"patientId" json:"patientId"`
	Message     string    `bson:"message,omitempty" json:"message,omitempty"`
	Location    string    `bson:"location,omitempty" json:"location,omitempty"`
	TriggeredAt time.Time `bson:"triggeredAt" json:"triggeredAt"`
	Notified    []string  `bson:"notified,omitempty" json:"notified,omitempty"` // doctor ids that received a push
}

// SOSRequest is the payload for triggering an SOS alert.
type SOSRequest struct {
	Message  string `json:"message"`
	Location string `json:"location"`
}
