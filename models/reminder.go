package models

import "time"

// Reminder kinds.
const (
	ReminderMedication  = "medication"
	ReminderAppointment = "appointment"
)

// Reminder is a scheduled push notification for a user.
type Reminder struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Kind      string    `bson:"kind" json:"kind"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body,omitempty" json:"body,omitempty"`
	FireAt    time.Time `bson:"fireAt" json:"fireAt"`
	Sent      bool      `bson:"sent" json:"sent"`
	RefID     string    `bson:"refId,omitempty" json:"refId,omitempty"` // prescription or appointment id
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateReminderRequest is the payload for scheduling a reminder.
type CreateReminderRequest struct {
	Kind   string    `json:"kind" binding:"required"`
	Title  string    `json:"title" binding:"required"`
	Body   string    `json:"body"`
	FireAt time.Time `json:"fireAt" binding:"required"`
	RefID  string    `json:"refId"`
}

// ReminderPayload is the asynq task payload for a scheduled reminder.
type ReminderPayload struct {
	ReminderID string `json:"reminderId"`
	UserID     string `json:"userId"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	FireDate   string `json:"fireDate"`
}
