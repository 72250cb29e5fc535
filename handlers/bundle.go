package handlers

import (
	userRepoPkg "caresync/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc

	// User endpoints
	GetProfileHandler     gin.HandlerFunc
	UpdateProfileHandler  gin.HandlerFunc
	UpdatePasswordHandler gin.HandlerFunc
	RevokeTokenHandler    gin.HandlerFunc
	DeleteAccountHandler  gin.HandlerFunc
	ListDoctorsHandler    gin.HandlerFunc

	// Scheduling endpoints
	GetFreeSlotsHandler   gin.HandlerFunc
	GetScheduleHandler    gin.HandlerFunc
	UpdateScheduleHandler gin.HandlerFunc

	// Appointment endpoints
	BookAppointmentHandler         gin.HandlerFunc
	ListAppointmentsHandler        gin.HandlerFunc
	GetAppointmentHandler          gin.HandlerFunc
	UpdateAppointmentStatusHandler gin.HandlerFunc

	// Medical record endpoints
	CreateRecordHandler gin.HandlerFunc
	ListRecordsHandler  gin.HandlerFunc
	GetRecordHandler    gin.HandlerFunc

	// Lab result endpoints
	CreateLabResultHandler gin.HandlerFunc
	ListLabResultsHandler  gin.HandlerFunc
	GetLabResultHandler    gin.HandlerFunc

	// Prescription endpoints
	IssuePrescriptionHandler        gin.HandlerFunc
	ListPrescriptionsHandler        gin.HandlerFunc
	GetPrescriptionHandler          gin.HandlerFunc
	UpdatePrescriptionStatusHandler gin.HandlerFunc

	// Emergency endpoints
	AddContactHandler    gin.HandlerFunc
	ListContactsHandler  gin.HandlerFunc
	RemoveContactHandler gin.HandlerFunc
	TriggerSOSHandler    gin.HandlerFunc
	ListSOSEventsHandler gin.HandlerFunc

	// Reminder endpoints
	CreateReminderHandler gin.HandlerFunc
	ListRemindersHandler  gin.HandlerFunc
	DeleteReminderHandler gin.HandlerFunc

	// Assistant endpoints
	AnalyzeSymptomsHandler   gin.HandlerFunc
	LabInsightHandler        gin.HandlerFunc
	CheckInteractionsHandler gin.HandlerFunc
	ChatHandler              gin.HandlerFunc
}
