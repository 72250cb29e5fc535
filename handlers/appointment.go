package handlers

import (
	"errors"
	"net/http"

	"caresync/middleware"
	"caresync/models"
	"caresync/policy"
	"caresync/services/appointment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves booking and lifecycle endpoints.
type AppointmentHandler struct {
	Appointments appointment.AppointmentService
}

func NewAppointmentHandler(appointments appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Appointments: appointments}
}

// BookHandler books a free slot for the authenticated patient.
func (h *AppointmentHandler) BookHandler(c *gin.Context) {
	logger := getLogger(c)

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if principal.Role != models.RolePatient {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only patients book appointments"})
		return
	}

	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appt, err := h.Appointments.Book(principal.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, appointment.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "Slot is not available"})
		case errors.Is(err, appointment.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Slot was just booked, pick another"})
		default:
			logger.Warn("booking failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, appt)
}

// ListHandler returns the caller's appointments, patient or doctor side.
func (h *AppointmentHandler) ListHandler(c *gin.Context) {
	logger := getLogger(c)

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var (
		appts []models.Appointment
		err   error
	)
	if principal.Role == models.RoleDoctor {
		appts, err = h.Appointments.ListForProvider(principal.ID)
	} else {
		appts, err = h.Appointments.ListForPatient(principal.ID)
	}
	if err != nil {
		logger.Error("failed to list appointments", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"appointments": []models.Appointment{}})
		return
	}
	if appts == nil {
		appts = []models.Appointment{}
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// GetHandler returns one appointment if the caller is a party to it.
func (h *AppointmentHandler) GetHandler(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appt, err := h.Appointments.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	res := policy.Resource{Kind: "appointment", PatientID: appt.PatientID, DoctorID: appt.ProviderID}
	if err := policy.Authorize(principal, res, policy.ActionRead); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	c.JSON(http.StatusOK, appt)
}

// UpdateStatusHandler applies a lifecycle transition.
func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appt, err := h.Appointments.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	res := policy.Resource{Kind: "appointment", PatientID: appt.PatientID, DoctorID: appt.ProviderID}
	if err := policy.Authorize(principal, res, policy.ActionWrite); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your appointment"})
		return
	}

	var req struct {
		Status models.AppointmentStatus `json:"status" binding:"required"`
		Notes  string                   `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Appointments.ChangeStatus(appt.ID, principal.Role, req.Status, req.Notes)
	if err != nil {
		if errors.Is(err, appointment.ErrInvalidTransition) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status transition not allowed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment"})
		return
	}

	c.JSON(http.StatusOK, updated)
}
