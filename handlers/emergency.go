package handlers

import (
	"errors"
	"io"
	"net/http"

	"caresync/middleware"
	"caresync/models"
	"caresync/policy"
	"caresync/services/emergency"
	"caresync/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EmergencyHandler serves emergency contacts and SOS alerts.
type EmergencyHandler struct {
	Emergency emergency.EmergencyService
	Users     user.UserService
}

func NewEmergencyHandler(svc emergency.EmergencyService, users user.UserService) *EmergencyHandler {
	return &EmergencyHandler{Emergency: svc, Users: users}
}

// AddContactHandler stores an emergency contact for the caller.
func (h *EmergencyHandler) AddContactHandler(c *gin.Context) {
	logger := getLogger(c)

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	contact, err := h.Emergency.AddContact(principal.ID, req)
	if err != nil {
		logger.Error("failed to add emergency contact", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add contact"})
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// ListContactsHandler returns the caller's emergency contacts.
func (h *EmergencyHandler) ListContactsHandler(c *gin.Context) {
	logger := getLogger(c)

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	list, err := h.Emergency.ListContacts(principal.ID)
	if err != nil {
		logger.Error("failed to list emergency contacts", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"contacts": []models.EmergencyContact{}})
		return
	}
	if list == nil {
		list = []models.EmergencyContact{}
	}

	c.JSON(http.StatusOK, gin.H{"contacts": list})
}

// RemoveContactHandler deletes one of the caller's contacts.
func (h *EmergencyHandler) RemoveContactHandler(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	contact, err := h.Emergency.GetContact(c.Param("id"))
	if err != nil {
		if errors.Is(err, emergency.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contact"})
		return
	}

	res := policy.Resource{Kind: "contact", PatientID: contact.PatientID}
	if err := policy.Authorize(principal, res, policy.ActionWrite); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}

	if err := h.Emergency.RemoveContact(contact.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove contact"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact removed"})
}

// TriggerSOSHandler fires an emergency alert to the caller's doctors.
func (h *EmergencyHandler) TriggerSOSHandler(c *gin.Context) {
	logger := getLogger(c)

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	// An empty body is a valid SOS with no message or location.
	var req models.SOSRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	patientName := principal.Email
	if u, err := h.Users.GetUserByID(principal.ID); err == nil && u != nil {
		patientName = u.Name
	}

	event, err := h.Emergency.TriggerSOS(principal.ID, patientName, req)
	if err != nil {
		logger.Error("failed to record SOS event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to trigger SOS"})
		return
	}

	c.JSON(http.StatusCreated, event)
}

// ListSOSEventsHandler returns the caller's SOS history.
func (h *EmergencyHandler) ListSOSEventsHandler(c *gin.Context) {
	logger := getLogger(c)

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	list, err := h.Emergency.ListSOSEvents(principal.ID)
	if err != nil {
		logger.Error("failed to list SOS events", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"events": []models.SOSEvent{}})
		return
	}
	if list == nil {
		list = []models.SOSEvent{}
	}

	c.JSON(http.StatusOK, gin.H{"events": list})
}
