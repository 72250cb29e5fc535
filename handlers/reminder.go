package handlers

import (
	"errors"
	"net/http"

	"caresync/middleware"
	"caresync/models"
	"caresync/policy"
	"caresync/services/reminder"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReminderHandler serves scheduled push reminders.
type ReminderHandler struct {
	Reminders reminder.ReminderService
}

func NewReminderHandler(svc reminder.ReminderService) *ReminderHandler {
	return &ReminderHandler{Reminders: svc}
}

// CreateHandler schedules a reminder for the caller.
func (h *ReminderHandler) CreateHandler(c *gin.Context) {
	logger := getLogger(c)

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rem, err := h.Reminders.Create(principal.ID, req)
	if err != nil {
		if errors.Is(err, reminder.ErrInvalidKind) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown reminder kind"})
			return
		}
		logger.Error("failed to create reminder", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rem)
}

// ListHandler returns the caller's reminders.
func (h *ReminderHandler) ListHandler(c *gin.Context) {
	logger := getLogger(c)

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	list, err := h.Reminders.ListForUser(principal.ID)
	if err != nil {
		logger.Error("failed to list reminders", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"reminders": []models.Reminder{}})
		return
	}
	if list == nil {
		list = []models.Reminder{}
	}

	c.JSON(http.StatusOK, gin.H{"reminders": list})
}

// DeleteHandler removes one of the caller's reminders.
func (h *ReminderHandler) DeleteHandler(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rem, err := h.Reminders.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, reminder.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reminder"})
		return
	}

	res := policy.Resource{Kind: "reminder", PatientID: rem.UserID}
	if err := policy.Authorize(principal, res, policy.ActionWrite); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
		return
	}

	if err := h.Reminders.Delete(rem.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reminder"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted"})
}
