package handlers

import (
	"net/http"

	"caresync/middleware"
	"caresync/models"
	"caresync/policy"
	"caresync/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves a doctor's weekly template.
type ScheduleHandler struct {
	Schedules scheduling.ScheduleService
}

func NewScheduleHandler(schedules scheduling.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Schedules: schedules}
}

// GetScheduleHandler returns a doctor's weekly template. Without a
// providerId param it returns the caller's own.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	logger := getLogger(c)

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	providerID := c.Param("providerId")
	if providerID == "" {
		providerID = principal.ID
	}

	schedule, err := h.Schedules.GetSchedule(providerID)
	if err != nil {
		logger.Error("failed to fetch schedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schedule"})
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// UpdateScheduleHandler replaces the authenticated doctor's weekly template.
func (h *ScheduleHandler) UpdateScheduleHandler(c *gin.Context) {
	logger := getLogger(c)

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	res := policy.Resource{Kind: "schedule", DoctorID: principal.ID}
	if err := policy.Authorize(principal, res, policy.ActionWrite); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only doctors manage schedules"})
		return
	}

	var req models.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	schedule, err := h.Schedules.UpdateSchedule(principal.ID, req)
	if err != nil {
		logger.Warn("schedule update rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, schedule)
}
