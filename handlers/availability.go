package handlers

import (
	"net/http"

	"caresync/models"
	"caresync/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the free-slot query.
type AvailabilityHandler struct {
	Availability scheduling.AvailabilityService
}

func NewAvailabilityHandler(availability scheduling.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Availability: availability}
}

// GetFreeSlotsHandler returns the free 30-minute slots for a provider on a
// date. A store failure degrades to an empty slot list rather than an error;
// missing query parameters are the only client-facing failure.
func (h *AvailabilityHandler) GetFreeSlotsHandler(c *gin.Context) {
	logger := getLogger(c)

	providerID := c.Query("providerId")
	date := c.Query("date")
	if providerID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing params"})
		return
	}

	slots, err := h.Availability.GetFreeSlots(providerID, date)
	if err != nil {
		logger.Error("availability lookup failed",
			zap.String("providerId", providerID),
			zap.String("date", date),
			zap.Error(err),
		)
		c.JSON(http.StatusOK, models.FreeSlotsResponse{Slots: []string{}})
		return
	}

	c.JSON(http.StatusOK, models.FreeSlotsResponse{Slots: slots})
}
