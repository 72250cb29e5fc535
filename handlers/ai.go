package handlers

import (
	"errors"
	"io"
	"net/http"

	"caresync/middleware"
	"caresync/models"
	"caresync/policy"
	ai "caresync/services/intelligence"
	"caresync/services/prescription"
	"caresync/services/records"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIHandler serves the assistant endpoints: symptom analysis, lab insights,
// interaction checks and chat.
type AIHandler struct {
	AI            ai.AIService
	Records       records.RecordService
	Prescriptions prescription.PrescriptionService
}

func NewAIHandler(svc ai.AIService, rec records.RecordService, rx prescription.PrescriptionService) *AIHandler {
	return &AIHandler{AI: svc, Records: rec, Prescriptions: rx}
}

// AnalyzeSymptomsHandler returns possible causes and urgency for symptoms.
func (h *AIHandler) AnalyzeSymptomsHandler(c *gin.Context) {
	logger := getLogger(c)

	if _, ok := middleware.PrincipalFrom(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.SymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	analysis, err := h.AI.AnalyzeSymptoms(c.Request.Context(), req)
	if err != nil {
		logger.Error("symptom analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Assistant is unavailable"})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// LabInsightHandler summarizes a stored lab result in plain language. The
// caller must be allowed to read the result.
func (h *AIHandler) LabInsightHandler(c *gin.Context) {
	logger := getLogger(c)

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.LabInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Records.GetLabResult(req.LabResultID)
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lab result not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch lab result"})
		return
	}

	res := policy.Resource{Kind: "lab", PatientID: result.PatientID, DoctorID: result.OrderedBy}
	if err := policy.Authorize(principal, res, policy.ActionRead); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lab result not found"})
		return
	}

	insight, err := h.AI.SummarizeLabResult(c.Request.Context(), result)
	if err != nil {
		logger.Error("lab insight failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Assistant is unavailable"})
		return
	}

	c.JSON(http.StatusOK, insight)
}

// CheckInteractionsHandler flags risky medication pairs. With no explicit
// list the caller's active prescriptions are used.
func (h *AIHandler) CheckInteractionsHandler(c *gin.Context) {
	logger := getLogger(c)

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Medications []string `json:"medications"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	meds := req.Medications
	if len(meds) == 0 {
		var err error
		meds, err = h.Prescriptions.ListActiveMedications(principal.ID)
		if err != nil {
			logger.Error("failed to load active medications", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load medications"})
			return
		}
	}
	if len(meds) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least two medications are required"})
		return
	}

	report, err := h.AI.CheckInteractions(c.Request.Context(), meds)
	if err != nil {
		logger.Error("interaction check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Assistant is unavailable"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// ChatHandler runs one turn of the health assistant conversation.
func (h *AIHandler) ChatHandler(c *gin.Context) {
	logger := getLogger(c)

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.AI.Chat(c.Request.Context(), principal.ID, req)
	if err != nil {
		logger.Error("assistant chat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Assistant is unavailable"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
