package handlers

import (
	"errors"
	"net/http"

	"caresync/middleware"
	"caresync/models"
	"caresync/policy"
	"caresync/services/records"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecordsHandler serves medical records and lab results.
type RecordsHandler struct {
	Records records.RecordService
}

func NewRecordsHandler(svc records.RecordService) *RecordsHandler {
	return &RecordsHandler{Records: svc}
}

// CreateRecordHandler files a clinical note; doctors only.
func (h *RecordsHandler) CreateRecordHandler(c *gin.Context) {
	logger := getLogger(c)

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res := policy.Resource{Kind: "record", PatientID: req.PatientID, DoctorID: principal.ID}
	if err := policy.Authorize(principal, res, policy.ActionWrite); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only doctors create records"})
		return
	}

	record, err := h.Records.CreateRecord(principal.ID, req)
	if err != nil {
		logger.Error("failed to create record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create record"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// ListRecordsHandler returns medical records for a patient. Patients see
// their own; doctors pass ?patientId=.
func (h *RecordsHandler) ListRecordsHandler(c *gin.Context) {
	logger := getLogger(c)

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	patientID := resolvePatientID(c, principal)

	list, err := h.Records.ListRecords(patientID)
	if err != nil {
		logger.Error("failed to list records", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"records": []models.MedicalRecord{}})
		return
	}

	// Doctors only see records they authored for other patients.
	filtered := []models.MedicalRecord{}
	for _, rec := range list {
		res := policy.Resource{Kind: "record", PatientID: rec.PatientID, DoctorID: rec.DoctorID}
		if policy.Authorize(principal, res, policy.ActionRead) == nil {
			filtered = append(filtered, rec)
		}
	}

	c.JSON(http.StatusOK, gin.H{"records": filtered})
}

// GetRecordHandler returns one medical record.
func (h *RecordsHandler) GetRecordHandler(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := h.Records.GetRecord(c.Param("id"))
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch record"})
		return
	}

	res := policy.Resource{Kind: "record", PatientID: record.PatientID, DoctorID: record.DoctorID}
	if err := policy.Authorize(principal, res, policy.ActionRead); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// CreateLabResultHandler files a lab report; doctors only.
func (h *RecordsHandler) CreateLabResultHandler(c *gin.Context) {
	logger := getLogger(c)

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateLabResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res := policy.Resource{Kind: "lab", PatientID: req.PatientID, DoctorID: principal.ID}
	if err := policy.Authorize(principal, res, policy.ActionWrite); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only doctors file lab results"})
		return
	}

	result, err := h.Records.CreateLabResult(principal.ID, req)
	if err != nil {
		logger.Error("failed to create lab result", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lab result"})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListLabResultsHandler returns lab results for a patient.
func (h *RecordsHandler) ListLabResultsHandler(c *gin.Context) {
	logger := getLogger(c)

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	patientID := resolvePatientID(c, principal)

	list, err := h.Records.ListLabResults(patientID)
	if err != nil {
		logger.Error("failed to list lab results", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"labResults": []models.LabResult{}})
		return
	}

	filtered := []models.LabResult{}
	for _, lr := range list {
		res := policy.Resource{Kind: "lab", PatientID: lr.PatientID, DoctorID: lr.OrderedBy}
		if policy.Authorize(principal, res, policy.ActionRead) == nil {
			filtered = append(filtered, lr)
		}
	}

	c.JSON(http.StatusOK, gin.H{"labResults": filtered})
}

// GetLabResultHandler returns one lab result.
func (h *RecordsHandler) GetLabResultHandler(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.Records.GetLabResult(c.Param("id"))
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

	c.JSON(http.StatusOK, result)
}

// resolvePatientID picks the patient scope for list queries: patients are
// always scoped to themselves, doctors may pass ?patientId=.
func resolvePatientID(c *gin.Context, principal policy.Principal) string {
	if principal.Role == models.RoleDoctor {
		if pid := c.Query("patientId"); pid != "" {
			return pid
		}
	}
	return principal.ID
}
