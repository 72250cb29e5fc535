package handlers

import (
	"errors"
	"net/http"

	"caresync/middleware"
	"caresync/models"
	"caresync/policy"
	"caresync/services/prescription"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PrescriptionHandler serves medication orders.
type PrescriptionHandler struct {
	Prescriptions prescription.PrescriptionService
}

func NewPrescriptionHandler(svc prescription.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{Prescriptions: svc}
}

// IssueHandler creates a prescription; doctors only.
func (h *PrescriptionHandler) IssueHandler(c *gin.Context) {
	logger := getLogger(c)

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res := policy.Resource{Kind: "prescription", PatientID: req.PatientID, DoctorID: principal.ID}
	if err := policy.Authorize(principal, res, policy.ActionWrite); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only doctors issue prescriptions"})
		return
	}

	p, err := h.Prescriptions.Issue(principal.ID, req)
	if err != nil {
		logger.Error("failed to issue prescription", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue prescription"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// ListHandler returns prescriptions scoped by role: patients get their own,
// doctors get the ones they issued (or a patient's via ?patientId=).
func (h *PrescriptionHandler) ListHandler(c *gin.Context) {
	logger := getLogger(c)

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var (
		list []models.Prescription
		err  error
	)
	if principal.Role == models.RoleDoctor {
		if pid := c.Query("patientId"); pid != "" {
			list, err = h.Prescriptions.ListForPatient(pid)
		} else {
			list, err = h.Prescriptions.ListForDoctor(principal.ID)
		}
	} else {
		list, err = h.Prescriptions.ListForPatient(principal.ID)
	}
	if err != nil {
		logger.Error("failed to list prescriptions", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"prescriptions": []models.Prescription{}})
		return
	}

	filtered := []models.Prescription{}
	for _, p := range list {
		res := policy.Resource{Kind: "prescription", PatientID: p.PatientID, DoctorID: p.DoctorID}
		if policy.Authorize(principal, res, policy.ActionRead) == nil {
			filtered = append(filtered, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{"prescriptions": filtered})
}

// GetHandler returns one prescription.
func (h *PrescriptionHandler) GetHandler(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	p, err := h.Prescriptions.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, prescription.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Prescription not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prescription"})
		return
	}

	res := policy.Resource{Kind: "prescription", PatientID: p.PatientID, DoctorID: p.DoctorID}
	if err := policy.Authorize(principal, res, policy.ActionRead); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prescription not found"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdateStatusHandler transitions a prescription's status; only the issuing
// doctor may do it.
func (h *PrescriptionHandler) UpdateStatusHandler(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Status models.PrescriptionStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p, err := h.Prescriptions.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, prescription.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Prescription not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prescription"})
		return
	}

	res := policy.Resource{Kind: "prescription", PatientID: p.PatientID, DoctorID: p.DoctorID}
	if err := policy.Authorize(principal, res, policy.ActionWrite); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to modify this prescription"})
		return
	}

	updated, err := h.Prescriptions.ChangeStatus(p.ID, req.Status)
	if err != nil {
		if errors.Is(err, prescription.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update prescription"})
		return
	}

	c.JSON(http.StatusOK, updated)
}
