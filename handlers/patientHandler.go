package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ogm710811/stem-cell-API/middlewares"
	"github.com/ogm710811/stem-cell-API/models"
	"github.com/ogm710811/stem-cell-API/services"
)

type PatientHandler struct {
	service services.PatientService
}

func NewPatientHandler(service services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var in models.PatientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	patient, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("New Patient %s %s created successfully", patient.FirstName, patient.LastName),
		"id":      patient.ID.Hex(),
	})
}

func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	patients, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

// GetPatientByID responds 200 with a null body for a well-formed id that
// matches nothing; only a malformed id is a client error.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	patient, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	var in models.PatientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	id := c.Param("id")
	patient, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Patient %s %s updated successfully", patient.FirstName, patient.LastName),
		"id":      id,
	})
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Patient deleted successfully",
		"id":      id,
	})
}

// SearchByPhone is the canonical "does this patient already exist" lookup.
// The phone number is the unique value patients are searched by; a phone that
// was never stored is a 400 with a not-found message.
func (h *PatientHandler) SearchByPhone(c *gin.Context) {
	phoneNumber := c.Query("phoneNumber")
	patient, err := h.service.FindByPhone(c.Request.Context(), phoneNumber)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if patient == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Sorry, the phone %s does not exist", phoneNumber)})
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) SearchByCondition(c *gin.Context) {
	patients, err := h.service.FindByCondition(c.Request.Context(), c.Query("condition"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *PatientHandler) SearchByProcedure(c *gin.Context) {
	patients, err := h.service.FindByProcedure(c.Request.Context(), c.Query("procedure"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *PatientHandler) SearchByDeliveryMethod(c *gin.Context) {
	patients, err := h.service.FindByDeliveryMethod(c.Request.Context(), c.Query("method"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

// GetConditions returns the sorted condition projection used by the patient
// condition report.
func (h *PatientHandler) GetConditions(c *gin.Context) {
	docs, err := h.service.ListConditions(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Conditions can not be retrieved at this moment", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// GetProcedures returns the sorted procedure projection used by the
// procedures report.
func (h *PatientHandler) GetProcedures(c *gin.Context) {
	docs, err := h.service.ListProcedures(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Procedures can not be retrieved at this moment", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// GetDeliveryMethods returns the sorted delivery method projection used by
// the delivery method report.
func (h *PatientHandler) GetDeliveryMethods(c *gin.Context) {
	docs, err := h.service.ListDeliveryMethods(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Delivery Methods can not be retrieved at this moment", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}
