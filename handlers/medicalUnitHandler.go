package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ogm710811/stem-cell-API/models"
	"github.com/ogm710811/stem-cell-API/services"
)

type MedicalUnitHandler struct {
	service services.MedicalUnitService
}

func NewMedicalUnitHandler(service services.MedicalUnitService) *MedicalUnitHandler {
	return &MedicalUnitHandler{service: service}
}

func (h *MedicalUnitHandler) CreateMedicalUnit(c *gin.Context) {
	var in models.MedicalUnitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	unit, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("New Medical Unit %s created successfully", unit.Name),
		"id":      unit.ID.Hex(),
	})
}

func (h *MedicalUnitHandler) GetAllMedicalUnits(c *gin.Context) {
	units, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, units)
}

// GetMedicalUnitByID responds 200 with a null body for a well-formed id that
// matches nothing; only a malformed id is a client error.
func (h *MedicalUnitHandler) GetMedicalUnitByID(c *gin.Context) {
	unit, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, unit)
}

func (h *MedicalUnitHandler) UpdateMedicalUnit(c *gin.Context) {
	var in models.MedicalUnitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	id := c.Param("id")
	unit, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Medical Unit %s updated successfully", unit.Name),
		"id":      id,
	})
}

func (h *MedicalUnitHandler) DeleteMedicalUnit(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Medical Unit deleted successfully",
		"id":      id,
	})
}
