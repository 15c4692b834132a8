package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ogm710811/stem-cell-API/models"
	"github.com/ogm710811/stem-cell-API/services"
)

type CountryHandler struct {
	service services.CountryService
}

func NewCountryHandler(service services.CountryService) *CountryHandler {
	return &CountryHandler{service: service}
}

func (h *CountryHandler) CreateCountry(c *gin.Context) {
	var in models.CountryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	country, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("New Country %s created successfully", country.Name),
		"id":      country.ID.Hex(),
	})
}

func (h *CountryHandler) GetAllCountries(c *gin.Context) {
	countries, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, countries)
}

// GetCountryByID responds 200 with a null body for a well-formed id that
// matches nothing; only a malformed id is a client error.
func (h *CountryHandler) GetCountryByID(c *gin.Context) {
	country, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, country)
}

func (h *CountryHandler) UpdateCountry(c *gin.Context) {
	var in models.CountryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	id := c.Param("id")
	country, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Country %s updated successfully", country.Name),
		"id":      id,
	})
}

func (h *CountryHandler) DeleteCountry(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Country deleted successfully",
		"id":      id,
	})
}
