package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ogm710811/stem-cell-API/handlers"
)

// SetupCountryRoutes registers the country CRUD routes behind the session
// gate passed in by the route setup.
func SetupCountryRoutes(router *gin.Engine, handler *handlers.CountryHandler, requireSession gin.HandlerFunc) {
	countries := router.Group("/api.stem").Use(requireSession)
	{
		countries.POST("/countries", handler.CreateCountry)
		countries.GET("/countries", handler.GetAllCountries)
		countries.GET("/countries/:id", handler.GetCountryByID)
		countries.PUT("/countries/:id", handler.UpdateCountry)
		countries.DELETE("/countries/:id", handler.DeleteCountry)
	}
}
