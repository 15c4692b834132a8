package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ogm710811/stem-cell-API/handlers"
)

// SetupMedicalUnitRoutes registers the medical unit CRUD routes behind the
// session gate passed in by the route setup.
func SetupMedicalUnitRoutes(router *gin.Engine, handler *handlers.MedicalUnitHandler, requireSession gin.HandlerFunc) {
	units := router.Group("/api.stem").Use(requireSession)
	{
		units.POST("/medical-units", handler.CreateMedicalUnit)
		units.GET("/medical-units", handler.GetAllMedicalUnits)
		units.GET("/medical-units/:id", handler.GetMedicalUnitByID)
		units.PUT("/medical-units/:id", handler.UpdateMedicalUnit)
		units.DELETE("/medical-units/:id", handler.DeleteMedicalUnit)
	}
}
