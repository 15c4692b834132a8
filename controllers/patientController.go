package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ogm710811/stem-cell-API/handlers"
)

// SetupPatientRoutes registers the patient routes. The auth policy is
// explicit per group: CRUD routes sit behind the 403 gate like the other
// entities, the report and filtered-search routes behind the 401 gate, and
// the phone-number search is deliberately public so the client can check
// whether a patient exists before signup of a profile.
func SetupPatientRoutes(router *gin.Engine, handler *handlers.PatientHandler, crudGate, reportGate gin.HandlerFunc) {
	router.GET("/api.stem/patients/search", handler.SearchByPhone)

	reports := router.Group("/api.stem").Use(reportGate)
	{
		reports.GET("/patients/search/condition", handler.SearchByCondition)
		reports.GET("/patients/search/procedure", handler.SearchByProcedure)
		reports.GET("/patients/search/method", handler.SearchByDeliveryMethod)
		reports.GET("/conditions", handler.GetConditions)
		reports.GET("/procedures", handler.GetProcedures)
		reports.GET("/methods", handler.GetDeliveryMethods)
	}

	patients := router.Group("/api.stem").Use(crudGate)
	{
		patients.POST("/patients", handler.CreatePatient)
		patients.GET("/patients", handler.GetAllPatients)
		patients.GET("/patients/:id", handler.GetPatientByID)
		patients.PUT("/patients/:id", handler.UpdatePatient)
		patients.DELETE("/patients/:id", handler.DeletePatient)
	}
}
