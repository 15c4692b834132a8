package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ogm710811/stem-cell-API/config"
	"github.com/ogm710811/stem-cell-API/controllers"
	"github.com/ogm710811/stem-cell-API/handlers"
	"github.com/ogm710811/stem-cell-API/middlewares"
	"github.com/ogm710811/stem-cell-API/repositories"
	"github.com/ogm710811/stem-cell-API/services"
	"github.com/ogm710811/stem-cell-API/sessions"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(config *config.AppConfig, db *mongo.Database, store sessions.Store) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	userRepo := repositories.NewUserRepository(db)
	countryRepo := repositories.NewCountryRepository(db)
	medicalUnitRepo := repositories.NewMedicalUnitRepository(db)
	patientRepo := repositories.NewPatientRepository(db)

	userService := services.NewUserService(userRepo)
	countryService := services.NewCountryService(countryRepo)
	medicalUnitService := services.NewMedicalUnitService(medicalUnitRepo)
	patientService := services.NewPatientService(patientRepo)

	authHandler := handlers.NewAuthHandler(userService, store)
	countryHandler := handlers.NewCountryHandler(countryService)
	medicalUnitHandler := handlers.NewMedicalUnitHandler(medicalUnitService)
	patientHandler := handlers.NewPatientHandler(patientService)

	// Two session gates, matching the historical rejection codes: entity
	// CRUD rejects with 403, report routes with 401.
	crudGate := middlewares.RequireSession(store, userService, http.StatusForbidden)
	reportGate := middlewares.RequireSession(store, userService, http.StatusUnauthorized)

	// Register routes
	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupCountryRoutes(router, countryHandler, crudGate)
	controllers.SetupMedicalUnitRoutes(router, medicalUnitHandler, crudGate)
	controllers.SetupPatientRoutes(router, patientHandler, crudGate, reportGate)

	controllers.SetupRootRoute(router)

	return router
}
