package routers

import (
	"time"

	"neuronutrition-service/internal/app/config"
	"neuronutrition-service/internal/app/delivery/http/middlewares"
	"neuronutrition-service/internal/app/services/core/assignments"
	"neuronutrition-service/internal/app/services/core/charts"
	"neuronutrition-service/internal/app/services/core/patients"
	"neuronutrition-service/internal/app/services/core/scoring"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	scoringController *scoring.ScoringController,
	chartController *charts.ChartController,
	assignmentController *assignments.AssignmentController,
	patientController *patients.PatientController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/scores", func(r chi.Router) {
			attachScoringRoutes(r, middlewares, scoringController)
		})

		r.Route("/charts", func(r chi.Router) {
			attachChartRoutes(r, middlewares, chartController)
		})

		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, middlewares, assignmentController, patientController)
		})
	})
}
