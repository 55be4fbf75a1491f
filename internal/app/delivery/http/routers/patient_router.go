package routers

import (
	"neuronutrition-service/internal/app/delivery/http/middlewares"
	"neuronutrition-service/internal/app/services/core/assignments"
	"neuronutrition-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	assignmentController *assignments.AssignmentController,
	patientController *patients.PatientController,
) {
	router.Route("/{patient_id}", func(r chi.Router) {
		r.Post("/identification", patientController.CompleteIdentification)

		r.Route("/assignments", func(r chi.Router) {
			r.Post("/", assignmentController.AssignQuestionnaires)
			r.Get("/eligibility", assignmentController.CheckEligibility)
			r.Get("/summary", assignmentController.GetAssignmentSummary)
		})
	})
}
