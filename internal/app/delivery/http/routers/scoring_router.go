package routers

import (
	"neuronutrition-service/internal/app/delivery/http/middlewares"
	"neuronutrition-service/internal/app/services/core/scoring"

	"github.com/go-chi/chi/v5"
)

func attachScoringRoutes(router chi.Router, middlewares *middlewares.Middlewares, scoringController *scoring.ScoringController) {
	router.Post("/calculate", scoringController.CalculateScores)
}
