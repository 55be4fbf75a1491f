package routers

import (
	"neuronutrition-service/internal/app/delivery/http/middlewares"
	"neuronutrition-service/internal/app/services/core/charts"

	"github.com/go-chi/chi/v5"
)

func attachChartRoutes(router chi.Router, middlewares *middlewares.Middlewares, chartController *charts.ChartController) {
	router.Post("/generate", chartController.GenerateChart)
}
