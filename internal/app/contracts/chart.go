package contracts

import (
	"context"

	"neuronutrition-service/internal/app/models"
	"neuronutrition-service/internal/pkg/dto/requests"
)

type ChartUsecase interface {
	GenerateChart(ctx context.Context, request *requests.GenerateChartRequest) (*models.ChartDescriptor, error)
}
