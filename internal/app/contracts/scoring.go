package contracts

import (
	"context"

	"neuronutrition-service/internal/app/models"
	"neuronutrition-service/internal/pkg/dto/requests"
)

type ScoringUsecase interface {
	CalculateScores(ctx context.Context, request *requests.CalculateScoresRequest) (*models.ScoringResult, error)
}
