package scoring

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"neuronutrition-service/internal/app/contracts"
	"neuronutrition-service/internal/pkg/constvars"
	"neuronutrition-service/internal/pkg/dto/requests"
	"neuronutrition-service/internal/pkg/exceptions"
	"neuronutrition-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ScoringController struct {
	Log            *zap.Logger
	ScoringUsecase contracts.ScoringUsecase
}

func NewScoringController(logger *zap.Logger, scoringUsecase contracts.ScoringUsecase) *ScoringController {
	return &ScoringController{
		Log:            logger,
		ScoringUsecase: scoringUsecase,
	}
}

func (ctrl *ScoringController) CalculateScores(w http.ResponseWriter, r *http.Request) {
	request := &requests.CalculateScoresRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ScoringUsecase.CalculateScores(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CalculateScoresSuccessMessage, result)
}
