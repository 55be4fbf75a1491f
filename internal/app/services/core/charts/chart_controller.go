package charts

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

type ChartController struct {
	Log          *zap.Logger
	ChartUsecase contracts.ChartUsecase
}

func NewChartController(logger *zap.Logger, chartUsecase contracts.ChartUsecase) *ChartController {
	return &ChartController{
		Log:          logger,
		ChartUsecase: chartUsecase,
	}
}

func (ctrl *ChartController) GenerateChart(w http.ResponseWriter, r *http.Request) {
	request := &requests.GenerateChartRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ChartUsecase.GenerateChart(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GenerateChartSuccessMessage, result)
}
