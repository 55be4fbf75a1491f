package assignments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"neuronutrition-service/internal/app/contracts"
	"neuronutrition-service/internal/pkg/constvars"
	"neuronutrition-service/internal/pkg/dto/requests"
	"neuronutrition-service/internal/pkg/exceptions"
	"neuronutrition-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AssignmentController struct {
	Log               *zap.Logger
	AssignmentUsecase contracts.AssignmentUsecase
}

func NewAssignmentController(logger *zap.Logger, assignmentUsecase contracts.AssignmentUsecase) *AssignmentController {
	return &AssignmentController{
		Log:               logger,
		AssignmentUsecase: assignmentUsecase,
	}
}

func (ctrl *AssignmentController) AssignQuestionnaires(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPatientID))
		return
	}

	// The body is optional; an explicit variant is only sent by practitioner
	// tooling.
	request := &requests.AssignQuestionnairesRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil && !errors.Is(err, io.EOF) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AssignmentUsecase.AssignQuestionnaires(ctx, patientID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssignQuestionnairesSuccessMessage, result)
}

func (ctrl *AssignmentController) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPatientID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AssignmentUsecase.CheckEligibility(ctx, patientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssignmentEligibilitySuccessMessage, result)
}

func (ctrl *AssignmentController) GetAssignmentSummary(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPatientID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AssignmentUsecase.GetAssignmentSummary(ctx, patientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssignmentSummarySuccessMessage, result)
}
