package charts

import (
	"context"
	"fmt"
	"time"

	"neuronutrition-service/internal/app/config"
	"neuronutrition-service/internal/app/contracts"
	"neuronutrition-service/internal/app/models"
	"neuronutrition-service/internal/app/services/core/scoring"
	"neuronutrition-service/internal/pkg/constvars"
	"neuronutrition-service/internal/pkg/dto/requests"
	"neuronutrition-service/internal/pkg/exceptions"
	"neuronutrition-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type chartUsecase struct {
	Log            *zap.Logger
	ScoringUsecase contracts.ScoringUsecase
	StorageService contracts.StorageService
	InternalConfig *config.InternalConfig
}

func NewChartUsecase(
	logger *zap.Logger,
	scoringUsecase contracts.ScoringUsecase,
	storageService contracts.StorageService,
	internalConfig *config.InternalConfig,
) contracts.ChartUsecase {
	return &chartUsecase{
		Log:            logger,
		ScoringUsecase: scoringUsecase,
		StorageService: storageService,
		InternalConfig: internalConfig,
	}
}

func (uc *chartUsecase) GenerateChart(ctx context.Context, request *requests.GenerateChartRequest) (*models.ChartDescriptor, error) {
	uc.Log.Debug("chartUsecase.GenerateChart called",
		zap.String(constvars.LoggingQuestionnaireTypeKey, request.QuestionnaireType),
		zap.String(constvars.LoggingChartKindKey, request.ChartKind),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	questionnaireType := models.QuestionnaireType(request.QuestionnaireType)
	if !scoring.IsSupportedType(questionnaireType) {
		return nil, exceptions.ErrUnsupportedQuestionnaireType(request.QuestionnaireType)
	}

	kind := models.ChartKind(request.ChartKind)
	if kind == "" {
		kind = models.ChartKindRadar
	}
	switch kind {
	case models.ChartKindRadar, models.ChartKindBar, models.ChartKindPie:
	default:
		return nil, exceptions.ErrUnsupportedChartKind(request.ChartKind)
	}

	variant := models.AgeVariant(request.AgeVariant)
	if variant == "" {
		variant = models.AgeVariantAdult
	}

	scoringResult, err := uc.ScoringUsecase.CalculateScores(ctx, &requests.CalculateScoresRequest{
		QuestionnaireType: request.QuestionnaireType,
		Responses:         request.Responses,
	})
	if err != nil {
		return nil, err
	}

	labels := labelsFor(questionnaireType, variant)

	// Category percents in definition order, truncated so labels and values
	// stay index-aligned.
	values := make([]int, 0, len(scoringResult.Interpretations))
	for _, interpretation := range scoringResult.Interpretations {
		values = append(values, interpretation.Percent)
	}
	if len(values) > len(labels) {
		values = values[:len(labels)]
	}

	descriptor := &models.ChartDescriptor{
		Kind:         kind,
		Type:         questionnaireType,
		AgeVariant:   variant,
		Title:        titleFor(questionnaireType, variant),
		DatasetLabel: datasetLabelFor(variant),
		Labels:       labels,
		Values:       values,
		Palette:      paletteFor(questionnaireType),
	}

	if kind == models.ChartKindRadar || kind == models.ChartKindBar {
		descriptor.SVG = renderBarSVG(descriptor)
	}

	if request.Export && descriptor.SVG != "" {
		exportURL, err := uc.exportSVG(ctx, descriptor)
		if err != nil {
			return nil, err
		}
		descriptor.ExportURL = exportURL
	}

	return descriptor, nil
}

func (uc *chartUsecase) exportSVG(ctx context.Context, descriptor *models.ChartDescriptor) (string, error) {
	objectName := fmt.Sprintf("charts/%s-%s-%s.svg", descriptor.Type, descriptor.AgeVariant, uuid.NewString())

	err := uc.StorageService.UploadObject(ctx, objectName, []byte(descriptor.SVG), constvars.MIMEImageSVG)
	if err != nil {
		uc.Log.Error("chartUsecase.exportSVG failed to upload chart",
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return "", err
	}

	expiry := time.Duration(uc.InternalConfig.Chart.ExportURLExpiryInMinute) * time.Minute
	exportURL, err := uc.StorageService.PresignObjectURL(ctx, objectName, expiry)
	if err != nil {
		uc.Log.Error("chartUsecase.exportSVG failed to presign chart URL",
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return "", err
	}

	return exportURL, nil
}
