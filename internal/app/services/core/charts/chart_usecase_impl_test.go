package charts

import (
	"context"
	"testing"
	"time"

	"neuronutrition-service/internal/app/config"
	"neuronutrition-service/internal/app/models"
	"neuronutrition-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockScoringUsecase struct {
	mock.Mock
}

func (m *MockScoringUsecase) CalculateScores(ctx context.Context, request *requests.CalculateScoresRequest) (*models.ScoringResult, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ScoringResult), args.Error(1)
}

type MockStorageService struct {
	mock.Mock
}

func (m *MockStorageService) UploadObject(ctx context.Context, objectName string, data []byte, contentType string) error {
	args := m.Called(ctx, objectName, data, contentType)
	return args.Error(0)
}

func (m *MockStorageService) PresignObjectURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, objectName, expiry)
	return args.String(0), args.Error(1)
}

func sleepScoringResult() *models.ScoringResult {
	interpretations := []models.Interpretation{
		{Category: "sleep-quality", Percent: 25},
		{Category: "sleep-latency", Percent: 50},
		{Category: "sleep-duration", Percent: 75},
		{Category: "sleep-efficiency", Percent: 100},
		{Category: "sleep-disturbance", Percent: 0},
		{Category: "sleep-medication", Percent: 25},
		{Category: "daytime-dysfunction", Percent: 50},
	}
	return &models.ScoringResult{
		QuestionnaireType: models.QuestionnaireTypeSleep,
		Interpretations:   interpretations,
		IsComplete:        true,
	}
}

func TestGenerateChart(t *testing.T) {
	internalConfig := &config.InternalConfig{
		Chart: config.Chart{ExportURLExpiryInMinute: 60},
	}

	t.Run("Values Are Truncated To Label Count", func(t *testing.T) {
		scoringUsecase := new(MockScoringUsecase)
		scoringUsecase.On("CalculateScores", mock.Anything, mock.Anything).Return(sleepScoringResult(), nil)
		usecase := NewChartUsecase(zap.NewNop(), scoringUsecase, new(MockStorageService), internalConfig)

		descriptor, err := usecase.GenerateChart(context.Background(), &requests.GenerateChartRequest{
			QuestionnaireType: string(models.QuestionnaireTypeSleep),
			Responses:         map[string]int{"sleep-quality": 1},
			ChartKind:         "bar",
		})

		assert.NoError(t, err)
		assert.Len(t, descriptor.Labels, 4)
		assert.Equal(t, []int{25, 50, 75, 100}, descriptor.Values)
		assert.Equal(t, models.AgeVariantAdult, descriptor.AgeVariant)
		assert.NotEmpty(t, descriptor.SVG)
	})

	t.Run("Pie Charts Have No SVG Rendering", func(t *testing.T) {
		scoringUsecase := new(MockScoringUsecase)
		scoringUsecase.On("CalculateScores", mock.Anything, mock.Anything).Return(sleepScoringResult(), nil)
		usecase := NewChartUsecase(zap.NewNop(), scoringUsecase, new(MockStorageService), internalConfig)

		descriptor, err := usecase.GenerateChart(context.Background(), &requests.GenerateChartRequest{
			QuestionnaireType: string(models.QuestionnaireTypeSleep),
			Responses:         map[string]int{"sleep-quality": 1},
			ChartKind:         "pie",
		})

		assert.NoError(t, err)
		assert.Empty(t, descriptor.SVG)
		assert.Empty(t, descriptor.ExportURL)
	})

	t.Run("Kid Variant Uses Kid Labels And Title", func(t *testing.T) {
		scoringUsecase := new(MockScoringUsecase)
		scoringUsecase.On("CalculateScores", mock.Anything, mock.Anything).Return(sleepScoringResult(), nil)
		usecase := NewChartUsecase(zap.NewNop(), scoringUsecase, new(MockStorageService), internalConfig)

		descriptor, err := usecase.GenerateChart(context.Background(), &requests.GenerateChartRequest{
			QuestionnaireType: string(models.QuestionnaireTypeSleep),
			Responses:         map[string]int{"sleep-quality": 1},
			AgeVariant:        "kid",
		})

		assert.NoError(t, err)
		assert.Equal(t, "😴 Comme tu dors", descriptor.Title)
		assert.Equal(t, "Tes résultats", descriptor.DatasetLabel)
		assert.Contains(t, descriptor.Labels[0], "S'endormir")
	})

	t.Run("Export Uploads SVG And Returns Presigned URL", func(t *testing.T) {
		scoringUsecase := new(MockScoringUsecase)
		scoringUsecase.On("CalculateScores", mock.Anything, mock.Anything).Return(sleepScoringResult(), nil)
		storageService := new(MockStorageService)
		storageService.On("UploadObject", mock.Anything, mock.Anything, mock.Anything, "image/svg+xml").Return(nil)
		storageService.On("PresignObjectURL", mock.Anything, mock.Anything, 60*time.Minute).Return("https://storage.local/chart.svg", nil)
		usecase := NewChartUsecase(zap.NewNop(), scoringUsecase, storageService, internalConfig)

		descriptor, err := usecase.GenerateChart(context.Background(), &requests.GenerateChartRequest{
			QuestionnaireType: string(models.QuestionnaireTypeSleep),
			Responses:         map[string]int{"sleep-quality": 1},
			ChartKind:         "bar",
			Export:            true,
		})

		assert.NoError(t, err)
		assert.Equal(t, "https://storage.local/chart.svg", descriptor.ExportURL)
		storageService.AssertExpectations(t)
	})

	t.Run("Unsupported Questionnaire Type Is Rejected", func(t *testing.T) {
		usecase := NewChartUsecase(zap.NewNop(), new(MockScoringUsecase), new(MockStorageService), internalConfig)

		descriptor, err := usecase.GenerateChart(context.Background(), &requests.GenerateChartRequest{
			QuestionnaireType: "horoscope",
			Responses:         map[string]int{"q-1": 1},
		})

		assert.Nil(t, descriptor)
		assert.Error(t, err)
	})
}

func TestRenderBarSVG(t *testing.T) {
	descriptor := &models.ChartDescriptor{
		Kind:       models.ChartKindBar,
		Type:       models.QuestionnaireTypeDNSM,
		AgeVariant: models.AgeVariantAdult,
		Title:      "Profil Neurotransmetteurs DNSM",
		Labels:     []string{"Dopamine", "Noradrénaline", "Sérotonine", "Mélatonine"},
		Values:     []int{50, 25, 75, 100},
		Palette:    paletteFor(models.QuestionnaireTypeDNSM),
	}

	t.Run("Rendering Is Deterministic", func(t *testing.T) {
		assert.Equal(t, renderBarSVG(descriptor), renderBarSVG(descriptor))
	})

	t.Run("Document Contains Bars Labels And Percents", func(t *testing.T) {
		svg := renderBarSVG(descriptor)

		assert.Contains(t, svg, `<svg width="500" height="400"`)
		assert.Contains(t, svg, "Dopamine")
		assert.Contains(t, svg, "100%")
		assert.Contains(t, svg, "#3B82F6")
		assert.Contains(t, svg, "</svg>")
	})

	t.Run("All Zero Values Do Not Divide By Zero", func(t *testing.T) {
		zeroed := *descriptor
		zeroed.Values = []int{0, 0, 0, 0}

		svg := renderBarSVG(&zeroed)

		assert.Contains(t, svg, "0%")
		assert.NotContains(t, svg, "NaN")
	})

	t.Run("Kid Variant Shrinks The Canvas", func(t *testing.T) {
		kid := *descriptor
		kid.AgeVariant = models.AgeVariantKid

		svg := renderBarSVG(&kid)

		assert.Contains(t, svg, `<svg width="400" height="400"`)
	})
}
