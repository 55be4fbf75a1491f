package scoring

import (
	"context"
	"testing"
	"time"

	"neuronutrition-service/internal/app/config"
	"neuronutrition-service/internal/app/models"
	"neuronutrition-service/internal/pkg/dto/requests"
	"neuronutrition-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func newTestInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Scoring: config.Scoring{CacheTTLInMinute: 15},
	}
}

func TestCalculateScores(t *testing.T) {
	t.Run("Unsupported Type Is Rejected", func(t *testing.T) {
		redisRepository := new(MockRedisRepository)
		usecase := NewScoringUsecase(zap.NewNop(), redisRepository, newTestInternalConfig())

		result, err := usecase.CalculateScores(context.Background(), &requests.CalculateScoresRequest{
			QuestionnaireType: "horoscope",
			Responses:         map[string]int{"da-1": 2},
		})

		assert.Nil(t, result)
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
		redisRepository.AssertNotCalled(t, "Get")
	})

	t.Run("Cache Miss Computes And Stores Result", func(t *testing.T) {
		redisRepository := new(MockRedisRepository)
		redisRepository.On("Get", mock.Anything, mock.Anything).Return("", nil)
		redisRepository.On("Set", mock.Anything, mock.Anything, mock.Anything, 15*time.Minute).Return(nil)
		usecase := NewScoringUsecase(zap.NewNop(), redisRepository, newTestInternalConfig())

		responses := map[string]int{}
		for _, component := range sleepComponents {
			responses[component] = 2
		}

		result, err := usecase.CalculateScores(context.Background(), &requests.CalculateScoresRequest{
			QuestionnaireType: string(models.QuestionnaireTypeSleep),
			Responses:         responses,
		})

		assert.NoError(t, err)
		assert.True(t, result.IsComplete)
		assert.Equal(t, 50, result.Scores["global"])
		assert.Equal(t, 50, result.Scores["sleep-quality"])
		assert.Len(t, result.Interpretations, 7)
		redisRepository.AssertExpectations(t)
	})

	t.Run("Cache Hit Skips Recomputation", func(t *testing.T) {
		cached := &models.ScoringResult{
			QuestionnaireType: models.QuestionnaireTypeSleep,
			Scores:            map[string]int{"global": 42},
			IsComplete:        true,
			Version:           "1.0.0",
		}
		payload, err := json.Marshal(cached)
		assert.NoError(t, err)

		redisRepository := new(MockRedisRepository)
		redisRepository.On("Get", mock.Anything, mock.Anything).Return(string(payload), nil)
		usecase := NewScoringUsecase(zap.NewNop(), redisRepository, newTestInternalConfig())

		result, err := usecase.CalculateScores(context.Background(), &requests.CalculateScoresRequest{
			QuestionnaireType: string(models.QuestionnaireTypeSleep),
			Responses:         map[string]int{"sleep-quality": 1},
		})

		assert.NoError(t, err)
		assert.Equal(t, 42, result.Scores["global"])
		redisRepository.AssertNotCalled(t, "Set")
	})

	t.Run("Negative Answers Fail Validation", func(t *testing.T) {
		redisRepository := new(MockRedisRepository)
		usecase := NewScoringUsecase(zap.NewNop(), redisRepository, newTestInternalConfig())

		result, err := usecase.CalculateScores(context.Background(), &requests.CalculateScoresRequest{
			QuestionnaireType: string(models.QuestionnaireTypeSleep),
			Responses:         map[string]int{"sleep-quality": -1},
		})

		assert.Nil(t, result)
		assert.Error(t, err)
	})
}

func TestBuildCacheKey(t *testing.T) {
	t.Run("Same Responses Yield Same Key", func(t *testing.T) {
		first := buildCacheKey(models.QuestionnaireTypeStress, map[string]int{"fatigue-1": 2, "anxiety-1": 3})
		second := buildCacheKey(models.QuestionnaireTypeStress, map[string]int{"anxiety-1": 3, "fatigue-1": 2})

		assert.Equal(t, first, second)
	})

	t.Run("Different Answers Yield Different Keys", func(t *testing.T) {
		first := buildCacheKey(models.QuestionnaireTypeStress, map[string]int{"fatigue-1": 2})
		second := buildCacheKey(models.QuestionnaireTypeStress, map[string]int{"fatigue-1": 3})

		assert.NotEqual(t, first, second)
	})
}
