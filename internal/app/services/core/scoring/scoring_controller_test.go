package scoring

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"neuronutrition-service/internal/app/models"
	"neuronutrition-service/internal/pkg/dto/requests"
	"neuronutrition-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
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

func TestScoringControllerCalculateScores(t *testing.T) {
	t.Run("Valid Request Returns Success Envelope", func(t *testing.T) {
		usecase := new(MockScoringUsecase)
		usecase.On("CalculateScores", mock.Anything, mock.Anything).Return(&models.ScoringResult{
			QuestionnaireType: models.QuestionnaireTypeDNSM,
			Scores:            map[string]int{"global": 50},
			IsComplete:        false,
		}, nil)
		controller := NewScoringController(zap.NewNop(), usecase)

		body := `{"questionnaireType":"dnsm","responses":{"da-1":2}}`
		request := httptest.NewRequest(http.MethodPost, "/scores/calculate", strings.NewReader(body))
		recorder := httptest.NewRecorder()

		controller.CalculateScores(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var envelope map[string]interface{}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.Equal(t, true, envelope["success"])
	})

	t.Run("Malformed JSON Returns Bad Request", func(t *testing.T) {
		controller := NewScoringController(zap.NewNop(), new(MockScoringUsecase))

		request := httptest.NewRequest(http.MethodPost, "/scores/calculate", strings.NewReader("{not json"))
		recorder := httptest.NewRecorder()

		controller.CalculateScores(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Usecase Errors Keep Their Status Code", func(t *testing.T) {
		usecase := new(MockScoringUsecase)
		usecase.On("CalculateScores", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrUnsupportedQuestionnaireType("horoscope"))
		controller := NewScoringController(zap.NewNop(), usecase)

		body := `{"questionnaireType":"horoscope","responses":{"q-1":1}}`
		request := httptest.NewRequest(http.MethodPost, "/scores/calculate", strings.NewReader(body))
		recorder := httptest.NewRecorder()

		controller.CalculateScores(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var envelope map[string]interface{}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.Equal(t, false, envelope["success"])
	})
}
