package scoring

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"neuronutrition-service/internal/app/config"
	"neuronutrition-service/internal/app/contracts"
	"neuronutrition-service/internal/app/models"
	"neuronutrition-service/internal/pkg/constvars"
	"neuronutrition-service/internal/pkg/dto/requests"
	"neuronutrition-service/internal/pkg/exceptions"
	"neuronutrition-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type scoringUsecase struct {
	Log             *zap.Logger
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewScoringUsecase(
	logger *zap.Logger,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
) contracts.ScoringUsecase {
	return &scoringUsecase{
		Log:             logger,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

func (uc *scoringUsecase) CalculateScores(ctx context.Context, request *requests.CalculateScoresRequest) (*models.ScoringResult, error) {
	uc.Log.Debug("scoringUsecase.CalculateScores called",
		zap.String(constvars.LoggingQuestionnaireTypeKey, request.QuestionnaireType),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	questionnaireType := models.QuestionnaireType(request.QuestionnaireType)
	if !IsSupportedType(questionnaireType) {
		return nil, exceptions.ErrUnsupportedQuestionnaireType(request.QuestionnaireType)
	}

	cacheKey := buildCacheKey(questionnaireType, request.Responses)
	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Warn("scoringUsecase.CalculateScores failed to read cache",
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}
	if cached != "" {
		result := &models.ScoringResult{}
		if err := json.Unmarshal([]byte(cached), result); err == nil {
			uc.Log.Debug("scoringUsecase.CalculateScores cache hit",
				zap.String(constvars.LoggingRedisKey, cacheKey),
			)
			return result, nil
		}
	}

	scores, isComplete := computeScores(questionnaireType, request.Responses)
	interpretations := interpret(questionnaireType, scores)

	scoreMap := make(map[string]int, len(scores)+1)
	for _, score := range scores {
		scoreMap[score.Category] = score.Percent
	}
	scoreMap["global"] = globalPercent(scores)

	result := &models.ScoringResult{
		QuestionnaireType: questionnaireType,
		Scores:            scoreMap,
		Interpretations:   interpretations,
		IsComplete:        isComplete,
		CalculatedAt:      time.Now().UTC(),
		Version:           constvars.ScoringResultVersion,
	}

	cacheTTL := time.Duration(uc.InternalConfig.Scoring.CacheTTLInMinute) * time.Minute
	if err := uc.RedisRepository.Set(ctx, cacheKey, result, cacheTTL); err != nil {
		uc.Log.Warn("scoringUsecase.CalculateScores failed to write cache",
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}

	return result, nil
}

// buildCacheKey hashes the responses in key order so identical submissions
// map to the same cache entry regardless of JSON field ordering.
func buildCacheKey(questionnaireType models.QuestionnaireType, responses map[string]int) string {
	keys := make([]string, 0, len(responses))
	for key := range responses {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&builder, "%s=%d;", key, responses[key])
	}
	digest := sha256.Sum256([]byte(builder.String()))

	return fmt.Sprintf("scoring:%s:%s", questionnaireType, hex.EncodeToString(digest[:]))
}
