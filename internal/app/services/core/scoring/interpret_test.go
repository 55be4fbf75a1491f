package scoring

import (
	"testing"

	"neuronutrition-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	t.Run("DNSM Cuts On Raw Axis Sum", func(t *testing.T) {
		assert.Equal(t, models.StatusTierNormal, statusFor(models.QuestionnaireTypeDNSM, categoryScore{Raw: 10, Percent: 25}))
		assert.Equal(t, models.StatusTierAttention, statusFor(models.QuestionnaireTypeDNSM, categoryScore{Raw: 19, Percent: 48}))
		assert.Equal(t, models.StatusTierProblematic, statusFor(models.QuestionnaireTypeDNSM, categoryScore{Raw: 20, Percent: 50}))
	})

	t.Run("Life Journey High Percent Is Good", func(t *testing.T) {
		assert.Equal(t, models.StatusTierNormal, statusFor(models.QuestionnaireTypeLifeJourney, categoryScore{Percent: 75}))
		assert.Equal(t, models.StatusTierAttention, statusFor(models.QuestionnaireTypeLifeJourney, categoryScore{Percent: 50}))
		assert.Equal(t, models.StatusTierProblematic, statusFor(models.QuestionnaireTypeLifeJourney, categoryScore{Percent: 49}))
	})

	t.Run("Nutrition High Percent Is Good", func(t *testing.T) {
		assert.Equal(t, models.StatusTierNormal, statusFor(models.QuestionnaireTypeNutrition, categoryScore{Percent: 70}))
		assert.Equal(t, models.StatusTierAttention, statusFor(models.QuestionnaireTypeNutrition, categoryScore{Percent: 69}))
		assert.Equal(t, models.StatusTierProblematic, statusFor(models.QuestionnaireTypeNutrition, categoryScore{Percent: 49}))
	})

	t.Run("Stress And Sleep Low Percent Is Good", func(t *testing.T) {
		for _, questionnaireType := range []models.QuestionnaireType{models.QuestionnaireTypeStress, models.QuestionnaireTypeSleep} {
			assert.Equal(t, models.StatusTierNormal, statusFor(questionnaireType, categoryScore{Percent: 25}))
			assert.Equal(t, models.StatusTierAttention, statusFor(questionnaireType, categoryScore{Percent: 60}))
			assert.Equal(t, models.StatusTierProblematic, statusFor(questionnaireType, categoryScore{Percent: 61}))
		}
	})

	t.Run("Symptom Complaints Use Thirty Percent Normal Cut", func(t *testing.T) {
		assert.Equal(t, models.StatusTierNormal, statusFor(models.QuestionnaireTypeSymptomComplaints, categoryScore{Percent: 30}))
		assert.Equal(t, models.StatusTierAttention, statusFor(models.QuestionnaireTypeSymptomComplaints, categoryScore{Percent: 31}))
		assert.Equal(t, models.StatusTierProblematic, statusFor(models.QuestionnaireTypeSymptomComplaints, categoryScore{Percent: 61}))
	})
}

func TestRecommendationFor(t *testing.T) {
	t.Run("Category Specific Text Wins", func(t *testing.T) {
		recommendation := recommendationFor(models.QuestionnaireTypeDNSM, "se", models.StatusTierProblematic)

		assert.Contains(t, recommendation, "sleep")
	})

	t.Run("Unknown Category Falls Back To Generic Text", func(t *testing.T) {
		recommendation := recommendationFor(models.QuestionnaireTypeStress, "fatigue", models.StatusTierAttention)

		assert.Equal(t, genericRecommendations[models.StatusTierAttention], recommendation)
	})

	t.Run("Normal Tier Always Has Text", func(t *testing.T) {
		recommendation := recommendationFor(models.QuestionnaireTypeSleep, "sleep-duration", models.StatusTierNormal)

		assert.NotEmpty(t, recommendation)
	})
}

func TestInterpretKeepsCategoryOrder(t *testing.T) {
	scores, _ := computeDNSM(map[string]int{"da-1": 4})

	interpretations := interpret(models.QuestionnaireTypeDNSM, scores)

	assert.Len(t, interpretations, 4)
	assert.Equal(t, "da", interpretations[0].Category)
	assert.Equal(t, 4, interpretations[0].RawScore)
	assert.Equal(t, models.StatusTierNormal, interpretations[0].Status)
}
