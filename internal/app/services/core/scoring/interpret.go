package scoring

import "neuronutrition-service/internal/app/models"

// statusFor maps one category score to its tier. DNSM cuts on the raw axis
// sum; every other type cuts on the percent. Life-journey and nutrition are
// well-being scales where high is good, so their cuts are inverted.
func statusFor(questionnaireType models.QuestionnaireType, score categoryScore) models.StatusTier {
	switch questionnaireType {
	case models.QuestionnaireTypeDNSM:
		switch {
		case score.Raw <= 10:
			return models.StatusTierNormal
		case score.Raw <= 19:
			return models.StatusTierAttention
		default:
			return models.StatusTierProblematic
		}
	case models.QuestionnaireTypeLifeJourney:
		switch {
		case score.Percent >= 75:
			return models.StatusTierNormal
		case score.Percent >= 50:
			return models.StatusTierAttention
		default:
			return models.StatusTierProblematic
		}
	case models.QuestionnaireTypeNutrition:
		switch {
		case score.Percent >= 70:
			return models.StatusTierNormal
		case score.Percent >= 50:
			return models.StatusTierAttention
		default:
			return models.StatusTierProblematic
		}
	case models.QuestionnaireTypeStress, models.QuestionnaireTypeSleep:
		switch {
		case score.Percent <= 25:
			return models.StatusTierNormal
		case score.Percent <= 60:
			return models.StatusTierAttention
		default:
			return models.StatusTierProblematic
		}
	case models.QuestionnaireTypeSymptomComplaints:
		switch {
		case score.Percent <= 30:
			return models.StatusTierNormal
		case score.Percent <= 60:
			return models.StatusTierAttention
		default:
			return models.StatusTierProblematic
		}
	}
	return models.StatusTierNormal
}

var categoryRecommendations = map[models.QuestionnaireType]map[string]map[models.StatusTier]string{
	models.QuestionnaireTypeDNSM: {
		"da": {
			models.StatusTierAttention:   "Keep a food and digestion diary to identify trigger meals.",
			models.StatusTierProblematic: "Discuss digestive symptoms with your practitioner at the next consultation.",
		},
		"na": {
			models.StatusTierAttention:   "Review meal variety and increase micronutrient-dense foods.",
			models.StatusTierProblematic: "A nutritional assessment with targeted supplementation may be needed.",
		},
		"se": {
			models.StatusTierAttention:   "Introduce a regular wind-down routine before bed.",
			models.StatusTierProblematic: "Persistent sleep disruption warrants a dedicated sleep evaluation.",
		},
		"me": {
			models.StatusTierAttention:   "Schedule short daily moments of rest and light activity.",
			models.StatusTierProblematic: "Discuss mood and energy complaints with your practitioner.",
		},
	},
	models.QuestionnaireTypeSleep: {
		"sleep-medication": {
			models.StatusTierAttention:   "Review sleep aid usage with your practitioner before adjusting doses.",
			models.StatusTierProblematic: "Frequent reliance on sleep medication needs a medical review.",
		},
	},
}

var genericRecommendations = map[models.StatusTier]string{
	models.StatusTierNormal:      "No action needed, keep up your current habits.",
	models.StatusTierAttention:   "Monitor this area and revisit it at your next follow-up.",
	models.StatusTierProblematic: "Raise this area with your practitioner as a priority.",
}

func recommendationFor(questionnaireType models.QuestionnaireType, category string, status models.StatusTier) string {
	if byCategory, ok := categoryRecommendations[questionnaireType]; ok {
		if byStatus, ok := byCategory[category]; ok {
			if recommendation, ok := byStatus[status]; ok {
				return recommendation
			}
		}
	}
	return genericRecommendations[status]
}

func interpret(questionnaireType models.QuestionnaireType, scores []categoryScore) []models.Interpretation {
	interpretations := make([]models.Interpretation, 0, len(scores))
	for _, score := range scores {
		status := statusFor(questionnaireType, score)
		interpretations = append(interpretations, models.Interpretation{
			Category:       score.Category,
			RawScore:       score.Raw,
			Percent:        score.Percent,
			Status:         status,
			Recommendation: recommendationFor(questionnaireType, score.Category, status),
		})
	}
	return interpretations
}
