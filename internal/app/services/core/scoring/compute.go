package scoring

import (
	"fmt"
	"math"
	"strings"

	"neuronutrition-service/internal/app/models"
)

// categoryScore is the raw outcome for one axis before interpretation.
type categoryScore struct {
	Category string
	Raw      int
	Percent  int
}

func roundedPercent(raw, maxRaw int) int {
	if maxRaw <= 0 {
		maxRaw = 1
	}
	return int(math.Round(float64(raw) / float64(maxRaw) * 100))
}

// sumDeclared adds the responses for the fixed identifier list
// `<category>-1..count`. Keys outside the declared list never contribute.
func sumDeclared(responses map[string]int, category string, count int) int {
	var raw int
	for i := 1; i <= count; i++ {
		raw += responses[fmt.Sprintf("%s-%d", category, i)]
	}
	return raw
}

// sumByPrefix adds every response whose identifier starts with `<prefix>-`.
// Missing questions contribute zero.
func sumByPrefix(responses map[string]int, prefix string) (int, int) {
	var raw, matched int
	for key, value := range responses {
		if strings.HasPrefix(key, prefix+"-") || key == prefix {
			raw += value
			matched++
		}
	}
	return raw, matched
}

// sumByContains adds every response whose identifier contains the category
// key anywhere, matching the loose identifier style of the nutrition
// questionnaire.
func sumByContains(responses map[string]int, category string) (int, int) {
	var raw, matched int
	for key, value := range responses {
		if strings.Contains(key, category) {
			raw += value
			matched++
		}
	}
	return raw, matched
}

// hasAllQuestions reports whether every declared question was answered on the
// 0..maxAnswer scale. An answer outside the scale counts as unanswered.
func hasAllQuestions(responses map[string]int, category string, count, maxAnswer int) bool {
	for i := 1; i <= count; i++ {
		value, ok := responses[fmt.Sprintf("%s-%d", category, i)]
		if !ok || value < 0 || value > maxAnswer {
			return false
		}
	}
	return true
}

func computeDNSM(responses map[string]int) ([]categoryScore, bool) {
	scores := make([]categoryScore, 0, len(dnsmAxes))
	complete := true
	for _, axis := range dnsmAxes {
		raw := sumDeclared(responses, axis, dnsmQuestionsPerAxis)
		scores = append(scores, categoryScore{
			Category: axis,
			Raw:      raw,
			Percent:  roundedPercent(raw, dnsmAxisMaxRaw),
		})
		if !hasAllQuestions(responses, axis, dnsmQuestionsPerAxis, likertAnswerMax) {
			complete = false
		}
	}
	return scores, complete
}

func computeLifeJourney(responses map[string]int) ([]categoryScore, bool) {
	scores := make([]categoryScore, 0, len(lifeJourneyCategories))
	complete := true
	for _, category := range lifeJourneyCategories {
		raw := sumDeclared(responses, category, lifeJourneyQuestionsPerCategory)
		scores = append(scores, categoryScore{
			Category: category,
			Raw:      raw,
			Percent:  roundedPercent(raw, lifeJourneyCategoryMaxRaw),
		})
		if !hasAllQuestions(responses, category, lifeJourneyQuestionsPerCategory, likertAnswerMax) {
			complete = false
		}
	}
	return scores, complete
}

// computeStress scales each dimension by the questions actually answered, so
// partial submissions still score on a 0..100 range.
func computeStress(responses map[string]int) ([]categoryScore, bool) {
	scores := make([]categoryScore, 0, len(stressDimensions))
	complete := true
	for _, dimension := range stressDimensions {
		raw, matched := sumByPrefix(responses, dimension)
		scores = append(scores, categoryScore{
			Category: dimension,
			Raw:      raw,
			Percent:  roundedPercent(raw, matched*4),
		})
		if !hasAllQuestions(responses, dimension, stressQuestionsPerDimension, likertAnswerMax) {
			complete = false
		}
	}
	return scores, complete
}

func computeNutrition(responses map[string]int) ([]categoryScore, bool) {
	scores := make([]categoryScore, 0, len(nutritionCategories))
	complete := true
	for _, category := range nutritionCategories {
		raw, matched := sumByContains(responses, category)
		percent := 0
		if matched > 0 {
			percent = int(math.Round(float64(raw) / float64(matched) * 25))
			if percent > 100 {
				percent = 100
			}
		} else {
			complete = false
		}
		scores = append(scores, categoryScore{
			Category: category,
			Raw:      raw,
			Percent:  percent,
		})
	}
	return scores, complete
}

func computeSleep(responses map[string]int) ([]categoryScore, bool) {
	scores := make([]categoryScore, 0, len(sleepComponents))
	complete := true
	for _, component := range sleepComponents {
		raw, ok := responses[component]
		if !ok || raw < 0 || raw > likertAnswerMax {
			complete = false
		}
		scores = append(scores, categoryScore{
			Category: component,
			Raw:      raw,
			Percent:  roundedPercent(raw, 4),
		})
	}
	return scores, complete
}

func computeSymptomComplaints(responses map[string]int) ([]categoryScore, bool) {
	scores := make([]categoryScore, 0, len(symptomCategories))
	complete := true
	for _, category := range symptomCategories {
		raw, ok := responses[category]
		if !ok || raw < 1 || raw > symptomAnswerMax {
			complete = false
		}
		scores = append(scores, categoryScore{
			Category: category,
			Raw:      raw,
			Percent:  roundedPercent(raw, 10),
		})
	}
	return scores, complete
}

// globalPercent is the rounded mean of the category percents. Every type
// derives its global score this way, including those whose upstream
// instruments define a different aggregate.
func globalPercent(scores []categoryScore) int {
	if len(scores) == 0 {
		return 0
	}
	var total int
	for _, score := range scores {
		total += score.Percent
	}
	return int(math.Round(float64(total) / float64(len(scores))))
}

func computeScores(questionnaireType models.QuestionnaireType, responses map[string]int) ([]categoryScore, bool) {
	switch questionnaireType {
	case models.QuestionnaireTypeDNSM:
		return computeDNSM(responses)
	case models.QuestionnaireTypeLifeJourney:
		return computeLifeJourney(responses)
	case models.QuestionnaireTypeStress:
		return computeStress(responses)
	case models.QuestionnaireTypeNutrition:
		return computeNutrition(responses)
	case models.QuestionnaireTypeSleep:
		return computeSleep(responses)
	case models.QuestionnaireTypeSymptomComplaints:
		return computeSymptomComplaints(responses)
	}
	return nil, false
}
