package scoring

import "neuronutrition-service/internal/app/models"

// Question identifiers follow the `<category>-<n>` convention except for the
// sleep and symptom questionnaires, whose identifiers are the category keys
// themselves.

// Answer scales. Every Likert-style type answers 0..4 per question; the
// symptom questionnaire answers 1..10.
const (
	likertAnswerMax  = 4
	symptomAnswerMax = 10
)

var dnsmAxes = []string{"da", "na", "se", "me"}

const (
	dnsmQuestionsPerAxis = 10
	dnsmAxisMaxRaw       = 40
)

var lifeJourneyCategories = []string{
	"energy",
	"sleep",
	"digestion",
	"weight",
	"mood",
	"mobility",
	"social",
}

const (
	lifeJourneyQuestionsPerCategory = 5
	lifeJourneyCategoryMaxRaw       = 20
)

var stressDimensions = []string{
	"fatigue",
	"irritability",
	"anxiety",
	"concentration",
	"sleep",
	"appetite",
	"motivation",
}

const stressQuestionsPerDimension = 3

var nutritionCategories = []string{
	"fruits-vegetables",
	"grains",
	"proteins",
	"dairy",
	"fats",
	"sugars",
}

var sleepComponents = []string{
	"sleep-quality",
	"sleep-latency",
	"sleep-duration",
	"sleep-efficiency",
	"sleep-disturbance",
	"sleep-medication",
	"daytime-dysfunction",
}

var symptomCategories = []string{
	"fatigue",
	"pain",
	"digestion",
	"weight",
	"insomnia",
	"mood",
	"mobility",
}

var supportedTypes = map[models.QuestionnaireType]bool{
	models.QuestionnaireTypeDNSM:              true,
	models.QuestionnaireTypeLifeJourney:       true,
	models.QuestionnaireTypeStress:            true,
	models.QuestionnaireTypeNutrition:         true,
	models.QuestionnaireTypeSleep:             true,
	models.QuestionnaireTypeSymptomComplaints: true,
}

func IsSupportedType(questionnaireType models.QuestionnaireType) bool {
	return supportedTypes[questionnaireType]
}
