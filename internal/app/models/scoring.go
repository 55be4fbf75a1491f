package models

import "time"

// QuestionnaireType identifies one of the supported scoring families. The
// set is closed; scoring requests naming anything else are rejected.
type QuestionnaireType string

const (
	QuestionnaireTypeDNSM              QuestionnaireType = "dnsm"
	QuestionnaireTypeLifeJourney       QuestionnaireType = "life-journey"
	QuestionnaireTypeStress            QuestionnaireType = "stress"
	QuestionnaireTypeNutrition         QuestionnaireType = "nutrition"
	QuestionnaireTypeSleep             QuestionnaireType = "sleep"
	QuestionnaireTypeSymptomComplaints QuestionnaireType = "symptom-complaints"
)

type StatusTier string

const (
	StatusTierNormal      StatusTier = "normal"
	StatusTierAttention   StatusTier = "attention"
	StatusTierProblematic StatusTier = "problematic"
)

// Interpretation carries the per-category verdict for one scored axis.
type Interpretation struct {
	Category       string     `json:"category"`
	RawScore       int        `json:"rawScore"`
	Percent        int        `json:"percent"`
	Status         StatusTier `json:"status"`
	Recommendation string     `json:"recommendation"`
}

// ScoringResult is the full outcome of scoring one response set. Scores maps
// every category plus "global" to a 0..100 percent. Interpretations preserve
// the category order of the questionnaire definition.
type ScoringResult struct {
	QuestionnaireType QuestionnaireType `json:"questionnaireType"`
	Scores            map[string]int    `json:"scores"`
	Interpretations   []Interpretation  `json:"interpretations"`
	IsComplete        bool              `json:"isComplete"`
	CalculatedAt      time.Time         `json:"calculatedAt"`
	Version           string            `json:"version"`
}
