package requests

type GenerateChartRequest struct {
	QuestionnaireType string         `json:"questionnaireType" validate:"required"`
	Responses         map[string]int `json:"responses" validate:"required,likert_responses"`
	ChartKind         string         `json:"chartKind" validate:"omitempty,oneof=radar bar pie"`
	AgeVariant        string         `json:"ageVariant" validate:"omitempty,oneof=adult teen kid"`
	Export            bool           `json:"export"`
}
