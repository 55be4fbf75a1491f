package requests

// CalculateScoresRequest is the scoring invocation surface payload. Authorization
// of the caller against the questionnaire is the transport layer's concern.
type CalculateScoresRequest struct {
	QuestionnaireType string         `json:"questionnaireType" validate:"required"`
	Responses         map[string]int `json:"responses" validate:"required,likert_responses"`
}
