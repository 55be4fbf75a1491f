package constvars

const (
	CalculateScoresSuccessMessage       = "Successfully calculated questionnaire scores"
	GenerateChartSuccessMessage         = "Successfully generated questionnaire chart"
	AssignQuestionnairesSuccessMessage  = "Successfully processed questionnaire assignment"
	AssignmentEligibilitySuccessMessage = "Successfully checked assignment eligibility"
	AssignmentSummarySuccessMessage     = "Successfully fetched assignment summary"
	IdentificationSuccessMessage        = "Successfully completed patient identification"
)
