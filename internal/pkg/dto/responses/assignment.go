package responses

import "neuronutrition-service/internal/app/models"

type AssignmentResult struct {
	Assigned  bool                           `json:"assigned"`
	Count     int                            `json:"count"`
	Variant   models.AgeVariant              `json:"variant,omitempty"`
	Templates []models.QuestionnaireTemplate `json:"templates,omitempty"`
	Reason    string                         `json:"reason,omitempty"`
}

type AssignmentEligibility struct {
	Eligible        bool              `json:"eligible"`
	Variant         models.AgeVariant `json:"variant,omitempty"`
	AlreadyAssigned bool              `json:"alreadyAssigned"`
	Reason          string            `json:"reason,omitempty"`
}
