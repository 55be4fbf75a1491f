package contracts

import (
	"context"

	"neuronutrition-service/internal/app/models"
	"neuronutrition-service/internal/pkg/dto/requests"
	"neuronutrition-service/internal/pkg/dto/responses"
)

type AssignmentUsecase interface {
	AssignQuestionnaires(ctx context.Context, patientID string, request *requests.AssignQuestionnairesRequest) (*responses.AssignmentResult, error)
	CheckEligibility(ctx context.Context, patientID string) (*responses.AssignmentEligibility, error)
	GetAssignmentSummary(ctx context.Context, patientID string) (*models.AssignmentSummary, error)
}

type AssignmentRepository interface {
	HasAssignments(ctx context.Context, patientID string) (bool, error)
	CountByStatus(ctx context.Context, patientID string) (*models.AssignmentSummary, error)
	// AssignAtomically inserts the instances and applies the patient update in
	// a single transaction. Returns false without writing when the patient
	// already has assignments.
	AssignAtomically(ctx context.Context, patientID string, instances []models.QuestionnaireInstance, patientUpdate map[string]interface{}) (bool, error)
}
