package contracts

import (
	"context"

	"neuronutrition-service/internal/app/models"
	"neuronutrition-service/internal/pkg/dto/requests"
	"neuronutrition-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	CompleteIdentification(ctx context.Context, patientID string, request *requests.PatientIdentificationRequest) (*responses.PatientIdentification, error)
}

type PatientRepository interface {
	FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	UpdatePatientFields(ctx context.Context, patientID string, fields map[string]interface{}) error
}
