package patients

import (
	"context"
	"time"

	"neuronutrition-service/internal/app/contracts"
	"neuronutrition-service/internal/app/services/core/assignments"
	"neuronutrition-service/internal/pkg/constvars"
	"neuronutrition-service/internal/pkg/dto/requests"
	"neuronutrition-service/internal/pkg/dto/responses"
	"neuronutrition-service/internal/pkg/exceptions"
	"neuronutrition-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Identification accepts a narrower age range than age classification: the
// practice only takes patients between 6 and 100 years old.
const (
	minIdentificationAge = 6
	maxIdentificationAge = 100
)

type patientUsecase struct {
	Log               *zap.Logger
	PatientRepository contracts.PatientRepository
	AssignmentUsecase contracts.AssignmentUsecase
}

func NewPatientUsecase(
	logger *zap.Logger,
	patientRepository contracts.PatientRepository,
	assignmentUsecase contracts.AssignmentUsecase,
) contracts.PatientUsecase {
	return &patientUsecase{
		Log:               logger,
		PatientRepository: patientRepository,
		AssignmentUsecase: assignmentUsecase,
	}
}

func (uc *patientUsecase) CompleteIdentification(ctx context.Context, patientID string, request *requests.PatientIdentificationRequest) (*responses.PatientIdentification, error) {
	uc.Log.Info("patientUsecase.CompleteIdentification called",
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient, err := uc.PatientRepository.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	now := time.Now().UTC()
	age, err := assignments.CalculateAge(request.BirthDate, now)
	if err != nil {
		return nil, err
	}
	if age < minIdentificationAge {
		return nil, exceptions.ErrAgeBelowMinimum(age)
	}
	if age > maxIdentificationAge {
		return nil, exceptions.ErrAgeAboveMaximum(age)
	}

	variant, err := assignments.ClassifyAge(age)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"firstname":               request.FirstName,
		"lastname":                request.LastName,
		"birthDate":               request.BirthDate,
		"sex":                     request.Sex,
		"ageGroup":                variant,
		"identificationCompleted": true,
		"updatedAt":               now,
	}
	if request.HeightCm > 0 {
		fields["heightCm"] = request.HeightCm
	}
	if request.WeightKg > 0 {
		fields["weightKg"] = request.WeightKg
	}

	if err := uc.PatientRepository.UpdatePatientFields(ctx, patientID, fields); err != nil {
		return nil, err
	}

	response := &responses.PatientIdentification{
		PatientID: patientID,
		Age:       age,
		AgeGroup:  variant,
	}

	// Identification immediately triggers assignment for the detected
	// variant. A failure here leaves the patient identified but without
	// questionnaires, so it is reported rather than swallowed.
	assignment, err := uc.AssignmentUsecase.AssignQuestionnaires(ctx, patientID, &requests.AssignQuestionnairesRequest{
		AgeVariant: string(variant),
	})
	if err != nil {
		return nil, err
	}
	response.Assignment = assignment

	uc.Log.Info("patientUsecase.CompleteIdentification finished",
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingAgeVariantKey, string(variant)),
	)

	return response, nil
}
