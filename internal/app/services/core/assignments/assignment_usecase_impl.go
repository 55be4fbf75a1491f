package assignments

import (
	"context"
	"time"

	"neuronutrition-service/internal/app/contracts"
	"neuronutrition-service/internal/app/models"
	"neuronutrition-service/internal/pkg/constvars"
	"neuronutrition-service/internal/pkg/dto/requests"
	"neuronutrition-service/internal/pkg/dto/responses"
	"neuronutrition-service/internal/pkg/exceptions"
	"neuronutrition-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const reasonAlreadyAssigned = "Questionnaires already assigned"

type assignmentUsecase struct {
	Log                  *zap.Logger
	AssignmentRepository contracts.AssignmentRepository
	PatientRepository    contracts.PatientRepository
	NotificationService  contracts.NotificationService
}

func NewAssignmentUsecase(
	logger *zap.Logger,
	assignmentRepository contracts.AssignmentRepository,
	patientRepository contracts.PatientRepository,
	notificationService contracts.NotificationService,
) contracts.AssignmentUsecase {
	return &assignmentUsecase{
		Log:                  logger,
		AssignmentRepository: assignmentRepository,
		PatientRepository:    patientRepository,
		NotificationService:  notificationService,
	}
}

func (uc *assignmentUsecase) AssignQuestionnaires(ctx context.Context, patientID string, request *requests.AssignQuestionnairesRequest) (*responses.AssignmentResult, error) {
	uc.Log.Info("assignmentUsecase.AssignQuestionnaires called",
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingAgeVariantKey, request.AgeVariant),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	// A non-empty hint must name a catalog variant.
	variant := models.AgeVariant(request.AgeVariant)
	if variant == "" {
		resolved, err := uc.resolveVariant(ctx, patientID)
		if err != nil {
			return nil, err
		}
		variant = resolved
	} else if !variant.IsValid() {
		return nil, exceptions.ErrUnknownAgeVariant(request.AgeVariant)
	}

	templates := TemplatesForVariant(variant)
	if len(templates) == 0 {
		return nil, exceptions.ErrEmptyTemplateCatalog(string(variant))
	}

	now := time.Now().UTC()
	instances := make([]models.QuestionnaireInstance, len(templates))
	for i, template := range templates {
		instances[i] = models.QuestionnaireInstance{
			ID:               template.ID + "_" + patientID,
			TemplateID:       template.ID,
			PatientID:        patientID,
			Title:            template.Title,
			Description:      template.Description,
			Category:         template.Category,
			EstimatedMinutes: template.EstimatedMinutes,
			AgeVariant:       template.AgeVariant,
			Status:           models.AssignmentStatusPending,
			AssignedAt:       now,
			Responses:        map[string]int{},
		}
	}

	patientUpdate := map[string]interface{}{
		"hasQuestionnairesAssigned":  true,
		"pendingQuestionnairesCount": len(instances),
		"questionnairesAssignedAt":   now,
		"ageGroup":                   variant,
		"identificationCompleted":    true,
		"updatedAt":                  now,
	}

	assigned, err := uc.AssignmentRepository.AssignAtomically(ctx, patientID, instances, patientUpdate)
	if err != nil {
		return nil, err
	}

	if !assigned {
		uc.Log.Warn("assignmentUsecase.AssignQuestionnaires patient already has assignments",
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		return &responses.AssignmentResult{
			Assigned:  false,
			Count:     0,
			Variant:   variant,
			Templates: templates,
			Reason:    reasonAlreadyAssigned,
		}, nil
	}

	// Notification delivery never fails the assignment; the instances are
	// already committed.
	if err := uc.NotificationService.NotifyQuestionnairesAssigned(ctx, patientID, variant, len(instances)); err != nil {
		uc.Log.Warn("assignmentUsecase.AssignQuestionnaires failed to notify patient",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
	}

	uc.Log.Info("assignmentUsecase.AssignQuestionnaires finished",
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingAgeVariantKey, string(variant)),
		zap.Int(constvars.LoggingAssignedCountKey, len(instances)),
	)

	return &responses.AssignmentResult{
		Assigned:  true,
		Count:     len(instances),
		Variant:   variant,
		Templates: templates,
	}, nil
}

func (uc *assignmentUsecase) CheckEligibility(ctx context.Context, patientID string) (*responses.AssignmentEligibility, error) {
	patient, err := uc.PatientRepository.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	alreadyAssigned, err := uc.AssignmentRepository.HasAssignments(ctx, patientID)
	if err != nil {
		return nil, err
	}

	_, variant, err := DetectAgeVariant(patient, time.Now().UTC())
	if err != nil {
		return &responses.AssignmentEligibility{
			Eligible:        false,
			AlreadyAssigned: alreadyAssigned,
			Reason:          constvars.ErrClientAgeCannotBeDetermined,
		}, nil
	}

	eligibility := &responses.AssignmentEligibility{
		Eligible:        !alreadyAssigned,
		Variant:         variant,
		AlreadyAssigned: alreadyAssigned,
	}
	if alreadyAssigned {
		eligibility.Reason = reasonAlreadyAssigned
	}

	return eligibility, nil
}

func (uc *assignmentUsecase) GetAssignmentSummary(ctx context.Context, patientID string) (*models.AssignmentSummary, error) {
	summary, err := uc.AssignmentRepository.CountByStatus(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (uc *assignmentUsecase) resolveVariant(ctx context.Context, patientID string) (models.AgeVariant, error) {
	patient, err := uc.PatientRepository.FindPatientByID(ctx, patientID)
	if err != nil {
		return "", err
	}
	if patient == nil {
		return "", exceptions.ErrPatientNotFound(nil)
	}

	age, variant, err := DetectAgeVariant(patient, time.Now().UTC())
	if err != nil {
		return "", err
	}

	uc.Log.Debug("assignmentUsecase.resolveVariant classified patient",
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Int("age", age),
		zap.String(constvars.LoggingAgeVariantKey, string(variant)),
	)

	return variant, nil
}
