package contracts

import (
	"context"

	"neuronutrition-service/internal/app/models"
)

type NotificationService interface {
	// NotifyQuestionnairesAssigned records an inbox entry and publishes the
	// assignment event. Best effort: callers log failures and move on.
	NotifyQuestionnairesAssigned(ctx context.Context, patientID string, variant models.AgeVariant, count int) error
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
}
