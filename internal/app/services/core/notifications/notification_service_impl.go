package notifications

import (
	"context"
	"fmt"
	"time"

	"neuronutrition-service/internal/app/contracts"
	"neuronutrition-service/internal/app/models"
	"neuronutrition-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const assignmentNotificationLink = "/dashboard/questionnaires"

type notificationService struct {
	Log                    *zap.Logger
	NotificationRepository contracts.NotificationRepository
	QueuePublisher         contracts.QueuePublisher
	AssignmentQueueName    string
}

func NewNotificationService(
	logger *zap.Logger,
	notificationRepository contracts.NotificationRepository,
	queuePublisher contracts.QueuePublisher,
	assignmentQueueName string,
) contracts.NotificationService {
	return &notificationService{
		Log:                    logger,
		NotificationRepository: notificationRepository,
		QueuePublisher:         queuePublisher,
		AssignmentQueueName:    assignmentQueueName,
	}
}

// assignmentEvent is the queue payload consumed by downstream channels
// (email, push) outside this service.
type assignmentEvent struct {
	Type                string            `json:"type"`
	PatientID           string            `json:"patientId"`
	AgeGroup            models.AgeVariant `json:"ageGroup"`
	QuestionnairesCount int               `json:"questionnairesCount"`
	OccurredAt          time.Time         `json:"occurredAt"`
}

func (s *notificationService) NotifyQuestionnairesAssigned(ctx context.Context, patientID string, variant models.AgeVariant, count int) error {
	now := time.Now().UTC()

	notification := &models.Notification{
		ID:                  uuid.NewString(),
		PatientID:           patientID,
		Type:                models.NotificationTypeQuestionnairesAssigned,
		Title:               "Questionnaires disponibles",
		Message:             fmt.Sprintf("%d questionnaires adaptés à votre âge ont été assignés", count),
		AgeGroup:            variant,
		QuestionnairesCount: count,
		Read:                false,
		Link:                assignmentNotificationLink,
		CreatedAt:           now,
	}

	if err := s.NotificationRepository.CreateNotification(ctx, notification); err != nil {
		return err
	}

	event := assignmentEvent{
		Type:                models.NotificationTypeQuestionnairesAssigned,
		PatientID:           patientID,
		AgeGroup:            variant,
		QuestionnairesCount: count,
		OccurredAt:          now,
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := s.QueuePublisher.Publish(ctx, s.AssignmentQueueName, body); err != nil {
		s.Log.Warn("notificationService.NotifyQuestionnairesAssigned failed to publish event",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.String(constvars.LoggingQueueNameKey, s.AssignmentQueueName),
			zap.Error(err),
		)
		return err
	}

	return nil
}
