package notifications

import (
	"context"

	"neuronutrition-service/internal/app/contracts"
	"neuronutrition-service/internal/app/models"
	"neuronutrition-service/internal/pkg/constvars"
	"neuronutrition-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
)

type NotificationMongoRepository struct {
	Collection *mongo.Collection
}

func NewNotificationMongoRepository(db *mongo.Client, dbName string) contracts.NotificationRepository {
	return &NotificationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionNotifications),
	}
}

func (repo *NotificationMongoRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	_, err := repo.Collection.InsertOne(ctx, notification)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
