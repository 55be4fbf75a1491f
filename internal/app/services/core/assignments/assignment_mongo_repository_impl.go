package assignments

import (
	"context"

	"neuronutrition-service/internal/app/contracts"
	"neuronutrition-service/internal/app/models"
	"neuronutrition-service/internal/pkg/constvars"
	"neuronutrition-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AssignmentMongoRepository struct {
	Client             *mongo.Client
	InstanceCollection *mongo.Collection
	PatientCollection  *mongo.Collection
}

func NewAssignmentMongoRepository(db *mongo.Client, dbName string) contracts.AssignmentRepository {
	return &AssignmentMongoRepository{
		Client:             db,
		InstanceCollection: db.Database(dbName).Collection(constvars.MongoCollectionQuestionnaires),
		PatientCollection:  db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (repo *AssignmentMongoRepository) HasAssignments(ctx context.Context, patientID string) (bool, error) {
	count, err := repo.InstanceCollection.CountDocuments(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return false, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count > 0, nil
}

func (repo *AssignmentMongoRepository) CountByStatus(ctx context.Context, patientID string) (*models.AssignmentSummary, error) {
	cursor, err := repo.InstanceCollection.Find(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	summary := &models.AssignmentSummary{}
	for cursor.Next(ctx) {
		var instance models.QuestionnaireInstance
		if err := cursor.Decode(&instance); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		summary.Total++
		summary.AgeGroup = instance.AgeVariant
		switch instance.Status {
		case models.AssignmentStatusPending:
			summary.Pending++
		case models.AssignmentStatusInProgress:
			summary.InProgress++
		case models.AssignmentStatusSubmitted:
			summary.Submitted++
		case models.AssignmentStatusCompleted:
			summary.Completed++
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	return summary, nil
}

// AssignAtomically re-checks for existing instances inside the transaction so
// concurrent assignment calls cannot both insert.
func (repo *AssignmentMongoRepository) AssignAtomically(ctx context.Context, patientID string, instances []models.QuestionnaireInstance, patientUpdate map[string]interface{}) (bool, error) {
	session, err := repo.Client.StartSession()
	if err != nil {
		return false, exceptions.ErrMongoDBTransaction(err)
	}
	defer session.EndSession(ctx)

	assigned, err := session.WithTransaction(ctx, func(sessionCtx mongo.SessionContext) (interface{}, error) {
		count, err := repo.InstanceCollection.CountDocuments(sessionCtx, bson.M{"patientId": patientID})
		if err != nil {
			return false, err
		}
		if count > 0 {
			return false, nil
		}

		documents := make([]interface{}, len(instances))
		for i, instance := range instances {
			documents[i] = instance
		}
		if _, err := repo.InstanceCollection.InsertMany(sessionCtx, documents); err != nil {
			return false, err
		}

		update := bson.M{}
		for field, value := range patientUpdate {
			update[field] = value
		}
		if _, err := repo.PatientCollection.UpdateOne(sessionCtx, bson.M{"_id": patientID}, bson.M{"$set": update}); err != nil {
			return false, err
		}

		return true, nil
	})
	if err != nil {
		return false, exceptions.ErrMongoDBTransaction(err)
	}

	return assigned.(bool), nil
}
