package models

import "time"

type Notification struct {
	ID                  string     `bson:"_id"`
	PatientID           string     `bson:"patientId"`
	Type                string     `bson:"type"`
	Title               string     `bson:"title"`
	Message             string     `bson:"message"`
	AgeGroup            AgeVariant `bson:"ageGroup,omitempty"`
	QuestionnairesCount int        `bson:"questionnairesCount,omitempty"`
	Read                bool       `bson:"read"`
	Link                string     `bson:"link,omitempty"`
	CreatedAt           time.Time  `bson:"createdAt"`
}

const NotificationTypeQuestionnairesAssigned = "questionnaires_assigned"
