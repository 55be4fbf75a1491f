package models

import "time"

type AssignmentStatus string

const (
	AssignmentStatusPending    AssignmentStatus = "pending"
	AssignmentStatusInProgress AssignmentStatus = "in_progress"
	AssignmentStatusSubmitted  AssignmentStatus = "submitted"
	AssignmentStatusCompleted  AssignmentStatus = "completed"
)

// QuestionnaireTemplate is a catalog entry describing one assignable
// questionnaire. Templates are static configuration, never persisted.
type QuestionnaireTemplate struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Category         string     `json:"category"`
	EstimatedMinutes int        `json:"estimatedMinutes"`
	AgeVariant       AgeVariant `json:"ageVariant"`
}

// QuestionnaireInstance materializes a template for one patient. Created
// exactly once per (patient, template) by the assignment flow; only the
// response-submission flow mutates it afterwards.
type QuestionnaireInstance struct {
	ID               string           `bson:"_id"`
	TemplateID       string           `bson:"templateId"`
	PatientID        string           `bson:"patientId"`
	Title            string           `bson:"title"`
	Description      string           `bson:"description"`
	Category         string           `bson:"category"`
	EstimatedMinutes int              `bson:"estimatedMinutes"`
	AgeVariant       AgeVariant       `bson:"ageVariant"`
	Status           AssignmentStatus `bson:"status"`
	AssignedAt       time.Time        `bson:"assignedAt"`
	SubmittedAt      *time.Time       `bson:"submittedAt,omitempty"`
	CompletedAt      *time.Time       `bson:"completedAt,omitempty"`
	Responses        map[string]int   `bson:"responses"`
}

// AssignmentSummary aggregates instance statuses for one patient.
type AssignmentSummary struct {
	Total      int        `json:"total"`
	Pending    int        `json:"pending"`
	InProgress int        `json:"inProgress"`
	Submitted  int        `json:"submitted"`
	Completed  int        `json:"completed"`
	AgeGroup   AgeVariant `json:"ageGroup,omitempty"`
}
