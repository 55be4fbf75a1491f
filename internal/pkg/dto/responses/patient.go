package responses

import "neuronutrition-service/internal/app/models"

type PatientIdentification struct {
	PatientID  string            `json:"patientId"`
	Age        int               `json:"age"`
	AgeGroup   models.AgeVariant `json:"ageGroup"`
	Assignment *AssignmentResult `json:"assignment,omitempty"`
}
