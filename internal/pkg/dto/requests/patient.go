package requests

type AssignQuestionnairesRequest struct {
	AgeVariant string `json:"ageVariant" validate:"omitempty,oneof=adult teen kid"`
}

type PatientIdentificationRequest struct {
	FirstName string  `json:"firstname" validate:"required"`
	LastName  string  `json:"lastname" validate:"required"`
	BirthDate string  `json:"birthDate" validate:"required,datetime=2006-01-02"`
	Sex       string  `json:"sex" validate:"required,oneof=M F other"`
	HeightCm  float64 `json:"heightCm" validate:"omitempty,gt=0"`
	WeightKg  float64 `json:"weightKg" validate:"omitempty,gt=0"`
}
