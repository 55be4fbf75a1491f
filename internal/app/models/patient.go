package models

// AgeVariant selects which questionnaire catalog, labels and thresholds apply
// to a patient. It is derived from the birth date, never chosen freely.
type AgeVariant string

const (
	AgeVariantAdult AgeVariant = "adult"
	AgeVariantTeen  AgeVariant = "teen"
	AgeVariantKid   AgeVariant = "kid"
)

func (v AgeVariant) IsValid() bool {
	switch v {
	case AgeVariantAdult, AgeVariantTeen, AgeVariantKid:
		return true
	}
	return false
}

type Patient struct {
	ID                         string     `bson:"_id,omitempty"`
	FirstName                  string     `bson:"firstname,omitempty"`
	LastName                   string     `bson:"lastname,omitempty"`
	BirthDate                  string     `bson:"birthDate,omitempty"`
	Sex                        string     `bson:"sex,omitempty"`
	HeightCm                   float64    `bson:"heightCm,omitempty"`
	WeightKg                   float64    `bson:"weightKg,omitempty"`
	AgeGroup                   AgeVariant `bson:"ageGroup,omitempty"`
	IdentificationCompleted    bool       `bson:"identificationCompleted"`
	HasQuestionnairesAssigned  bool       `bson:"hasQuestionnairesAssigned"`
	PendingQuestionnairesCount int        `bson:"pendingQuestionnairesCount"`
	TimeModel                  `bson:",inline"`
}
