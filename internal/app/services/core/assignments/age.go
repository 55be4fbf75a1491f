package assignments

import (
	"fmt"
	"time"

	"neuronutrition-service/internal/app/models"
	"neuronutrition-service/internal/pkg/exceptions"
)

const (
	minClassifiableAge = 0
	maxClassifiableAge = 120

	kidMaxAge  = 12
	teenMaxAge = 18
)

// CalculateAge returns full calendar years between the birth date and now.
// The year difference is decremented when the birthday has not passed yet.
func CalculateAge(birthDate string, now time.Time) (int, error) {
	birth, err := time.Parse(time.DateOnly, birthDate)
	if err != nil {
		return 0, exceptions.ErrCannotParseDate(err)
	}

	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}

	return age, nil
}

// ClassifyAge maps an age in years to its questionnaire variant. Ages outside
// 0..120 cannot be classified.
func ClassifyAge(age int) (models.AgeVariant, error) {
	if age < minClassifiableAge || age > maxClassifiableAge {
		return "", exceptions.ErrAgeClassificationFailed(fmt.Sprintf("age %d years is not realistic", age))
	}
	switch {
	case age <= kidMaxAge:
		return models.AgeVariantKid, nil
	case age <= teenMaxAge:
		return models.AgeVariantTeen, nil
	default:
		return models.AgeVariantAdult, nil
	}
}

// DetectAgeVariant classifies a patient from the stored birth date. A missing
// or unparseable birth date means identification has not been completed.
func DetectAgeVariant(patient *models.Patient, now time.Time) (int, models.AgeVariant, error) {
	if patient.BirthDate == "" {
		return 0, "", exceptions.ErrAgeClassificationFailed("birth date is missing, identification required")
	}

	age, err := CalculateAge(patient.BirthDate, now)
	if err != nil {
		return 0, "", exceptions.ErrAgeClassificationFailed("birth date cannot be parsed")
	}

	variant, err := ClassifyAge(age)
	if err != nil {
		return age, "", err
	}

	return age, variant, nil
}
