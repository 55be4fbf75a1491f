package assignments

import (
	"testing"
	"time"

	"neuronutrition-service/internal/app/models"
	"neuronutrition-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func TestCalculateAge(t *testing.T) {
	t.Run("Birthday Already Passed This Year", func(t *testing.T) {
		age, err := CalculateAge("2000-03-01", fixedNow)

		assert.NoError(t, err)
		assert.Equal(t, 26, age)
	})

	t.Run("Birthday Not Yet Passed This Year", func(t *testing.T) {
		age, err := CalculateAge("2000-09-01", fixedNow)

		assert.NoError(t, err)
		assert.Equal(t, 25, age)
	})

	t.Run("Birthday Today Counts As Passed", func(t *testing.T) {
		age, err := CalculateAge("2000-06-15", fixedNow)

		assert.NoError(t, err)
		assert.Equal(t, 26, age)
	})

	t.Run("Invalid Date Is Rejected", func(t *testing.T) {
		_, err := CalculateAge("15/06/2000", fixedNow)

		assert.Error(t, err)
	})
}

func TestClassifyAge(t *testing.T) {
	t.Run("Boundary Ages Map To Expected Variants", func(t *testing.T) {
		cases := []struct {
			age     int
			variant models.AgeVariant
		}{
			{0, models.AgeVariantKid},
			{12, models.AgeVariantKid},
			{13, models.AgeVariantTeen},
			{18, models.AgeVariantTeen},
			{19, models.AgeVariantAdult},
			{120, models.AgeVariantAdult},
		}

		for _, c := range cases {
			variant, err := ClassifyAge(c.age)
			assert.NoError(t, err)
			assert.Equal(t, c.variant, variant, "age %d", c.age)
		}
	})

	t.Run("Unrealistic Ages Cannot Be Classified", func(t *testing.T) {
		for _, age := range []int{-1, 121} {
			_, err := ClassifyAge(age)

			assert.Error(t, err)
			customErr, ok := err.(*exceptions.CustomError)
			assert.True(t, ok)
			assert.Equal(t, 412, customErr.StatusCode)
		}
	})
}

func TestDetectAgeVariant(t *testing.T) {
	t.Run("Classifies From Stored Birth Date", func(t *testing.T) {
		patient := &models.Patient{ID: "p1", BirthDate: "2012-01-01"}

		age, variant, err := DetectAgeVariant(patient, fixedNow)

		assert.NoError(t, err)
		assert.Equal(t, 14, age)
		assert.Equal(t, models.AgeVariantTeen, variant)
	})

	t.Run("Missing Birth Date Requires Identification", func(t *testing.T) {
		patient := &models.Patient{ID: "p1"}

		_, _, err := DetectAgeVariant(patient, fixedNow)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 412, customErr.StatusCode)
	})

	t.Run("Unparseable Birth Date Requires Identification", func(t *testing.T) {
		patient := &models.Patient{ID: "p1", BirthDate: "not-a-date"}

		_, _, err := DetectAgeVariant(patient, fixedNow)

		assert.Error(t, err)
	})
}
