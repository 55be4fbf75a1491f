package assignments

import (
	"testing"

	"neuronutrition-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestTemplatesForVariant(t *testing.T) {
	t.Run("Every Variant Has Four Templates", func(t *testing.T) {
		for _, variant := range []models.AgeVariant{models.AgeVariantAdult, models.AgeVariantTeen, models.AgeVariantKid} {
			assert.Equal(t, 4, TemplateCountForVariant(variant), string(variant))
		}
	})

	t.Run("Unknown Variant Falls Back To Adult Catalog", func(t *testing.T) {
		templates := TemplatesForVariant(models.AgeVariant("toddler"))

		assert.Equal(t, adultTemplates, templates)
	})

	t.Run("Teen And Kid Identifiers Carry The Variant Suffix", func(t *testing.T) {
		for _, template := range TemplatesForVariant(models.AgeVariantTeen) {
			assert.Contains(t, template.ID, "-teen")
		}
		for _, template := range TemplatesForVariant(models.AgeVariantKid) {
			assert.Contains(t, template.ID, "-kid")
		}
	})
}

func TestTemplateForVariant(t *testing.T) {
	t.Run("Adult Uses Base Identifier", func(t *testing.T) {
		template := TemplateForVariant("dnsm", models.AgeVariantAdult)

		assert.NotNil(t, template)
		assert.Equal(t, "dnsm", template.ID)
	})

	t.Run("Teen Resolves Suffixed Identifier", func(t *testing.T) {
		template := TemplateForVariant("dnsm", models.AgeVariantTeen)

		assert.NotNil(t, template)
		assert.Equal(t, "dnsm-teen", template.ID)
	})

	t.Run("Missing Template Returns Nil", func(t *testing.T) {
		assert.Nil(t, TemplateForVariant("life-journey", models.AgeVariantKid))
	})
}

func TestTotalEstimatedMinutes(t *testing.T) {
	assert.Equal(t, 42, TotalEstimatedMinutes(models.AgeVariantAdult))
	assert.Equal(t, 29, TotalEstimatedMinutes(models.AgeVariantTeen))
	assert.Equal(t, 19, TotalEstimatedMinutes(models.AgeVariantKid))
}
