package assignments

import "neuronutrition-service/internal/app/models"

// The template catalog is static configuration. Adult identifiers are the
// base ones; teen and kid variants carry an age suffix.

var adultTemplates = []models.QuestionnaireTemplate{
	{
		ID:               "plaintes-et-douleurs",
		Title:            "Plaintes & Douleurs",
		Description:      "Évaluation des douleurs et inconforts physiques",
		Category:         "Mode de vie",
		EstimatedMinutes: 8,
		AgeVariant:       models.AgeVariantAdult,
	},
	{
		ID:               "life-journey",
		Title:            "Parcours de Vie",
		Description:      "Analyse complète de votre mode de vie et habitudes",
		Category:         "Mode de vie",
		EstimatedMinutes: 12,
		AgeVariant:       models.AgeVariantAdult,
	},
	{
		ID:               "dnsm",
		Title:            "Neurotransmetteurs (DNSM)",
		Description:      "Évaluation de l'équilibre des neurotransmetteurs",
		Category:         "Neuro-psychologie",
		EstimatedMinutes: 7,
		AgeVariant:       models.AgeVariantAdult,
	},
	{
		ID:               "alimentaire-siin",
		Title:            "Alimentation (SIIN)",
		Description:      "Analyse nutritionnelle complète selon le protocole SIIN",
		Category:         "Nutrition",
		EstimatedMinutes: 15,
		AgeVariant:       models.AgeVariantAdult,
	},
}

var teenTemplates = []models.QuestionnaireTemplate{
	{
		ID:               "plaintes-douleurs-teen",
		Title:            "Douleurs & Stress (Ado)",
		Description:      "Évaluation adaptée des douleurs et du stress chez l'adolescent",
		Category:         "Mode de vie",
		EstimatedMinutes: 6,
		AgeVariant:       models.AgeVariantTeen,
	},
	{
		ID:               "life-journey-teen",
		Title:            "Mon Parcours (Ado)",
		Description:      "Questionnaire sur ton mode de vie et tes habitudes",
		Category:         "Mode de vie",
		EstimatedMinutes: 8,
		AgeVariant:       models.AgeVariantTeen,
	},
	{
		ID:               "dnsm-teen",
		Title:            "Mes Émotions (Ado)",
		Description:      "Comprendre tes émotions et ton équilibre psychologique",
		Category:         "Neuro-psychologie",
		EstimatedMinutes: 5,
		AgeVariant:       models.AgeVariantTeen,
	},
	{
		ID:               "alimentaire-teen",
		Title:            "Mon Alimentation (Ado)",
		Description:      "Analyse de tes habitudes alimentaires et préférences",
		Category:         "Nutrition",
		EstimatedMinutes: 10,
		AgeVariant:       models.AgeVariantTeen,
	},
}

var kidTemplates = []models.QuestionnaireTemplate{
	{
		ID:               "plaintes-douleurs-kid",
		Title:            "Mes Bobos (Enfant)",
		Description:      "Questionnaire ludique sur les petits maux et douleurs",
		Category:         "Mode de vie",
		EstimatedMinutes: 4,
		AgeVariant:       models.AgeVariantKid,
	},
	{
		ID:               "mode-de-vie-kid",
		Title:            "Ma Journée (Enfant)",
		Description:      "Raconte-nous ta journée et tes activités préférées",
		Category:         "Mode de vie",
		EstimatedMinutes: 6,
		AgeVariant:       models.AgeVariantKid,
	},
	{
		ID:               "dnsm-kid",
		Title:            "Mes Humeurs (Enfant)",
		Description:      "Questionnaire avec pictogrammes sur les émotions",
		Category:         "Neuro-psychologie",
		EstimatedMinutes: 4,
		AgeVariant:       models.AgeVariantKid,
	},
	{
		ID:               "alimentaire-kid",
		Title:            "Ce que je Mange (Enfant)",
		Description:      "Questionnaire visuel sur les aliments et les repas",
		Category:         "Nutrition",
		EstimatedMinutes: 5,
		AgeVariant:       models.AgeVariantKid,
	},
}

var templatesByVariant = map[models.AgeVariant][]models.QuestionnaireTemplate{
	models.AgeVariantAdult: adultTemplates,
	models.AgeVariantTeen:  teenTemplates,
	models.AgeVariantKid:   kidTemplates,
}

func TemplatesForVariant(variant models.AgeVariant) []models.QuestionnaireTemplate {
	if templates, ok := templatesByVariant[variant]; ok {
		return templates
	}
	return adultTemplates
}

// TemplateForVariant resolves a base identifier to its age-specific template.
func TemplateForVariant(baseID string, variant models.AgeVariant) *models.QuestionnaireTemplate {
	expectedID := baseID
	if variant != models.AgeVariantAdult {
		expectedID = baseID + "-" + string(variant)
	}
	for _, template := range TemplatesForVariant(variant) {
		if template.ID == expectedID {
			return &template
		}
	}
	return nil
}

func TemplateCountForVariant(variant models.AgeVariant) int {
	return len(TemplatesForVariant(variant))
}

func TotalEstimatedMinutes(variant models.AgeVariant) int {
	var total int
	for _, template := range TemplatesForVariant(variant) {
		total += template.EstimatedMinutes
	}
	return total
}
