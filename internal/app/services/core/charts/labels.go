package charts

import "neuronutrition-service/internal/app/models"

// The label sets, titles and palettes come from the practitioner-facing
// chart catalog and stay in French. Category keys in scoring results are
// language neutral; only the presentation layer is localized.

var chartTitles = map[models.QuestionnaireType]map[models.AgeVariant]string{
	models.QuestionnaireTypeDNSM: {
		models.AgeVariantAdult: "Profil Neurotransmetteurs DNSM",
		models.AgeVariantTeen:  "🧑 Ton profil neuro",
		models.AgeVariantKid:   "🧠 Comment tu te sens ?",
	},
	models.QuestionnaireTypeLifeJourney: {
		models.AgeVariantAdult: "Bilan des 7 Sphères de Vie",
		models.AgeVariantTeen:  "⭐ Tes 7 domaines de vie",
		models.AgeVariantKid:   "🌈 Ta vie en couleurs",
	},
	models.QuestionnaireTypeStress: {
		models.AgeVariantAdult: "Profil de Stress",
		models.AgeVariantTeen:  "💪 Ton stress",
		models.AgeVariantKid:   "😰 Ton niveau de stress",
	},
	models.QuestionnaireTypeNutrition: {
		models.AgeVariantAdult: "Bilan Nutritionnel",
		models.AgeVariantTeen:  "🥗 Ton alimentation",
		models.AgeVariantKid:   "🍎 Ce que tu manges",
	},
	models.QuestionnaireTypeSleep: {
		models.AgeVariantAdult: "Qualité du Sommeil",
		models.AgeVariantTeen:  "🌙 Ton sommeil",
		models.AgeVariantKid:   "😴 Comme tu dors",
	},
	models.QuestionnaireTypeSymptomComplaints: {
		models.AgeVariantAdult: "Profil Symptômes",
		models.AgeVariantTeen:  "⚡ Tes symptômes",
		models.AgeVariantKid:   "🤕 Ce qui te fait mal",
	},
}

var chartLabels = map[models.QuestionnaireType]map[models.AgeVariant][]string{
	models.QuestionnaireTypeDNSM: {
		models.AgeVariantAdult: {"Dopamine", "Noradrénaline", "Sérotonine", "Mélatonine"},
		models.AgeVariantTeen:  {"Motivation", "Énergie", "Humeur", "Sommeil"},
		models.AgeVariantKid:   {"😊 Envie", "⚡ Force", "🌈 Joie", "😴 Dodo"},
	},
	models.QuestionnaireTypeLifeJourney: {
		models.AgeVariantAdult: {"Énergie", "Sommeil", "Digestion", "Poids", "Moral", "Mobilité", "Social"},
		models.AgeVariantTeen:  {"Énergie", "Sommeil", "Digestion", "Poids", "Moral", "Sport", "Amis"},
		models.AgeVariantKid:   {"💪 Force", "😴 Dodo", "🍽️ Ventre", "⚖️ Poids", "😊 Sourire", "🏃 Bouger", "👫 Copains"},
	},
	models.QuestionnaireTypeStress: {
		models.AgeVariantAdult: {"Fatigue", "Irritabilité", "Anxiété", "Concentration", "Sommeil", "Appétit", "Motivation"},
		models.AgeVariantTeen:  {"Fatigue", "Énervement", "Stress", "Concentration", "Sommeil", "Appétit", "Motivation"},
		models.AgeVariantKid:   {"😴 Fatigué", "😤 Fâché", "😰 Peur", "🤔 Attention", "🛌 Dodo", "🍽️ Faim", "🎯 Envie"},
	},
	models.QuestionnaireTypeNutrition: {
		models.AgeVariantAdult: {"Fruits/Légumes", "Céréales", "Protéines", "Laitages", "Graisses", "Sucres"},
		models.AgeVariantTeen:  {"Fruits/Légumes", "Féculents", "Protéines", "Laitages", "Graisses", "Sucres"},
		models.AgeVariantKid:   {"🥕 Légumes", "🍞 Pain", "🥩 Viande", "🥛 Lait", "🫒 Huile", "🍭 Bonbons"},
	},
	models.QuestionnaireTypeSleep: {
		models.AgeVariantAdult: {"Endormissement", "Réveils", "Durée", "Qualité"},
		models.AgeVariantTeen:  {"Endormissement", "Réveils", "Durée", "Récupération"},
		models.AgeVariantKid:   {"😴 S'endormir", "😵 Se réveiller", "⏰ Temps", "🌟 Bien dormi"},
	},
	models.QuestionnaireTypeSymptomComplaints: {
		models.AgeVariantAdult: {"Intensité", "Fréquence", "Impact", "Localisation"},
		models.AgeVariantTeen:  {"Douleur", "Souvent", "Gêne", "Où"},
		models.AgeVariantKid:   {"🤕 Mal", "📅 Souvent", "😢 Gêne", "👆 Où"},
	},
}

var chartPalettes = map[models.QuestionnaireType][]string{
	models.QuestionnaireTypeDNSM:              {"#3B82F6", "#EF4444", "#10B981", "#8B5CF6"},
	models.QuestionnaireTypeLifeJourney:       {"#F59E0B", "#8B5CF6", "#10B981", "#EF4444", "#06B6D4", "#F97316", "#84CC16"},
	models.QuestionnaireTypeStress:            {"#EF4444", "#F59E0B", "#84CC16", "#06B6D4", "#3B82F6", "#8B5CF6", "#EC4899"},
	models.QuestionnaireTypeNutrition:         {"#84CC16", "#F59E0B", "#EF4444", "#06B6D4", "#8B5CF6", "#EC4899"},
	models.QuestionnaireTypeSleep:             {"#1E293B", "#475569", "#64748B", "#94A3B8"},
	models.QuestionnaireTypeSymptomComplaints: {"#EF4444", "#F59E0B", "#84CC16", "#06B6D4"},
}

var defaultPalette = []string{"#3B82F6", "#EF4444", "#10B981", "#F59E0B"}

func titleFor(questionnaireType models.QuestionnaireType, variant models.AgeVariant) string {
	if byVariant, ok := chartTitles[questionnaireType]; ok {
		if title, ok := byVariant[variant]; ok {
			return title
		}
	}
	return "Résultats"
}

func labelsFor(questionnaireType models.QuestionnaireType, variant models.AgeVariant) []string {
	byVariant, ok := chartLabels[questionnaireType]
	if !ok {
		return nil
	}
	if labels, ok := byVariant[variant]; ok {
		return labels
	}
	return byVariant[models.AgeVariantAdult]
}

func paletteFor(questionnaireType models.QuestionnaireType) []string {
	if palette, ok := chartPalettes[questionnaireType]; ok {
		return palette
	}
	return defaultPalette
}

func datasetLabelFor(variant models.AgeVariant) string {
	switch variant {
	case models.AgeVariantKid:
		return "Tes résultats"
	case models.AgeVariantTeen:
		return "Tes scores"
	default:
		return "Vos résultats"
	}
}
