package nutrition

// PlanFeeding reparte el DER entre alimento seco y húmedo según el
// porcentaje calórico que el dueño quiere cubrir con húmedo, y traduce
// cada objetivo a gramos usando la densidad calórica de cada alimento.
// Densidad en cero significa "desconocida": devuelve 0 gramos para ese
// alimento en lugar de fallar.
func PlanFeeding(der float64, wetPercentage int, dryKcalPer1000g, wetKcalPer100g float64) (FeedingPlan, error) {
	if der <= 0 {
		return FeedingPlan{}, ErrEnergyRequired
	}
	if wetPercentage < 0 || wetPercentage > 100 {
		return FeedingPlan{}, ErrInvalidInput
	}
	if dryKcalPer1000g < 0 || wetKcalPer100g < 0 {
		return FeedingPlan{}, ErrInvalidInput
	}

	targetWetKcal := der * (float64(wetPercentage) / 100.0)
	targetDryKcal := der * (float64(100-wetPercentage) / 100.0)

	var dryGrams, wetGrams float64
	if dryKcalPer1000g > 0 {
		dryGrams = (targetDryKcal / dryKcalPer1000g) * 1000.0
	}
	if wetKcalPer100g > 0 {
		wetGrams = (targetWetKcal / wetKcalPer100g) * 100.0
	}

	return FeedingPlan{
		WetPercentage:    wetPercentage,
		RequiredDryGrams: dryGrams,
		RequiredWetGrams: wetGrams,
	}, nil
}
