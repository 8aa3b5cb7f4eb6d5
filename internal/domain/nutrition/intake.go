package nutrition

// targetToleranceKcal es la banda de ±5 kcal alrededor del DER que se
// considera "en objetivo". Es una tolerancia deliberada, no redondeo.
const targetToleranceKcal = 5.0

// AnalyzeIntake convierte la alimentación reportada en kcal totales y la
// compara contra el DER ya calculado.
func AnalyzeIntake(der float64, f FoodInput) (IntakeResult, error) {
	if der <= 0 {
		return IntakeResult{}, ErrEnergyRequired
	}
	if f.DryGrams < 0 || f.DryKcalPer1000g < 0 || f.WetGrams < 0 || f.WetKcalPer100g < 0 {
		return IntakeResult{}, ErrInvalidInput
	}

	dryKcal := (f.DryGrams / 1000.0) * f.DryKcalPer1000g
	wetKcal := (f.WetGrams / 100.0) * f.WetKcalPer100g
	total := dryKcal + wetKcal

	return IntakeResult{
		DryKcal:           dryKcal,
		WetKcal:           wetKcal,
		TotalKcal:         total,
		CalorieDifference: total - der,
	}, nil
}

// Classify mapea la diferencia calórica a su estado. Desigualdad estricta:
// exactamente +5 o -5 sigue siendo "en objetivo".
func Classify(calorieDifference float64) IntakeStatus {
	switch {
	case calorieDifference > targetToleranceKcal:
		return StatusOverTarget
	case calorieDifference < -targetToleranceKcal:
		return StatusUnderTarget
	default:
		return StatusOnTarget
	}
}
