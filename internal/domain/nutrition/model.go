package nutrition

// CatProfile reúne los datos fisiológicos que alimentan el cálculo energético.
// La edad se maneja en meses totales (años*12 + meses) como en la UI.
type CatProfile struct {
	WeightKg  float64 `json:"weight_kg"`
	AgeMonths int     `json:"age_months"`
	Neutered  bool    `json:"neutered"`
	BCS       int     `json:"bcs"` // body condition score, 1..9
	Pregnant  bool    `json:"pregnant"`
	Lactating bool    `json:"lactating"`
}

// EnergyResult es el resultado del modelo energético.
// WaterIntakeML reutiliza el valor de DER (heurística del original, sin
// fórmula de hidratación propia).
type EnergyResult struct {
	RER           float64 `json:"rer"`
	Multiplier    float64 `json:"multiplier"`
	DER           float64 `json:"der"`
	WaterIntakeML float64 `json:"water_intake_ml"`
}

// FoodInput describe la alimentación diaria reportada por el dueño.
// Ojo con las unidades: el alimento seco se etiqueta por 1000 g y el
// húmedo por 100 g, igual que en las latas/bolsas reales.
type FoodInput struct {
	DryGrams        float64 `json:"dry_grams"`
	DryKcalPer1000g float64 `json:"dry_kcal_per_1000g"`
	WetGrams        float64 `json:"wet_grams"`
	WetKcalPer100g  float64 `json:"wet_kcal_per_100g"`
}

// IntakeResult compara la ingesta reportada contra el DER.
// CalorieDifference = TotalKcal - DER (positivo: come de más).
type IntakeResult struct {
	DryKcal           float64 `json:"dry_kcal"`
	WetKcal           float64 `json:"wet_kcal"`
	TotalKcal         float64 `json:"total_kcal"`
	CalorieDifference float64 `json:"calorie_difference"`
}

// FeedingPlan indica cuántos gramos de cada alimento cubren el DER
// con el reparto calórico seco/húmedo elegido.
type FeedingPlan struct {
	WetPercentage    int     `json:"wet_percentage"`
	RequiredDryGrams float64 `json:"required_dry_grams"`
	RequiredWetGrams float64 `json:"required_wet_grams"`
}
