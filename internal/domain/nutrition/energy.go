package nutrition

import (
	"errors"
	"math"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrEnergyRequired: se pidió un análisis o plan sin haber calculado
	// el DER primero.
	ErrEnergyRequired = errors.New("daily energy requirement not computed")
)

// multiplierTable es la tabla de decisión etapa × banda de BCS.
// Solo las etapas adultas y senior ajustan por BCS; el resto usa el
// mismo valor en las tres bandas.
var multiplierTable = map[LifeStage]map[BCSBand]float64{
	StagePregnant:      {BandUnderweight: 2.0, BandNeutral: 2.0, BandOverweight: 2.0},
	StageLactating:     {BandUnderweight: 3.0, BandNeutral: 3.0, BandOverweight: 3.0},
	StageKitten:        {BandUnderweight: 3.0, BandNeutral: 3.0, BandOverweight: 3.0},
	StageAdolescent:    {BandUnderweight: 2.0, BandNeutral: 2.0, BandOverweight: 2.0},
	StageAdultNeutered: {BandUnderweight: 1.6, BandNeutral: 1.2, BandOverweight: 0.8},
	StageAdultIntact:   {BandUnderweight: 1.8, BandNeutral: 1.4, BandOverweight: 1.0},
	StageSenior:        {BandUnderweight: 1.2, BandNeutral: 1.0, BandOverweight: 0.8},
}

// ComputeRER calcula el requerimiento energético en reposo:
// RER = 70 * (peso kg ^ 0.75), exponente real (no potencia entera).
func ComputeRER(weightKg float64) (float64, error) {
	if weightKg <= 0 {
		return 0, ErrInvalidInput
	}
	return 70 * math.Pow(weightKg, 0.75), nil
}

// StageFor resuelve la etapa de vida en orden de precedencia:
// preñada > lactante > rangos etarios.
func StageFor(p CatProfile) LifeStage {
	switch {
	case p.Pregnant:
		return StagePregnant
	case p.Lactating:
		return StageLactating
	case p.AgeMonths < 4:
		return StageKitten
	case p.AgeMonths <= 12:
		return StageAdolescent
	case p.AgeMonths < 84:
		if p.Neutered {
			return StageAdultNeutered
		}
		return StageAdultIntact
	default:
		return StageSenior
	}
}

func bandFor(bcs int) BCSBand {
	switch {
	case bcs < 4:
		return BandUnderweight
	case bcs > 5:
		return BandOverweight
	default:
		return BandNeutral
	}
}

// ActivityMultiplier devuelve el coeficiente de actividad para el perfil.
func ActivityMultiplier(p CatProfile) float64 {
	return multiplierTable[StageFor(p)][bandFor(p.BCS)]
}

// ComputeEnergy es el pipeline completo del modelo energético:
// RER -> coeficiente -> DER. Función pura, sin estado escondido.
func ComputeEnergy(p CatProfile) (EnergyResult, error) {
	if p.AgeMonths <= 0 {
		return EnergyResult{}, ErrInvalidInput
	}
	if p.BCS < 1 || p.BCS > 9 {
		return EnergyResult{}, ErrInvalidInput
	}

	rer, err := ComputeRER(p.WeightKg)
	if err != nil {
		return EnergyResult{}, err
	}

	m := ActivityMultiplier(p)
	der := rer * m

	return EnergyResult{
		RER:           rer,
		Multiplier:    m,
		DER:           der,
		WaterIntakeML: der, // 1 ml por kcal, tal cual el original
	}, nil
}
