package nutrition

// LifeStage es la etapa de vida resuelta en orden de precedencia:
// gestación y lactancia pisan cualquier rango etario.
type LifeStage string

const (
	StagePregnant      LifeStage = "pregnant"
	StageLactating     LifeStage = "lactating"
	StageKitten        LifeStage = "kitten"         // < 4 meses
	StageAdolescent    LifeStage = "adolescent"     // 4..12 meses
	StageAdultNeutered LifeStage = "adult_neutered" // 13..83 meses
	StageAdultIntact   LifeStage = "adult_intact"   // 13..83 meses
	StageSenior        LifeStage = "senior"         // >= 84 meses
)

// BCSBand agrupa el body condition score en las tres bandas que ajustan
// el coeficiente: <4 bajo peso, 4..5 neutral, >5 sobrepeso.
type BCSBand int

const (
	BandUnderweight BCSBand = iota
	BandNeutral
	BandOverweight
)

// IntakeStatus clasifica la diferencia calórica para el reporte.
type IntakeStatus string

const (
	StatusOverTarget  IntakeStatus = "over_target"
	StatusUnderTarget IntakeStatus = "under_target"
	StatusOnTarget    IntakeStatus = "on_target"
)
