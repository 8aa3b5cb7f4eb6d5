package sessions

import (
	"time"

	"github.com/Rimuy-Amaya/Catkuro/internal/domain/nutrition"
)

// Session es el estado intermedio de una interacción: perfil, resultado
// energético y, si ya se calcularon, análisis de ingesta y plan.
// Todo lo derivado del DER se invalida cuando el DER se recalcula;
// Food es entrada cruda del usuario y sobrevive al recálculo.
type Session struct {
	ID string `json:"id"`

	Profile *nutrition.CatProfile   `json:"profile,omitempty"`
	Energy  *nutrition.EnergyResult `json:"energy,omitempty"`
	Food    *nutrition.FoodInput    `json:"food,omitempty"`
	Intake  *nutrition.IntakeResult `json:"intake,omitempty"`
	Plan    *nutrition.FeedingPlan  `json:"plan,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
