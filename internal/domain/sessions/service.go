package sessions

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Rimuy-Amaya/Catkuro/internal/domain/nutrition"
	"github.com/Rimuy-Amaya/Catkuro/internal/domain/report"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("session not found")
)

type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// ProfileInput es la entrada tal como la captura la UI: edad separada en
// años y meses, que acá se combinan en meses totales.
type ProfileInput struct {
	WeightKg      float64
	AgeYears      int
	AgeMonthsPart int
	Neutered      bool
	BCS           int
	Pregnant      bool
	Lactating     bool
}

// Open crea una sesión vacía.
func (s *Service) Open(ctx context.Context) (Session, error) {
	now := s.now()
	sess := Session{
		ID:        s.newID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *Service) Get(ctx context.Context, id string) (Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Session{}, ErrInvalidInput
	}
	// Los errores del repo pasan tal cual: ErrNotFound es parte del
	// contrato del puerto, cualquier otra cosa es falla de infraestructura
	// y no debe disfrazarse de "sesión inexistente".
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Close(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ComputeEnergy valida el perfil, corre el modelo energético y guarda el
// resultado. Un DER nuevo descarta análisis y plan previos: fueron
// calculados contra el DER anterior.
func (s *Service) ComputeEnergy(ctx context.Context, id string, in ProfileInput) (Session, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}

	// Rangos de la UI original: años 0..25, meses extra 0..11.
	if in.AgeYears < 0 || in.AgeYears > 25 || in.AgeMonthsPart < 0 || in.AgeMonthsPart > 11 {
		return Session{}, ErrInvalidInput
	}

	profile := nutrition.CatProfile{
		WeightKg:  in.WeightKg,
		AgeMonths: in.AgeYears*12 + in.AgeMonthsPart,
		Neutered:  in.Neutered,
		BCS:       in.BCS,
		Pregnant:  in.Pregnant,
		Lactating: in.Lactating,
	}

	energy, err := nutrition.ComputeEnergy(profile)
	if err != nil {
		return Session{}, err
	}

	sess.Profile = &profile
	sess.Energy = &energy
	sess.Intake = nil
	sess.Plan = nil
	sess.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// AnalyzeIntake compara la alimentación reportada contra el DER vigente
// y guarda también el FoodInput crudo (el plan reutiliza sus densidades).
func (s *Service) AnalyzeIntake(ctx context.Context, id string, food nutrition.FoodInput) (Session, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if sess.Energy == nil {
		return Session{}, nutrition.ErrEnergyRequired
	}

	res, err := nutrition.AnalyzeIntake(sess.Energy.DER, food)
	if err != nil {
		return Session{}, err
	}

	sess.Food = &food
	sess.Intake = &res
	sess.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// PlanFeeding genera el plan con el reparto pedido. Densidades en cero
// caen a las del último FoodInput registrado, como hacía la UI original
// leyendo los campos del paso anterior.
func (s *Service) PlanFeeding(ctx context.Context, id string, wetPercentage int, dryKcalPer1000g, wetKcalPer100g float64) (Session, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if sess.Energy == nil {
		return Session{}, nutrition.ErrEnergyRequired
	}

	if dryKcalPer1000g == 0 && wetKcalPer100g == 0 && sess.Food != nil {
		dryKcalPer1000g = sess.Food.DryKcalPer1000g
		wetKcalPer100g = sess.Food.WetKcalPer100g
	}

	plan, err := nutrition.PlanFeeding(sess.Energy.DER, wetPercentage, dryKcalPer1000g, wetKcalPer100g)
	if err != nil {
		return Session{}, err
	}

	sess.Plan = &plan
	sess.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// ReportData arma los datos del reporte. Requiere energía calculada;
// ingesta y plan entran solo si existen.
func (s *Service) ReportData(ctx context.Context, id string) (report.Data, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return report.Data{}, err
	}
	if sess.Energy == nil || sess.Profile == nil {
		return report.Data{}, nutrition.ErrEnergyRequired
	}

	d := report.Data{
		WeightKg:      sess.Profile.WeightKg,
		AgeYears:      sess.Profile.AgeMonths / 12,
		AgeMonths:     sess.Profile.AgeMonths % 12,
		BCS:           sess.Profile.BCS,
		Neutered:      sess.Profile.Neutered,
		DER:           sess.Energy.DER,
		WaterIntakeML: sess.Energy.WaterIntakeML,
		GeneratedAt:   s.now(),
	}
	if sess.Intake != nil {
		d.Intake = &report.IntakeSummary{
			TotalKcal:         sess.Intake.TotalKcal,
			CalorieDifference: sess.Intake.CalorieDifference,
		}
	}
	if sess.Plan != nil {
		d.Plan = &report.PlanSummary{
			WetPercentage:    sess.Plan.WetPercentage,
			RequiredDryGrams: sess.Plan.RequiredDryGrams,
			RequiredWetGrams: sess.Plan.RequiredWetGrams,
		}
	}
	return d, nil
}
