package nutrition

import (
	"errors"
	"math"
	"testing"
)

func TestPlanFeeding_Example(t *testing.T) {
	plan, err := PlanFeeding(300, 50, 4000, 100)
	if err != nil {
		t.Fatalf("PlanFeeding: %v", err)
	}
	// 150 kcal secas a 4000 kcal/kg -> 37.5 g; 150 kcal húmedas a 100 kcal/100g -> 150 g.
	if math.Abs(plan.RequiredDryGrams-37.5) > 1e-9 {
		t.Fatalf("dry grams = %v, want 37.5", plan.RequiredDryGrams)
	}
	if math.Abs(plan.RequiredWetGrams-150) > 1e-9 {
		t.Fatalf("wet grams = %v, want 150", plan.RequiredWetGrams)
	}
	if plan.WetPercentage != 50 {
		t.Fatalf("wet percentage = %d, want 50", plan.WetPercentage)
	}
}

func TestPlanFeeding_ZeroDensityMeansZeroGrams(t *testing.T) {
	plan, err := PlanFeeding(300, 50, 0, 100)
	if err != nil {
		t.Fatalf("unexpected error with zero dry density: %v", err)
	}
	if plan.RequiredDryGrams != 0 {
		t.Fatalf("dry grams = %v, want 0", plan.RequiredDryGrams)
	}
	if plan.RequiredWetGrams == 0 {
		t.Fatalf("wet grams should still be computed")
	}

	plan, err = PlanFeeding(300, 50, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error with both densities zero: %v", err)
	}
	if plan.RequiredDryGrams != 0 || plan.RequiredWetGrams != 0 {
		t.Fatalf("expected 0g/0g plan, got %+v", plan)
	}
}

func TestPlanFeeding_FullSplitEdges(t *testing.T) {
	p, err := PlanFeeding(200, 0, 4000, 80)
	if err != nil {
		t.Fatalf("wet 0%%: %v", err)
	}
	if p.RequiredWetGrams != 0 || p.RequiredDryGrams != 50 {
		t.Fatalf("wet 0%%: got %+v", p)
	}

	p, err = PlanFeeding(200, 100, 4000, 80)
	if err != nil {
		t.Fatalf("wet 100%%: %v", err)
	}
	if p.RequiredDryGrams != 0 || p.RequiredWetGrams != 250 {
		t.Fatalf("wet 100%%: got %+v", p)
	}
}

func TestPlanFeeding_Invalid(t *testing.T) {
	if _, err := PlanFeeding(0, 50, 4000, 100); !errors.Is(err, ErrEnergyRequired) {
		t.Fatalf("expected ErrEnergyRequired, got %v", err)
	}
	if _, err := PlanFeeding(300, -1, 4000, 100); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("wet -1: expected ErrInvalidInput, got %v", err)
	}
	if _, err := PlanFeeding(300, 101, 4000, 100); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("wet 101: expected ErrInvalidInput, got %v", err)
	}
	if _, err := PlanFeeding(300, 50, -10, 100); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative density: expected ErrInvalidInput, got %v", err)
	}
}
