package nutrition

import (
	"errors"
	"math"
	"testing"
)

func TestAnalyzeIntake_Example(t *testing.T) {
	res, err := AnalyzeIntake(250, FoodInput{
		DryGrams:        50,
		DryKcalPer1000g: 3500,
		WetGrams:        100,
		WetKcalPer100g:  90,
	})
	if err != nil {
		t.Fatalf("AnalyzeIntake: %v", err)
	}

	if math.Abs(res.DryKcal-175) > 1e-9 {
		t.Fatalf("dry kcal = %v, want 175", res.DryKcal)
	}
	if math.Abs(res.WetKcal-90) > 1e-9 {
		t.Fatalf("wet kcal = %v, want 90", res.WetKcal)
	}
	if math.Abs(res.TotalKcal-265) > 1e-9 {
		t.Fatalf("total = %v, want 265", res.TotalKcal)
	}
	if math.Abs(res.CalorieDifference-15) > 1e-9 {
		t.Fatalf("difference = %v, want +15", res.CalorieDifference)
	}
	if got := Classify(res.CalorieDifference); got != StatusOverTarget {
		t.Fatalf("status = %s, want over_target", got)
	}
}

func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		diff float64
		want IntakeStatus
	}{
		{5, StatusOnTarget},
		{-5, StatusOnTarget},
		{0, StatusOnTarget},
		{5.0001, StatusOverTarget},
		{-5.0001, StatusUnderTarget},
		{120, StatusOverTarget},
		{-42, StatusUnderTarget},
	}
	for _, tc := range cases {
		if got := Classify(tc.diff); got != tc.want {
			t.Errorf("Classify(%v) = %s, want %s", tc.diff, got, tc.want)
		}
	}
}

func TestAnalyzeIntake_RequiresDER(t *testing.T) {
	if _, err := AnalyzeIntake(0, FoodInput{}); !errors.Is(err, ErrEnergyRequired) {
		t.Fatalf("expected ErrEnergyRequired, got %v", err)
	}
	if _, err := AnalyzeIntake(-10, FoodInput{}); !errors.Is(err, ErrEnergyRequired) {
		t.Fatalf("expected ErrEnergyRequired for negative der, got %v", err)
	}
}

func TestAnalyzeIntake_RejectsNegativeQuantities(t *testing.T) {
	bad := []FoodInput{
		{DryGrams: -1},
		{DryKcalPer1000g: -1},
		{WetGrams: -1},
		{WetKcalPer100g: -1},
	}
	for i, f := range bad {
		if _, err := AnalyzeIntake(200, f); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}
