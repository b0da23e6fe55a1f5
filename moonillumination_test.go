package suncalc

import (
	"math"
	"testing"
	"time"
)

func TestMoonIlluminationAtFullMoon(t *testing.T) {
	// Full moon on 2024-01-25 17:54 UTC.
	mi := ComputeMoonIllumination(time.Date(2024, 1, 25, 17, 54, 0, 0, time.UTC))

	if mi.Fraction < 0.98 {
		t.Errorf("fraction = %v, want nearly 1 at full moon", mi.Fraction)
	}
	if math.Abs(mi.Phase) > 15.0 {
		t.Errorf("phase = %v deg, want near 0 at full moon", mi.Phase)
	}
	if got := mi.ClosestPhase(); got != FullMoon {
		t.Errorf("ClosestPhase() = %v, want full moon", got)
	}
}

func TestMoonIlluminationAtNewMoon(t *testing.T) {
	// New moon on 2024-01-11 11:57 UTC.
	mi := ComputeMoonIllumination(time.Date(2024, 1, 11, 11, 57, 0, 0, time.UTC))

	if mi.Fraction > 0.02 {
		t.Errorf("fraction = %v, want nearly 0 at new moon", mi.Fraction)
	}
	if math.Abs(mi.Phase) < 165.0 {
		t.Errorf("phase = %v deg, want near +-180 at new moon", mi.Phase)
	}
	if got := mi.ClosestPhase(); got != NewMoon {
		t.Errorf("ClosestPhase() = %v, want new moon", got)
	}
}

func TestMoonIlluminationWaxingNegative(t *testing.T) {
	// A few days after new moon the phase angle is negative (waxing).
	mi := ComputeMoonIllumination(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))

	if mi.Phase >= 0.0 {
		t.Errorf("phase = %v, want negative while waxing", mi.Phase)
	}
	if mi.Fraction <= 0.02 || mi.Fraction >= 0.5 {
		t.Errorf("fraction = %v, want a young crescent", mi.Fraction)
	}
}

func TestMoonIlluminationFractionBounds(t *testing.T) {
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	for day := 0; day < 30; day++ {
		mi := ComputeMoonIllumination(start.AddDate(0, 0, day))
		if mi.Fraction < 0.0 || mi.Fraction > 1.0 {
			t.Fatalf("day %d: fraction = %v, outside [0, 1]", day, mi.Fraction)
		}
		if mi.Phase < -180.0 || mi.Phase > 180.0 {
			t.Fatalf("day %d: phase = %v, outside [-180, 180]", day, mi.Phase)
		}
	}
}
