package suncalc

import (
	"testing"
	"time"
)

var (
	cologne = Observer{LatDeg: 50.938056, LonDeg: 6.956944}
	alert   = Observer{LatDeg: 82.501, LonDeg: -62.338}
	cet     = time.FixedZone("CET", 3600)
)

// wantWithin fails unless got is within tolerance of want.
func wantWithin(t *testing.T, label string, got *time.Time, want time.Time, tolerance time.Duration) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s: no event found, want %v", label, want)
	}
	diff := got.Sub(want)
	if diff < -tolerance || diff > tolerance {
		t.Errorf("%s = %v, want %v +- %v", label, got, want, tolerance)
	}
}

func TestSunTimesCologne(t *testing.T) {
	start := time.Date(2017, 2, 10, 0, 0, 0, 0, cet)

	st, err := ComputeSunTimes(start, cologne, SunTimesConfig{})
	if err != nil {
		t.Fatalf("ComputeSunTimes() error: %v", err)
	}

	// Published almanac values for Cologne: rise 07:54, set 17:39 CET.
	wantWithin(t, "rise", st.Rise, time.Date(2017, 2, 10, 7, 54, 0, 0, cet), 10*time.Minute)
	wantWithin(t, "set", st.Set, time.Date(2017, 2, 10, 17, 39, 0, 0, cet), 10*time.Minute)

	if st.Noon == nil || st.Nadir == nil {
		t.Fatalf("noon/nadir missing: %+v", st)
	}
	if !st.Rise.Before(*st.Noon) || !st.Noon.Before(*st.Set) {
		t.Errorf("events out of order: rise %v, noon %v, set %v", st.Rise, st.Noon, st.Set)
	}
	if st.AlwaysUp || st.AlwaysDown {
		t.Errorf("polar flags set at mid latitude: %+v", st)
	}
}

func TestSunTimesTwilightOrdering(t *testing.T) {
	start := time.Date(2017, 2, 10, 0, 0, 0, 0, cet)

	visual, err := ComputeSunTimes(start, cologne, SunTimesConfig{Twilight: TwilightVisual})
	if err != nil {
		t.Fatalf("visual: %v", err)
	}
	civil, err := ComputeSunTimes(start, cologne, SunTimesConfig{Twilight: TwilightCivil})
	if err != nil {
		t.Fatalf("civil: %v", err)
	}
	astronomical, err := ComputeSunTimes(start, cologne, SunTimesConfig{Twilight: TwilightAstronomical})
	if err != nil {
		t.Fatalf("astronomical: %v", err)
	}

	// Deeper sun angles mean earlier dawn and later dusk.
	if !astronomical.Rise.Before(*civil.Rise) || !civil.Rise.Before(*visual.Rise) {
		t.Errorf("dawn order wrong: astronomical %v, civil %v, visual %v",
			astronomical.Rise, civil.Rise, visual.Rise)
	}
	if !visual.Set.Before(*civil.Set) || !civil.Set.Before(*astronomical.Set) {
		t.Errorf("dusk order wrong: visual %v, civil %v, astronomical %v",
			visual.Set, civil.Set, astronomical.Set)
	}
}

func TestSunTimesCustomAngle(t *testing.T) {
	start := time.Date(2017, 2, 10, 0, 0, 0, 0, cet)
	angle := -6.0

	custom, err := ComputeSunTimes(start, cologne, SunTimesConfig{AngleDeg: &angle})
	if err != nil {
		t.Fatalf("custom angle: %v", err)
	}
	civil, err := ComputeSunTimes(start, cologne, SunTimesConfig{Twilight: TwilightCivil})
	if err != nil {
		t.Fatalf("civil: %v", err)
	}

	if d := custom.Rise.Sub(*civil.Rise); d < -time.Second || d > time.Second {
		t.Errorf("custom -6 deg rise %v differs from civil rise %v", custom.Rise, civil.Rise)
	}
}

func TestSunTimesPolarSummer(t *testing.T) {
	start := time.Date(2020, 6, 10, 0, 0, 0, 0, time.UTC)

	st, err := ComputeSunTimes(start, alert, SunTimesConfig{Window: 24 * time.Hour})
	if err != nil {
		t.Fatalf("ComputeSunTimes() error: %v", err)
	}

	if !st.AlwaysUp {
		t.Errorf("AlwaysUp = false in polar summer")
	}
	if st.Rise != nil || st.Set != nil {
		t.Errorf("rise/set found in polar summer: %+v", st)
	}
}

func TestSunTimesPolarWinter(t *testing.T) {
	start := time.Date(2020, 12, 10, 0, 0, 0, 0, time.UTC)

	st, err := ComputeSunTimes(start, alert, SunTimesConfig{Window: 24 * time.Hour})
	if err != nil {
		t.Fatalf("ComputeSunTimes() error: %v", err)
	}

	if !st.AlwaysDown {
		t.Errorf("AlwaysDown = false in polar winter")
	}
	if st.Rise != nil || st.Set != nil {
		t.Errorf("rise/set found in polar winter: %+v", st)
	}
}

func TestSunTimesPolarYearWindow(t *testing.T) {
	// With a full year to search, even Alert gets a sunrise eventually.
	start := time.Date(2020, 12, 10, 0, 0, 0, 0, time.UTC)

	st, err := ComputeSunTimes(start, alert, SunTimesConfig{})
	if err != nil {
		t.Fatalf("ComputeSunTimes() error: %v", err)
	}

	if st.Rise == nil {
		t.Fatalf("no rise found within a year at Alert")
	}
	if st.AlwaysDown {
		t.Errorf("AlwaysDown still set after a rise was found")
	}
	// Polar night at 82.5 degrees north ends around the end of February.
	if st.Rise.Month() != time.February && st.Rise.Month() != time.March {
		t.Errorf("rise = %v, want late February or March", st.Rise)
	}
}

func TestSunTimesValidation(t *testing.T) {
	start := time.Date(2020, 6, 10, 0, 0, 0, 0, time.UTC)

	if _, err := ComputeSunTimes(start, Observer{LatDeg: 91}, SunTimesConfig{}); err != ErrLatitudeRange {
		t.Errorf("latitude error = %v, want ErrLatitudeRange", err)
	}
	if _, err := ComputeSunTimes(start, Observer{LonDeg: -181}, SunTimesConfig{}); err != ErrLongitudeRange {
		t.Errorf("longitude error = %v, want ErrLongitudeRange", err)
	}
	if _, err := ComputeSunTimes(start, cologne, SunTimesConfig{Window: -time.Hour}); err != ErrNegativeWindow {
		t.Errorf("window error = %v, want ErrNegativeWindow", err)
	}
}
