package ui

import (
	"fmt"
	"io"
	"time"

	suncalc "github.com/litescript/ls-suncalc"
)

// WriteSummary prints a plain-text almanac for the given instant. It is the
// headless counterpart of the TUI view.
func WriteSummary(w io.Writer, cfg Config, at time.Time) error {
	a, err := computeAlmanac(cfg, at)
	if err != nil {
		return err
	}

	obs := cfg.Observer
	fmt.Fprintf(w, "Almanac for %s %s at %s\n",
		formatLat(obs.LatDeg), formatLon(obs.LonDeg), at.Format("2006-01-02 15:04 MST"))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Sun")
	fmt.Fprintf(w, "  Azimuth    %7.2f°\n", a.SunPos.Azimuth)
	fmt.Fprintf(w, "  Altitude   %+7.2f° (true %+.2f°)\n", a.SunPos.Altitude, a.SunPos.TrueAltitude)
	fmt.Fprintf(w, "  Distance   %.0f km\n", a.SunPos.Distance)
	writeSunEvents(w, a.SunTimes, cfg.Twilight)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Moon")
	fmt.Fprintf(w, "  Azimuth    %7.2f°\n", a.MoonPos.Azimuth)
	fmt.Fprintf(w, "  Altitude   %+7.2f°\n", a.MoonPos.Altitude)
	fmt.Fprintf(w, "  Distance   %.0f km\n", a.MoonPos.Distance)
	fmt.Fprintf(w, "  Phase      %s (%.0f%% illuminated)\n", a.Illum.ClosestPhase(), a.Illum.Fraction*100)
	writeMoonEvents(w, a.MoonTimes)
	fmt.Fprintf(w, "  New moon   %s%s\n", a.NextNew.Time.Format("2006-01-02 15:04"), phaseTag(a.NextNew))
	fmt.Fprintf(w, "  Full moon  %s%s\n", a.NextFull.Time.Format("2006-01-02 15:04"), phaseTag(a.NextFull))

	return nil
}

func writeSunEvents(w io.Writer, st suncalc.SunTimes, tw suncalc.Twilight) {
	switch {
	case st.AlwaysUp:
		fmt.Fprintf(w, "  Above %s horizon for the whole window\n", tw)
	case st.AlwaysDown:
		fmt.Fprintf(w, "  Below %s horizon for the whole window\n", tw)
	}
	writeEvent(w, "Rise", st.Rise)
	writeEvent(w, "Set", st.Set)
	writeEvent(w, "Noon", st.Noon)
	writeEvent(w, "Nadir", st.Nadir)
}

func writeMoonEvents(w io.Writer, mt suncalc.MoonTimes) {
	switch {
	case mt.AlwaysUp:
		fmt.Fprintln(w, "  Above the horizon for the whole window")
	case mt.AlwaysDown:
		fmt.Fprintln(w, "  Below the horizon for the whole window")
	}
	writeEvent(w, "Rise", mt.Rise)
	writeEvent(w, "Set", mt.Set)
}

func writeEvent(w io.Writer, label string, t *time.Time) {
	if t == nil {
		fmt.Fprintf(w, "  %-10s —\n", label)
		return
	}
	fmt.Fprintf(w, "  %-10s %s\n", label, t.Format("2006-01-02 15:04"))
}

// phaseTag annotates a moon phase with its apparent size class.
func phaseTag(p suncalc.MoonPhase) string {
	switch {
	case p.IsSuperMoon():
		return " (supermoon)"
	case p.IsMicroMoon():
		return " (micromoon)"
	default:
		return ""
	}
}
