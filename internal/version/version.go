// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - Moon phase search with supermoon/micromoon tagging, --watch mode
// 0.3.0 - Moonrise/moonset, moon illumination and parallactic angle
// 0.2.0 - Twilight presets, custom sun angles, noon/nadir refinement
// 0.1.0 - Initial release: sun/moon positions, sunrise/sunset, TUI almanac
