// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Rashi wheel view, ingress event log, diff and watch modes
// 0.2.0 - Mean-series sidereal provider, Lahiri ayanamsa, ascendant math
// 0.1.0 - Initial release: sphuta catalog, Gulika/Mandi, summary and JSON output
