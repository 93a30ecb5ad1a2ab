// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.2.0"

// Milestones:
// 0.2.0 - Interactive sky view over parsed catalogs, skipped-record reporting
// 0.1.0 - Initial release: binary catalog reader, CSV and C table output,
//         catalog info mode, byte-order auto-detection
