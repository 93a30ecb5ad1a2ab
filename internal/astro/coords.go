// Package astro provides coordinate conversions and display formatting for
// catalog star positions.
package astro

import (
	"fmt"
	"math"
)

// Catalogs store positions in radians; displays want degrees or sexagesimal.

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// NormalizeRA wraps a right ascension in degrees to [0, 360).
func NormalizeRA(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// FormatRA renders a right ascension (radians) as hours, minutes and
// seconds, e.g. "06h45m09.2s". Rounding happens at the display precision
// (tenths of a second) so 59.96s carries into the minute instead of
// printing 60.0.
func FormatRA(rad float64) string {
	tenths := int(math.Round(NormalizeRA(RadToDeg(rad)) / 15 * 36000))
	tenths %= 24 * 36000
	h := tenths / 36000
	m := tenths % 36000 / 600
	s := float64(tenths%600) / 10
	return fmt.Sprintf("%02dh%02dm%04.1fs", h, m, s)
}

// FormatDec renders a declination (radians) as signed degrees, arcminutes
// and arcseconds, e.g. "-16d42m58s". Rounded to whole arcseconds first so
// 59.5s carries into the arcminute.
func FormatDec(rad float64) string {
	deg := RadToDeg(rad)
	sign := "+"
	if deg < 0 {
		sign = "-"
		deg = -deg
	}
	secs := int(math.Round(deg * 3600))
	d := secs / 3600
	m := secs % 3600 / 60
	s := secs % 60
	return fmt.Sprintf("%s%02dd%02dm%02ds", sign, d, m, s)
}
