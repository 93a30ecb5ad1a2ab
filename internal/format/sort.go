// Package format renders parsed catalogs as delimited text, C source tables,
// or a header-only information report.
package format

import (
	"sort"

	"github.com/litescript/sidus/internal/catalog"
)

// SortMode selects the output ordering.
type SortMode int

const (
	SortNone           SortMode = iota // catalog order
	SortMagnitude                      // brightest first (ascending magnitude value)
	SortRightAscension                 // ascending right ascension
)

// SortStars reorders stars in place. The sort is stable, so equal keys keep
// their catalog order.
func SortStars(stars []catalog.Star, mode SortMode) {
	switch mode {
	case SortMagnitude:
		sort.SliceStable(stars, func(i, j int) bool {
			return stars[i].Magnitude < stars[j].Magnitude
		})
	case SortRightAscension:
		sort.SliceStable(stars, func(i, j int) bool {
			return stars[i].RightAscension < stars[j].RightAscension
		})
	}
}
