package format

import (
	"fmt"
	"io"

	"github.com/litescript/sidus/internal/catalog"
)

// Options selects which columns appear and how floats are printed. It is an
// explicit value threaded into every writer; nothing here is process state.
type Options struct {
	SinglePrecision bool // print 9 decimals instead of 17
	Names           bool // include the star name column
	SpectralTypes   bool // include the 2-character spectral code
}

// WriteCSV writes one comma-separated line per star: optional name, right
// ascension and declination in radians, magnitude, optional spectral code.
func WriteCSV(w io.Writer, stars []catalog.Star, opts Options) error {
	for _, star := range stars {
		if opts.Names {
			if _, err := fmt.Fprintf(w, "%s,", star.Name); err != nil {
				return err
			}
		}
		var err error
		if opts.SinglePrecision {
			_, err = fmt.Fprintf(w, "%.9f,%.9f,%.9f",
				star.RightAscension, star.Declination, float64(star.Magnitude))
		} else {
			_, err = fmt.Fprintf(w, "%.17f,%.17f,%.17f",
				star.RightAscension, star.Declination, float64(star.Magnitude))
		}
		if err != nil {
			return err
		}
		if opts.SpectralTypes {
			if _, err := fmt.Fprintf(w, ",%s", star.SpectralType); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
