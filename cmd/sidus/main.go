// Command sidus converts binary star catalogs in the Yale Bright Star / SAO
// layout to delimited text or a C source table, reports catalog metadata,
// and can browse a catalog in an interactive sky view.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/sidus/internal/catalog"
	"github.com/litescript/sidus/internal/format"
	"github.com/litescript/sidus/internal/logging"
	"github.com/litescript/sidus/internal/ui"
	"github.com/litescript/sidus/internal/version"
)

var (
	magIndex = flag.Int("a", -1, "apparent magnitude column, if multiple exist")
	magLimit = flag.Float64("f", math.Inf(1), "filter out stars with magnitude weaker than this value")
	b1950    = flag.Bool("B1950", false, "expect B1950 epoch")
	j2000    = flag.Bool("J2000", false, "expect J2000 epoch")
	cTable   = flag.Bool("c", false, "output a C header instead of delimited text")
	little   = flag.Bool("le", false, "expect little-endian format")
	big      = flag.Bool("be", false, "expect big-endian format")
	single   = flag.Bool("s", false, "output single-precision floating point")
	infoOnly = flag.Bool("i", false, "output only information from the catalog header")
	sortMag  = flag.Bool("m", false, "sort output by decreasing brightness")
	sortRA   = flag.Bool("r", false, "sort output by increasing right ascension")
	useNames = flag.Bool("n", false, "output star names")
	useTypes = flag.Bool("p", false, "output spectral class")
	skyMode  = flag.Bool("sky", false, "browse the catalog in an interactive sky view")
	logLevel = flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	showVer  = flag.Bool("version", false, "show version information")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *showVer {
		fmt.Printf("sidus v%s\n", version.Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sidus: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: sidus [option(s)] <input-file>\n")
	fmt.Fprintf(flag.CommandLine.Output(), "Options:\n")
	flag.PrintDefaults()
}

func run() error {
	input := flag.Arg(0)
	if input == "" {
		usage()
		return fmt.Errorf("no input file")
	}

	if *b1950 && *j2000 {
		return fmt.Errorf("-B1950 and -J2000 are mutually exclusive")
	}
	if *little && *big {
		return fmt.Errorf("-le and -be are mutually exclusive")
	}
	if *sortMag && *sortRA {
		return fmt.Errorf("-m and -r are mutually exclusive")
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	opts := catalog.DefaultOptions()
	opts.MagnitudeIndex = *magIndex
	opts.MagnitudeLimit = *magLimit
	opts.Logger = logger
	switch {
	case *b1950:
		opts.Epoch = catalog.EpochB1950
	case *j2000:
		opts.Epoch = catalog.EpochJ2000
	}
	switch {
	case *little:
		opts.ByteOrder = catalog.OrderLittle
	case *big:
		opts.ByteOrder = catalog.OrderBig
	}

	// Info mode reports the header without parsing a single record.
	if *infoOnly {
		hdr, err := catalog.ReadHeaderFile(input, opts)
		if err != nil {
			return err
		}
		return format.WriteInfo(os.Stdout, hdr)
	}

	cat, err := catalog.ReadFile(input, opts)
	if err != nil {
		return err
	}
	logger.Debug("parsed %d stars (%d skipped) from %s", len(cat.Stars), cat.Skipped, input)

	if *skyMode {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("sky view needs a terminal")
		}
		p := tea.NewProgram(ui.New(cat), tea.WithAltScreen())
		_, err := p.Run()
		return err
	}

	fopts := format.Options{
		SinglePrecision: *single,
		Names:           *useNames && cat.Header.NameLength > 0,
		SpectralTypes:   *useTypes,
	}

	mode := format.SortNone
	switch {
	case *sortMag:
		mode = format.SortMagnitude
	case *sortRA:
		mode = format.SortRightAscension
	}
	format.SortStars(cat.Stars, mode)

	if *cTable {
		return format.WriteCTable(os.Stdout, cat.Stars, cat.Header.Epoch, input, fopts)
	}
	return format.WriteCSV(os.Stdout, cat.Stars, fopts)
}
