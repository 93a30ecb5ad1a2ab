package catalog

import (
	"fmt"
	"math"
	"os"

	"github.com/litescript/sidus/internal/logging"
)

// Options configures a catalog read. The zero value asserts nothing; use
// DefaultOptions for the conventional defaults.
type Options struct {
	// Epoch asserts the expected coordinate epoch. EpochAuto accepts
	// whatever the header derives; anything else must match it.
	Epoch Epoch

	// ByteOrder forces the file byte order. OrderAuto detects it from
	// the header.
	ByteOrder ByteOrder

	// MagnitudeIndex selects which magnitude column becomes the star's
	// apparent magnitude. Negative means the last column. An override can
	// only select an earlier column; later values clamp to the last one.
	MagnitudeIndex int

	// MagnitudeLimit drops stars whose magnitude exceeds it (higher
	// magnitude = dimmer). math.Inf(1) keeps everything.
	MagnitudeLimit float64

	// Logger receives per-record skip warnings. Nil discards them.
	Logger *logging.Logger
}

// DefaultOptions returns Options with auto detection, the last magnitude
// column, and no magnitude filtering.
func DefaultOptions() Options {
	return Options{
		MagnitudeIndex: -1,
		MagnitudeLimit: math.Inf(1),
	}
}

// ReadHeader parses and validates the catalog header without touching any
// record: size bounds, byte order, epoch, record stride, and magnitude-column
// count. This is everything the catalog-info report needs.
func ReadHeader(data []byte, opts Options) (Header, error) {
	if len(data) == 0 {
		return Header{}, ErrEmptyCatalog
	}
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrMissingHeader, len(data))
	}

	hdr, err := ParseHeader(data, opts)
	if err != nil {
		return Header{}, err
	}

	// A non-positive stride can never hold a record; reject it before the
	// size arithmetic below, which a negative stride would satisfy.
	if hdr.BytesPerRecord < 1 {
		return Header{}, fmt.Errorf("%w: %d bytes per record", ErrInvalidHeader, hdr.BytesPerRecord)
	}

	required := HeaderSize + hdr.StarCount*hdr.BytesPerRecord
	if len(data) < required {
		return Header{}, fmt.Errorf("%w: %d stars at %d bytes each need %d bytes, have %d",
			ErrTruncatedCatalog, hdr.StarCount, hdr.BytesPerRecord, required, len(data))
	}
	if hdr.MagnitudeCount < 1 {
		return Header{}, fmt.Errorf("%w: found %d", ErrNoMagnitudes, hdr.MagnitudeCount)
	}

	return hdr, nil
}

// Read decodes a whole catalog: header, then StarCount records at stride
// BytesPerRecord from offset HeaderSize. Records that cannot be decoded are
// skipped and counted, not fatal. Stars above the magnitude limit and the
// all-zero sentinel entries some catalogs pad with are filtered out.
func Read(data []byte, opts Options) (*Catalog, error) {
	hdr, err := ReadHeader(data, opts)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	layout := newRecordLayout(hdr, resolveMagnitudeIndex(hdr, opts.MagnitudeIndex))
	cat := &Catalog{Header: hdr}

	offset := HeaderSize
	for i := 0; i < hdr.StarCount; i++ {
		star, err := layout.parse(data[offset : offset+hdr.BytesPerRecord])
		offset += hdr.BytesPerRecord
		if err != nil {
			cat.Skipped++
			log.Warn("skipping record %d: %v", i, err)
			continue
		}
		if float64(star.Magnitude) > opts.MagnitudeLimit {
			continue
		}
		// Some catalogs pad with blank entries; a star at exactly
		// (0, 0) with magnitude 0 is one of them.
		if star.Magnitude == 0 && star.RightAscension == 0 && star.Declination == 0 {
			continue
		}
		cat.Stars = append(cat.Stars, star)
	}

	if cat.Skipped > 0 {
		log.Warn("skipped %d of %d records", cat.Skipped, hdr.StarCount)
	}

	return cat, nil
}

// ReadFile reads and decodes the catalog at path.
func ReadFile(path string, opts Options) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Read(data, opts)
}

// ReadHeaderFile reads only the header of the catalog at path, validating
// the file's structure without parsing records.
func ReadHeaderFile(path string, opts Options) (Header, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Header{}, fmt.Errorf("read catalog: %w", err)
	}
	return ReadHeader(data, opts)
}

// resolveMagnitudeIndex picks the apparent-magnitude column: the last column
// by default, or the requested one when it selects an earlier column. The
// index never passes the last column.
func resolveMagnitudeIndex(hdr Header, requested int) int {
	idx := hdr.MagnitudeCount - 1
	if requested >= 0 && requested < idx {
		idx = requested
	}
	return idx
}
