package catalog

import "fmt"

// HeaderSize is the fixed on-disk header length: seven 4-byte signed
// integers.
const HeaderSize = 28

// Header field offsets. Offsets 0 and 16 hold reserved integers that the
// format defines but no known catalog uses.
const (
	offStarCount      = 4
	offStarID         = 8
	offProperMotion   = 12
	offMagnitudeCount = 20
	offBytesPerRecord = 24
)

// maxMagnitudeColumns bounds the magnitude-count field for byte-order
// detection. Real catalogs carry at most 10 magnitude columns; a value
// outside that range means the bytes are being read in the wrong order.
// This is a structural precondition of the format, not a runtime guess.
const maxMagnitudeColumns = 10

// ParseHeader decodes the first HeaderSize bytes of a catalog.
//
// When opts.ByteOrder is OrderAuto the order is resolved from the
// magnitude-count field: decode little-endian first, retry big-endian if the
// value is implausible, and fail with ErrInvalidHeader if neither order
// yields a plausible count. A forced order decodes once and the error
// suggests trying the opposite order.
//
// When opts.Epoch asserts J2000 or B1950 and the header derives the other,
// ParseHeader fails with ErrEpochMismatch.
func ParseHeader(data []byte, opts Options) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, need %d", ErrMissingHeader, len(data), HeaderSize)
	}

	resolved, magRaw, err := resolveByteOrder(data, opts.ByteOrder)
	if err != nil {
		return Header{}, err
	}
	order := resolved.binaryOrder()

	starRaw := readInt32(data[offStarCount:], order)
	idRaw := readInt32(data[offStarID:], order)
	motionRaw := readInt32(data[offProperMotion:], order)
	stride := readInt32(data[offBytesPerRecord:], order)

	// A negative star count or magnitude count marks J2000 coordinates.
	isJ2000 := starRaw < 0 || magRaw < 0
	switch {
	case opts.Epoch == EpochJ2000 && !isJ2000:
		return Header{}, fmt.Errorf("%w: expected J2000 but found B1950", ErrEpochMismatch)
	case opts.Epoch == EpochB1950 && isJ2000:
		return Header{}, fmt.Errorf("%w: expected B1950 but found J2000", ErrEpochMismatch)
	}

	hdr := Header{
		StarCount:      abs(int(starRaw)),
		ProperMotion:   ProperMotionKind(motionRaw),
		MagnitudeCount: abs(int(magRaw)),
		BytesPerRecord: int(stride),
		ByteOrder:      resolved,
	}
	if idRaw < 0 {
		hdr.StarID = StarIDNone
		hdr.NameLength = int(-idRaw)
	} else {
		hdr.StarID = StarIDKind(idRaw)
	}
	if isJ2000 {
		hdr.Epoch = EpochJ2000
	} else {
		hdr.Epoch = EpochB1950
	}

	return hdr, nil
}

// resolveByteOrder settles the catalog byte order using the magnitude-count
// field and returns the order together with the raw signed value (its sign
// feeds epoch derivation).
func resolveByteOrder(data []byte, forced ByteOrder) (ByteOrder, int32, error) {
	field := data[offMagnitudeCount:]

	switch forced {
	case OrderLittle, OrderBig:
		raw := readInt32(field, forced.binaryOrder())
		if abs32(raw) > maxMagnitudeColumns {
			return 0, 0, fmt.Errorf("%w: %d magnitude columns as %s, maybe try %s?",
				ErrInvalidHeader, raw, forced, opposite(forced))
		}
		return forced, raw, nil
	}

	raw := readInt32(field, OrderLittle.binaryOrder())
	if abs32(raw) <= maxMagnitudeColumns {
		return OrderLittle, raw, nil
	}
	raw = readInt32(field, OrderBig.binaryOrder())
	if abs32(raw) <= maxMagnitudeColumns {
		return OrderBig, raw, nil
	}
	return 0, 0, fmt.Errorf("%w: magnitude count implausible in either byte order", ErrInvalidHeader)
}

func opposite(o ByteOrder) ByteOrder {
	if o == OrderLittle {
		return OrderBig
	}
	return OrderLittle
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
