package catalog

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Field widths inside a record.
const (
	idWidth        = 4
	coordWidth     = 8
	spectralWidth  = 2
	magnitudeWidth = 2
	rateWidth      = 4
	velocityWidth  = 8
)

// recordLayout is the field table for one catalog: every offset and width a
// record decode needs, computed once from the header so the per-record loop
// never re-branches on header enums.
type recordLayout struct {
	order binary.ByteOrder

	idKind    StarIDKind
	idOff     int // -1 when the catalog stores no identifier
	raOff     int
	decOff    int
	specOff   int
	magOff    int // start of the magnitude block
	magCount  int
	magIndex  int // selected apparent-magnitude slot
	motion    ProperMotionKind
	motionOff int
	nameOff   int
	nameLen   int

	size int // bytes a record slice must provide
}

// newRecordLayout lays out the record fields in format order: identifier,
// right ascension, declination, spectral type, magnitudes, proper motion or
// radial velocity, name.
func newRecordLayout(hdr Header, magIndex int) recordLayout {
	l := recordLayout{
		order:    hdr.ByteOrder.binaryOrder(),
		idKind:   hdr.StarID,
		idOff:    -1,
		magCount: hdr.MagnitudeCount,
		magIndex: magIndex,
		motion:   hdr.ProperMotion,
		nameLen:  hdr.NameLength,
	}

	cursor := 0
	if hdr.StarID != StarIDNone {
		l.idOff = cursor
		cursor += idWidth
	}
	l.raOff = cursor
	cursor += coordWidth
	l.decOff = cursor
	cursor += coordWidth
	l.specOff = cursor
	cursor += spectralWidth
	l.magOff = cursor
	cursor += magnitudeWidth * hdr.MagnitudeCount
	l.motionOff = cursor
	switch hdr.ProperMotion {
	case MotionProper:
		cursor += 2 * rateWidth
	case MotionRadialVelocity:
		cursor += velocityWidth
	}
	l.nameOff = cursor
	cursor += hdr.NameLength

	l.size = cursor
	return l
}

// parse decodes one record. Inside a correctly sized slice a record cannot
// fail; the only error is an undersized slice, which the reader treats as
// non-fatal and skips.
func (l recordLayout) parse(data []byte) (Star, error) {
	if len(data) < l.size {
		return Star{}, fmt.Errorf("record is %d bytes, layout needs %d", len(data), l.size)
	}

	var star Star

	switch l.idKind {
	case StarIDCatalog, StarIDGSC, StarIDTycho:
		star.ID = float64(readFloat32(data[l.idOff:], l.order))
	case StarIDInteger:
		star.ID = float64(readInt32(data[l.idOff:], l.order))
	}

	star.RightAscension = readFloat64(data[l.raOff:], l.order)
	star.Declination = readFloat64(data[l.decOff:], l.order)
	star.SpectralType = string(data[l.specOff : l.specOff+spectralWidth])

	// All magnitude slots are consumed by the layout; only the selected
	// one is kept, stored on disk in hundredths.
	raw := readInt16(data[l.magOff+magnitudeWidth*l.magIndex:], l.order)
	star.Magnitude = float32(raw) / 100

	switch l.motion {
	case MotionProper:
		star.MotionRA = readFloat32(data[l.motionOff:], l.order)
		star.MotionDec = readFloat32(data[l.motionOff+rateWidth:], l.order)
	case MotionRadialVelocity:
		star.RadialVelocity = readFloat64(data[l.motionOff:], l.order)
	}

	if l.nameLen > 0 {
		star.Name = cString(data[l.nameOff : l.nameOff+l.nameLen])
	}

	return star, nil
}

// cString copies a fixed-width name field, stopping at the first NUL the way
// the catalogs' C producers wrote them.
func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
