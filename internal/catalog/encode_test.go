package catalog

import (
	"encoding/binary"
	"math"
)

// Test helpers that encode synthetic catalogs. The encoders mirror the
// on-disk layout so tests can assert round-trip properties.

// putHeader encodes the seven header integers in the given order. Reserved
// fields at offsets 0 and 16 stay zero.
func putHeader(order binary.ByteOrder, starCount, starID, motion, magCount, stride int32) []byte {
	b := make([]byte, HeaderSize)
	order.PutUint32(b[offStarCount:], uint32(starCount))
	order.PutUint32(b[offStarID:], uint32(starID))
	order.PutUint32(b[offProperMotion:], uint32(motion))
	order.PutUint32(b[offMagnitudeCount:], uint32(magCount))
	order.PutUint32(b[offBytesPerRecord:], uint32(stride))
	return b
}

// starSpec holds the raw field values for one encoded record.
type starSpec struct {
	idFloat  float32 // used for Catalog/GSC/Tycho ids
	idInt    int32   // used for Integer ids
	ra, dec  float64 // radians
	spectral string  // exactly 2 bytes
	mags     []int16 // hundredths; length must match the header
	motRA    float32
	motDec   float32
	velocity float64
	name     string // padded or cut to the header's name length
}

// putRecord encodes one record for the given header, padded to the header's
// stride.
func putRecord(hdr Header, s starSpec) []byte {
	order := hdr.ByteOrder.binaryOrder()
	var b []byte

	u32 := func(v uint32) {
		var tmp [4]byte
		order.PutUint32(tmp[:], v)
		b = append(b, tmp[:]...)
	}
	u64 := func(v uint64) {
		var tmp [8]byte
		order.PutUint64(tmp[:], v)
		b = append(b, tmp[:]...)
	}

	switch hdr.StarID {
	case StarIDCatalog, StarIDGSC, StarIDTycho:
		u32(math.Float32bits(s.idFloat))
	case StarIDInteger:
		u32(uint32(s.idInt))
	}
	u64(math.Float64bits(s.ra))
	u64(math.Float64bits(s.dec))

	spec := s.spectral
	for len(spec) < spectralWidth {
		spec += " "
	}
	b = append(b, spec[:spectralWidth]...)

	for _, mag := range s.mags {
		var tmp [2]byte
		order.PutUint16(tmp[:], uint16(mag))
		b = append(b, tmp[:]...)
	}

	switch hdr.ProperMotion {
	case MotionProper:
		u32(math.Float32bits(s.motRA))
		u32(math.Float32bits(s.motDec))
	case MotionRadialVelocity:
		u64(math.Float64bits(s.velocity))
	}

	if hdr.NameLength > 0 {
		name := make([]byte, hdr.NameLength)
		copy(name, s.name)
		b = append(b, name...)
	}

	for len(b) < hdr.BytesPerRecord {
		b = append(b, 0)
	}
	return b
}

// putCatalog encodes a header plus records into one file image.
func putCatalog(hdr Header, starCountRaw, starIDRaw, magCountRaw int32, stars []starSpec) []byte {
	order := hdr.ByteOrder.binaryOrder()
	data := putHeader(order, starCountRaw, starIDRaw, int32(hdr.ProperMotion), magCountRaw, int32(hdr.BytesPerRecord))
	for _, s := range stars {
		data = append(data, putRecord(hdr, s)...)
	}
	return data
}
