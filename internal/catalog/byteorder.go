package catalog

import (
	"encoding/binary"
	"math"
)

// binaryOrder maps a resolved ByteOrder onto the stdlib decoder.
// Only OrderLittle and OrderBig have a mapping; resolving OrderAuto is the
// header parser's job.
func (o ByteOrder) binaryOrder() binary.ByteOrder {
	if o == OrderBig {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// The scalar readers below decode one value from the start of b. Callers
// guarantee b is long enough; bounds are the reader's responsibility.
// Floats are pure bit reinterpretations of the assembled integer.

func readInt16(b []byte, order binary.ByteOrder) int16 {
	return int16(order.Uint16(b))
}

func readInt32(b []byte, order binary.ByteOrder) int32 {
	return int32(order.Uint32(b))
}

func readFloat32(b []byte, order binary.ByteOrder) float32 {
	return math.Float32frombits(order.Uint32(b))
}

func readFloat64(b []byte, order binary.ByteOrder) float64 {
	return math.Float64frombits(order.Uint64(b))
}
