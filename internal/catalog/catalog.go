// Package catalog reads binary star catalogs in the Yale Bright Star / SAO
// layout: a fixed 28-byte header followed by fixed-stride star records whose
// field set is described by the header.
//
// cf. http://tdc-www.harvard.edu/catalogs/catalogsb.html
package catalog

// Epoch is the celestial reference frame of the catalog coordinates.
type Epoch int

const (
	EpochAuto Epoch = iota // derive from the header
	EpochJ2000
	EpochB1950
)

func (e Epoch) String() string {
	switch e {
	case EpochJ2000:
		return "J2000"
	case EpochB1950:
		return "B1950"
	default:
		return "auto"
	}
}

// ByteOrder selects how multi-byte fields are decoded.
type ByteOrder int

const (
	OrderAuto ByteOrder = iota // detect from the header
	OrderLittle
	OrderBig
)

func (o ByteOrder) String() string {
	switch o {
	case OrderLittle:
		return "little-endian"
	case OrderBig:
		return "big-endian"
	default:
		return "auto"
	}
}

// StarIDKind describes the identifier field stored per record.
// The ordinals match the on-disk encoding.
type StarIDKind int

const (
	StarIDNone StarIDKind = iota
	StarIDCatalog
	StarIDGSC
	StarIDTycho
	StarIDInteger
)

func (k StarIDKind) String() string {
	switch k {
	case StarIDNone:
		return "No"
	case StarIDCatalog:
		return "Catalog star id"
	case StarIDGSC:
		return "GSC star id"
	case StarIDTycho:
		return "Tycho star id"
	case StarIDInteger:
		return "Integer star id"
	default:
		return "UNKNOWN"
	}
}

// ProperMotionKind describes the motion fields stored per record.
// The ordinals match the on-disk encoding.
type ProperMotionKind int

const (
	MotionNone ProperMotionKind = iota
	MotionProper
	MotionRadialVelocity
)

func (k ProperMotionKind) String() string {
	switch k {
	case MotionNone:
		return "No"
	case MotionProper:
		return "Yes"
	case MotionRadialVelocity:
		return "Radial velocity"
	default:
		return "UNKNOWN"
	}
}

// Header is the decoded catalog header. It is parsed once per catalog and
// immutable thereafter.
type Header struct {
	StarCount      int              // number of records; always >= 0
	StarID         StarIDKind       // identifier field kind
	NameLength     int              // per-record name bytes; 0 unless StarID == StarIDNone
	ProperMotion   ProperMotionKind // motion field kind
	MagnitudeCount int              // magnitude slots per record; >= 1 for a usable catalog
	BytesPerRecord int              // stride between record start offsets
	Epoch          Epoch            // EpochJ2000 or EpochB1950, never EpochAuto
	ByteOrder      ByteOrder        // OrderLittle or OrderBig, never OrderAuto
}

// Star is one decoded catalog record.
type Star struct {
	ID             float64 // 0 when the catalog stores no identifier
	RightAscension float64 // radians, epoch per Header
	Declination    float64 // radians, epoch per Header
	Magnitude      float32 // selected apparent magnitude, hundredths on disk
	MotionRA       float32 // radians/year, zero unless MotionProper
	MotionDec      float32 // radians/year, zero unless MotionProper
	RadialVelocity float64 // km/s, zero unless MotionRadialVelocity
	SpectralType   string  // two-character classification code
	Name           string  // empty when the catalog stores no names
}

// Catalog is the result of a whole-file read: the header plus the surviving
// records in input order.
type Catalog struct {
	Header  Header
	Stars   []Star
	Skipped int // records dropped because their slice could not be decoded
}
