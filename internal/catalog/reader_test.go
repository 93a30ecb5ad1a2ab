package catalog

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// twoStarCatalog builds the canonical fixture: a J2000 catalog of two named
// stars with one magnitude column and no motion fields.
func twoStarCatalog() (Header, []byte) {
	hdr := Header{
		StarCount:      2,
		StarID:         StarIDNone,
		NameLength:     5,
		ProperMotion:   MotionNone,
		MagnitudeCount: 1,
		BytesPerRecord: 28,
		Epoch:          EpochJ2000,
		ByteOrder:      OrderLittle,
	}
	stars := []starSpec{
		{ra: 1.76779, dec: -0.29175, spectral: "A1", mags: []int16{450}, name: "Star1"},
		{ra: 1.67647, dec: -0.91952, spectral: "F0", mags: []int16{450}, name: "Star2"},
	}
	return hdr, putCatalog(hdr, -2, -5, 1, stars)
}

func TestRead_TwoStarScenario(t *testing.T) {
	hdr, data := twoStarCatalog()

	cat, err := Read(data, DefaultOptions())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if cat.Header.Epoch != EpochJ2000 {
		t.Errorf("Epoch = %v, want J2000", cat.Header.Epoch)
	}
	if cat.Header != hdr {
		t.Errorf("Header = %+v, want %+v", cat.Header, hdr)
	}
	if len(cat.Stars) != 2 {
		t.Fatalf("got %d stars, want 2", len(cat.Stars))
	}
	if cat.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", cat.Skipped)
	}

	for i, want := range []string{"Star1", "Star2"} {
		star := cat.Stars[i]
		if star.Name != want {
			t.Errorf("star %d name = %q, want %q", i, star.Name, want)
		}
		if star.Magnitude != 4.50 {
			t.Errorf("star %d magnitude = %v, want 4.50", i, star.Magnitude)
		}
		if star.MotionRA != 0 || star.MotionDec != 0 || star.RadialVelocity != 0 {
			t.Errorf("star %d has motion fields, want none", i)
		}
	}
}

func TestRead_SizeBoundary(t *testing.T) {
	_, data := twoStarCatalog()

	// One byte short of 28 + starCount*stride must fail; the exact size
	// must succeed.
	if _, err := Read(data[:len(data)-1], DefaultOptions()); !errors.Is(err, ErrTruncatedCatalog) {
		t.Errorf("short file: err = %v, want ErrTruncatedCatalog", err)
	}
	if _, err := Read(data, DefaultOptions()); err != nil {
		t.Errorf("exact-size file: %v", err)
	}
}

func TestRead_EmptyAndHeaderless(t *testing.T) {
	if _, err := Read(nil, DefaultOptions()); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("empty file: err = %v, want ErrEmptyCatalog", err)
	}
	if _, err := Read(make([]byte, 10), DefaultOptions()); !errors.Is(err, ErrMissingHeader) {
		t.Errorf("10-byte file: err = %v, want ErrMissingHeader", err)
	}
}

func TestRead_NoMagnitudes(t *testing.T) {
	hdr := Header{
		StarCount:      0,
		MagnitudeCount: 0,
		BytesPerRecord: 20,
		ByteOrder:      OrderLittle,
	}
	data := putCatalog(hdr, 0, 0, 0, nil)

	if _, err := Read(data, DefaultOptions()); !errors.Is(err, ErrNoMagnitudes) {
		t.Errorf("err = %v, want ErrNoMagnitudes", err)
	}
}

func TestRead_DropsZeroSentinel(t *testing.T) {
	hdr := Header{
		StarCount:      3,
		MagnitudeCount: 1,
		BytesPerRecord: 20,
		Epoch:          EpochB1950,
		ByteOrder:      OrderLittle,
	}
	stars := []starSpec{
		{ra: 1.0, dec: 0.5, spectral: "G2", mags: []int16{120}},
		// All-zero padding entry: dropped even though the spectral code
		// is set.
		{ra: 0, dec: 0, spectral: "K0", mags: []int16{0}},
		{ra: 2.0, dec: -0.5, spectral: "M1", mags: []int16{300}},
	}
	data := putCatalog(hdr, 3, 0, 1, stars)

	cat, err := Read(data, DefaultOptions())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(cat.Stars) != 2 {
		t.Fatalf("got %d stars, want 2", len(cat.Stars))
	}
	if cat.Stars[0].SpectralType != "G2" || cat.Stars[1].SpectralType != "M1" {
		t.Errorf("surviving stars = %q, %q; want G2, M1",
			cat.Stars[0].SpectralType, cat.Stars[1].SpectralType)
	}
}

func TestRead_MagnitudeFilter(t *testing.T) {
	hdr := Header{
		StarCount:      3,
		MagnitudeCount: 1,
		BytesPerRecord: 20,
		Epoch:          EpochB1950,
		ByteOrder:      OrderLittle,
	}
	stars := []starSpec{
		{ra: 1.0, dec: 0.5, spectral: "A0", mags: []int16{-146}}, // -1.46, Sirius-bright
		{ra: 1.1, dec: 0.6, spectral: "G2", mags: []int16{250}},
		{ra: 1.2, dec: 0.7, spectral: "M5", mags: []int16{620}}, // too dim
	}
	data := putCatalog(hdr, 3, 0, 1, stars)

	opts := DefaultOptions()
	opts.MagnitudeLimit = 3.0
	cat, err := Read(data, opts)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(cat.Stars) != 2 {
		t.Fatalf("got %d stars, want 2", len(cat.Stars))
	}
	for _, star := range cat.Stars {
		if float64(star.Magnitude) > 3.0 {
			t.Errorf("star with magnitude %v survived a 3.0 limit", star.Magnitude)
		}
	}
}

func TestRead_MagnitudeIndexResolution(t *testing.T) {
	hdr := Header{
		StarCount:      1,
		MagnitudeCount: 3,
		BytesPerRecord: 24,
		Epoch:          EpochB1950,
		ByteOrder:      OrderLittle,
	}
	stars := []starSpec{
		{ra: 1.0, dec: 0.5, spectral: "G2", mags: []int16{100, 200, 300}},
	}
	data := putCatalog(hdr, 1, 0, 3, stars)

	tests := []struct {
		name    string
		index   int
		wantMag float32
	}{
		{"default is last column", -1, 3.00},
		{"earlier column override", 0, 1.00},
		{"middle column override", 1, 2.00},
		{"past the end clamps to last", 7, 3.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.MagnitudeIndex = tt.index
			cat, err := Read(data, opts)
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			if len(cat.Stars) != 1 {
				t.Fatalf("got %d stars, want 1", len(cat.Stars))
			}
			if cat.Stars[0].Magnitude != tt.wantMag {
				t.Errorf("Magnitude = %v, want %v", cat.Stars[0].Magnitude, tt.wantMag)
			}
		})
	}
}

func TestRead_SkipsUndecodableRecords(t *testing.T) {
	// A stride smaller than the laid-out record makes every record slice
	// undersized: all records skip, none abort the read.
	hdr := Header{
		StarCount:      2,
		NameLength:     5,
		MagnitudeCount: 1,
		BytesPerRecord: 10,
		Epoch:          EpochJ2000,
		ByteOrder:      OrderLittle,
	}
	data := putCatalog(hdr, -2, -5, 1, nil)
	data = append(data, make([]byte, 20)...)

	cat, err := Read(data, DefaultOptions())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if cat.Header != hdr {
		t.Errorf("Header = %+v, want %+v", cat.Header, hdr)
	}
	if cat.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", cat.Skipped)
	}
	if len(cat.Stars) != 0 {
		t.Errorf("got %d stars, want 0", len(cat.Stars))
	}
}

func TestRead_RejectsNonPositiveStride(t *testing.T) {
	// A negative stride would pass the required-size arithmetic and then
	// invert the record slice bounds; zero would loop over nothing and
	// call every record skipped. Both must fail up front.
	for _, stride := range []int32{0, -100} {
		data := putHeader(binary.LittleEndian, 3, 0, 0, 1, stride)
		data = append(data, make([]byte, 100)...)

		if _, err := Read(data, DefaultOptions()); !errors.Is(err, ErrInvalidHeader) {
			t.Errorf("stride %d: err = %v, want ErrInvalidHeader", stride, err)
		}
	}
}

func TestRead_BigEndianCatalog(t *testing.T) {
	hdr := Header{
		StarCount:      1,
		StarID:         StarIDInteger,
		ProperMotion:   MotionRadialVelocity,
		MagnitudeCount: 2,
		BytesPerRecord: 34,
		Epoch:          EpochJ2000,
		ByteOrder:      OrderBig,
	}
	stars := []starSpec{
		{idInt: 7001, ra: 4.873, dec: 0.677, spectral: "A0", mags: []int16{3, 3}, velocity: -13.9},
	}
	data := putCatalog(hdr, -1, 4, 2, stars)

	cat, err := Read(data, DefaultOptions())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if cat.Header.ByteOrder != OrderBig {
		t.Errorf("ByteOrder = %v, want big", cat.Header.ByteOrder)
	}
	if len(cat.Stars) != 1 {
		t.Fatalf("got %d stars, want 1", len(cat.Stars))
	}
	star := cat.Stars[0]
	if star.ID != 7001 {
		t.Errorf("ID = %v, want 7001", star.ID)
	}
	if star.RadialVelocity != -13.9 {
		t.Errorf("RadialVelocity = %v, want -13.9", star.RadialVelocity)
	}
}

func TestReadFile(t *testing.T) {
	_, data := twoStarCatalog()
	path := filepath.Join(t.TempDir(), "test.cat")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := ReadFile(path, DefaultOptions())
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(cat.Stars) != 2 {
		t.Errorf("got %d stars, want 2", len(cat.Stars))
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.cat"), DefaultOptions()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v, want os.ErrNotExist", err)
	}
}

func TestReadHeaderFile(t *testing.T) {
	hdr, data := twoStarCatalog()
	path := filepath.Join(t.TempDir(), "test.cat")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadHeaderFile(path, DefaultOptions())
	if err != nil {
		t.Fatalf("ReadHeaderFile failed: %v", err)
	}
	if got != hdr {
		t.Errorf("Header = %+v, want %+v", got, hdr)
	}
}
