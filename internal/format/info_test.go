package format

import (
	"strings"
	"testing"

	"github.com/litescript/sidus/internal/catalog"
)

func TestWriteInfo(t *testing.T) {
	hdr := catalog.Header{
		StarCount:      9110,
		StarID:         catalog.StarIDCatalog,
		ProperMotion:   catalog.MotionProper,
		MagnitudeCount: 1,
		BytesPerRecord: 32,
		Epoch:          catalog.EpochJ2000,
		ByteOrder:      catalog.OrderLittle,
	}

	var b strings.Builder
	if err := WriteInfo(&b, hdr); err != nil {
		t.Fatalf("WriteInfo failed: %v", err)
	}

	want := "Catalog information:\n" +
		" Number of stars: 9110\n" +
		" Id: Catalog star id\n" +
		" Names: No\n" +
		" Proper motion: Yes\n" +
		" Number of magnitudes: 1\n" +
		" Epoch: J2000\n" +
		" Byte order: little-endian\n" +
		" Bytes per star: 32\n"
	if b.String() != want {
		t.Errorf("output = %q, want %q", b.String(), want)
	}
}

func TestWriteInfo_NamedCatalog(t *testing.T) {
	hdr := catalog.Header{
		StarCount:      318,
		StarID:         catalog.StarIDNone,
		NameLength:     16,
		ProperMotion:   catalog.MotionRadialVelocity,
		MagnitudeCount: 2,
		BytesPerRecord: 48,
		Epoch:          catalog.EpochB1950,
		ByteOrder:      catalog.OrderBig,
	}

	var b strings.Builder
	if err := WriteInfo(&b, hdr); err != nil {
		t.Fatalf("WriteInfo failed: %v", err)
	}
	out := b.String()

	for _, want := range []string{
		" Id: No\n",
		" Names: Yes\n",
		" Proper motion: Radial velocity\n",
		" Epoch: B1950\n",
		" Byte order: big-endian\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
