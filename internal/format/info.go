package format

import (
	"fmt"
	"io"

	"github.com/litescript/sidus/internal/catalog"
)

// WriteInfo writes a header-only report: everything the catalog declares
// about itself, with no record parsed.
func WriteInfo(w io.Writer, hdr catalog.Header) error {
	names := "No"
	if hdr.NameLength > 0 {
		names = "Yes"
	}
	_, err := fmt.Fprintf(w,
		"Catalog information:\n"+
			" Number of stars: %d\n"+
			" Id: %s\n"+
			" Names: %s\n"+
			" Proper motion: %s\n"+
			" Number of magnitudes: %d\n"+
			" Epoch: %s\n"+
			" Byte order: %s\n"+
			" Bytes per star: %d\n",
		hdr.StarCount,
		hdr.StarID,
		names,
		hdr.ProperMotion,
		hdr.MagnitudeCount,
		hdr.Epoch,
		hdr.ByteOrder,
		hdr.BytesPerRecord,
	)
	return err
}
