package catalog

import "errors"

// File- and header-level errors are fatal: the read aborts with no partial
// output. Callers can match them with errors.Is.
var (
	// ErrEmptyCatalog is returned for a zero-length file.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrMissingHeader is returned when the file is shorter than the
	// 28-byte header.
	ErrMissingHeader = errors.New("catalog has no header")

	// ErrTruncatedCatalog is returned when the file is shorter than the
	// size implied by the header's star count and record stride.
	ErrTruncatedCatalog = errors.New("catalog shorter than header claims")

	// ErrInvalidHeader is returned when the magnitude-count field is out
	// of plausible range under both byte orders (or under a forced order),
	// or when the record stride is not positive.
	ErrInvalidHeader = errors.New("invalid catalog header")

	// ErrEpochMismatch is returned when a caller-asserted epoch
	// contradicts the epoch derived from the header.
	ErrEpochMismatch = errors.New("epoch mismatch")

	// ErrNoMagnitudes is returned when the header claims fewer than one
	// magnitude slot per record.
	ErrNoMagnitudes = errors.New("catalog has no magnitude columns")
)
