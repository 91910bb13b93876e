package protocol

import "fmt"

// ChecksumError indicates that a received frame failed checksum
// validation. The frame is discarded; no re-request is issued.
type ChecksumError struct {
	// Expected is the checksum recomputed over the received frame
	Expected byte

	// Actual is the checksum byte carried by the frame
	Actual byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch: computed 0x%02X, frame carries 0x%02X", e.Expected, e.Actual)
}

// IsChecksumError returns true if the error is a *ChecksumError.
func IsChecksumError(err error) bool {
	_, ok := err.(*ChecksumError)
	return ok
}
