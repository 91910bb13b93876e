package protocol

// ValidateResponse checks the integrity of a received 9-byte frame by
// recomputing the checksum over the first 8 bytes and comparing it to
// the received checksum byte.
//
// Only the checksum is validated. The start byte, sensor number and
// command echo are deliberately not re-checked: the sensor protocol
// carries no request identifiers, so any checksum-valid frame is
// accepted. Callers that need stricter matching must compare the echo
// byte themselves.
//
// Returns a *ChecksumError on mismatch.
func ValidateResponse(frame [FrameSize]byte) error {
	want := Checksum(frame[:ChecksumIndex])
	if got := frame[ChecksumIndex]; got != want {
		return &ChecksumError{Expected: want, Actual: got}
	}
	return nil
}

// ParseConcentration extracts the CO2 concentration in ppm from a
// validated Read Concentration reply. The value is big-endian across
// frame bytes 2 and 3.
//
// The frame must already have passed ValidateResponse; no further
// validation is performed here.
func ParseConcentration(frame [FrameSize]byte) uint16 {
	return uint16(frame[ConcentrationHighIndex])<<8 | uint16(frame[ConcentrationLowIndex])
}
