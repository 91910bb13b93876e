package protocol

import "fmt"

// Range is the detection range upper bound of the sensor, in ppm.
// Only the five values documented for the MH-Z19 family are valid.
type Range uint16

// Supported detection ranges.
const (
	Range1000  Range = 1000
	Range2000  Range = 2000
	Range3000  Range = 3000
	Range5000  Range = 5000
	Range10000 Range = 10000
)

// Valid reports whether r is one of the documented detection ranges.
func (r Range) Valid() bool {
	switch r {
	case Range1000, Range2000, Range3000, Range5000, Range10000:
		return true
	}
	return false
}

// payload returns the fixed 5-byte Set Range payload for r:
// three zero bytes followed by the range value, big-endian.
func (r Range) payload() [PayloadSize]byte {
	return [PayloadSize]byte{0x00, 0x00, 0x00, byte(r >> 8), byte(r)}
}

func (r Range) String() string {
	return fmt.Sprintf("%d ppm", uint16(r))
}

// AutoCalibrationState selects whether the sensor performs automatic
// baseline correction (ABC logic), which re-zeroes against the lowest
// reading observed over each 24 h window.
type AutoCalibrationState byte

const (
	// AutoCalibrationEnable turns automatic baseline correction on
	AutoCalibrationEnable AutoCalibrationState = AutoCalibrationOn

	// AutoCalibrationDisable turns automatic baseline correction off
	AutoCalibrationDisable AutoCalibrationState = AutoCalibrationOff
)

// payload returns the fixed 5-byte Auto Calibration payload for s:
// the state byte followed by four zero bytes.
func (s AutoCalibrationState) payload() [PayloadSize]byte {
	return [PayloadSize]byte{byte(s), 0x00, 0x00, 0x00, 0x00}
}

func (s AutoCalibrationState) String() string {
	if s == AutoCalibrationEnable {
		return "enable"
	}
	return "disable"
}
