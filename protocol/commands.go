package protocol

import "fmt"

// buildFrame assembles a complete 9-byte command frame:
//
//	[START][SENSOR][CMD][PAYLOAD(5)][CHECKSUM]
//
// The checksum is computed over the first 8 bytes.
func buildFrame(cmd byte, payload [PayloadSize]byte) [FrameSize]byte {
	frame := [FrameSize]byte{
		StartByte,
		SensorNumber,
		cmd,
		payload[0],
		payload[1],
		payload[2],
		payload[3],
		payload[4],
	}
	frame[ChecksumIndex] = Checksum(frame[:ChecksumIndex])
	return frame
}

// BuildReadConcentrationCmd constructs a Read Concentration command frame.
// The payload is all zeros.
//
// Frame structure:
//
//	[0xFF][0x01][0x86][0x00 x5][CHECKSUM]
func BuildReadConcentrationCmd() [FrameSize]byte {
	return buildFrame(CmdReadConcentration, [PayloadSize]byte{})
}

// BuildCalibrateZeroPointCmd constructs a Zero Point Calibration command
// frame. The sensor must have been in a stable 400 ppm environment for
// at least 20 minutes before issuing this command.
//
// Frame structure:
//
//	[0xFF][0x01][0x87][0x00 x5][CHECKSUM]
func BuildCalibrateZeroPointCmd() [FrameSize]byte {
	return buildFrame(CmdCalibrateZeroPoint, [PayloadSize]byte{})
}

// BuildCalibrateSpanPointCmd constructs a Span Point Calibration command
// frame for the given span concentration in ppm. The span value occupies
// payload bytes 0-1, big-endian.
//
// Frame structure:
//
//	[0xFF][0x01][0x88][SPAN_H][SPAN_L][0x00 x3][CHECKSUM]
//
// The datasheet recommends a span of at least 1000 ppm; zero point must
// be calibrated first. A zero span is rejected.
func BuildCalibrateSpanPointCmd(span uint16) ([FrameSize]byte, error) {
	if span == 0 {
		return [FrameSize]byte{}, fmt.Errorf("span cannot be zero")
	}

	payload := [PayloadSize]byte{byte(span >> 8), byte(span)}
	return buildFrame(CmdCalibrateSpanPoint, payload), nil
}

// BuildAutoCalibrationCmd constructs an Auto Calibration toggle command
// frame. The state byte occupies payload byte 0 (0xA0 enable, 0x00
// disable).
//
// Frame structure:
//
//	[0xFF][0x01][0x79][STATE][0x00 x4][CHECKSUM]
func BuildAutoCalibrationCmd(state AutoCalibrationState) [FrameSize]byte {
	return buildFrame(CmdAutoCalibration, state.payload())
}

// BuildSetRangeCmd constructs a Set Range command frame. The range value
// occupies payload bytes 3-4, big-endian, preceded by three zero bytes.
//
// Frame structure:
//
//	[0xFF][0x01][0x99][0x00 x3][RANGE_H][RANGE_L][CHECKSUM]
//
// Returns an error if rng is not one of the documented detection ranges.
func BuildSetRangeCmd(rng Range) ([FrameSize]byte, error) {
	if !rng.Valid() {
		return [FrameSize]byte{}, fmt.Errorf("range must be one of 1000, 2000, 3000, 5000 or 10000 ppm, got %d", uint16(rng))
	}

	return buildFrame(CmdSetRange, rng.payload()), nil
}
