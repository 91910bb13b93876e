package protocol

// Frame structure constants per the Winsen MH-Z19 datasheet.
const (
	// StartByte is the fixed frame start marker (0xFF)
	StartByte = 0xFF

	// SensorNumber is the fixed sensor address (0x01)
	SensorNumber = 0x01

	// FrameSize is the fixed frame size in bytes, both directions:
	// START(1) + SENSOR(1) + CMD(1) + PAYLOAD(5) + CHECKSUM(1)
	FrameSize = 9

	// PayloadSize is the command-specific payload size in bytes
	PayloadSize = 5

	// PayloadIndex is the frame offset where the payload begins
	PayloadIndex = 3

	// ChecksumIndex is the frame offset of the checksum byte
	ChecksumIndex = FrameSize - 1
)

// Command codes per the MH-Z19 datasheet.
const (
	// CmdReadConcentration reads the current CO2 concentration
	CmdReadConcentration = 0x86

	// CmdCalibrateZeroPoint performs zero point calibration (400 ppm ambient)
	CmdCalibrateZeroPoint = 0x87

	// CmdCalibrateSpanPoint performs span point calibration at a known ppm
	CmdCalibrateSpanPoint = 0x88

	// CmdAutoCalibration enables or disables automatic baseline correction
	CmdAutoCalibration = 0x79

	// CmdSetRange sets the detection range upper bound
	CmdSetRange = 0x99
)

// AutoCalibration payload values (payload byte 0).
const (
	// AutoCalibrationOn enables automatic baseline correction
	AutoCalibrationOn = 0xA0

	// AutoCalibrationOff disables automatic baseline correction
	AutoCalibrationOff = 0x00
)

// Concentration reply offsets. The ppm value is big-endian across
// frame bytes 2 and 3.
const (
	ConcentrationHighIndex = 2
	ConcentrationLowIndex  = 3
)

// BaudRate is the required serial line speed for the MH-Z19 family.
// The protocol layer does not enforce it; transports must configure it.
const BaudRate = 9600
