// Package protocol implements the Winsen MH-Z19 serial command protocol.
//
// This package provides functions to build command frames and validate
// response frames for the MH-Z19 family of infrared CO2 sensors.
//
// # Protocol Overview
//
// The sensor speaks a fixed-format, half-duplex request/response protocol
// over a 9600 baud serial line. Every frame, in either direction, is
// exactly 9 bytes:
//
//	Command:  [0xFF][0x01][CMD][PAYLOAD(5)][CHECKSUM]
//	Response: [0xFF][0x01][ECHO][PAYLOAD(5)][CHECKSUM]
//
// Where:
//   - 0xFF = fixed start marker
//   - 0x01 = fixed sensor number
//   - CHECKSUM = 255 - (sum of the first 8 bytes), wraparound arithmetic
//
// # Command Builders
//
// Use the Build* functions to create command frames:
//
//	frame := protocol.BuildReadConcentrationCmd()
//	frame, err := protocol.BuildSetRangeCmd(protocol.Range5000)
//	// ... etc
//
// # Response Validation
//
// Use ValidateResponse to check a received frame, then the Parse*
// functions for command-specific data:
//
//	if err := protocol.ValidateResponse(frame); err != nil {
//	    return err // *protocol.ChecksumError
//	}
//	ppm := protocol.ParseConcentration(frame)
//
// Only the checksum is validated; the reply's command echo byte is not
// matched against the request. See ValidateResponse for the rationale.
//
// # Reference
//
// Winsen MH-Z19 / MH-Z19B NDIR CO2 module datasheet, "Communication
// protocol (UART)".
package protocol
