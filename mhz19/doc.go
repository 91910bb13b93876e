// Package mhz19 provides a driver for Winsen MH-Z19 family infrared
// CO2 sensors.
//
// # Overview
//
// The driver runs the sensor's fixed-format, half-duplex protocol:
// each command writes a 9-byte frame over the transport byte by byte,
// then blocks until a full 9-byte reply has been received and its
// checksum validated. Supported operations:
//
//   - ReadConcentration: current CO2 reading in ppm
//   - SetAutoCalibration: toggle automatic baseline correction
//   - SetRange: set the detection range upper bound
//   - CalibrateZeroPoint / CalibrateSpanPoint: manual calibration
//
// # Basic Usage
//
//	port, err := serialport.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	sensor := mhz19.New(port)
//
//	ppm, err := sensor.ReadConcentration()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("CO2: %d ppm\n", ppm)
//
// # Error Handling
//
// Exactly three error classes can come out of a transaction, all
// returned as values and none fatal to the Sensor (it remains usable
// after any failure):
//
//   - *WriteError: a transport write of a frame byte failed
//   - *ReadError: a transport read of a response byte failed
//   - *protocol.ChecksumError: a full reply arrived but failed validation
//
// The driver performs no retries and no internal timeouts; blocking
// behavior is entirely the transport's. A transport that never yields
// a full reply leaves the call blocked. Wrap the command externally if
// a deadline is required.
//
// # Hardware Independence
//
// This package does NOT implement hardware communication. Users must
// provide a Transport for their platform; the serialport package
// implements one over a local serial device, and any in-memory fake
// satisfying Transport works for tests.
package mhz19
