package mhz19

import (
	"fmt"

	"github.com/aranoy15/go-mhz19/protocol"
)

// Sensor drives a single MH-Z19 CO2 sensor over a byte-oriented,
// half-duplex serial link. Each public command runs one full
// request/response transaction: the 9-byte command frame is written
// byte by byte, then the driver blocks until 9 response bytes arrive
// and the checksum validates.
//
// Sensor is NOT safe for concurrent use. The sensor itself has no
// request identifiers, so overlapping commands on one transport are
// meaningless; if the host is multi-threaded, the caller must
// serialize access externally.
type Sensor struct {
	transport Transport
	config    Config

	// buf is the shared scratch buffer, fully overwritten each
	// transaction; it carries no state between calls.
	buf [protocol.FrameSize]byte
}

// New creates a Sensor over the given transport.
//
// Example:
//
//	port, err := serialport.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	sensor := mhz19.New(port)
//	ppm, err := sensor.ReadConcentration()
func New(transport Transport, opts ...Option) *Sensor {
	if transport == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Sensor{
		transport: transport,
		config:    cfg,
	}
}

// ReadConcentration reads the current CO2 concentration in ppm.
func (s *Sensor) ReadConcentration() (uint16, error) {
	if err := s.transact(protocol.BuildReadConcentrationCmd()); err != nil {
		return 0, fmt.Errorf("read concentration: %w", err)
	}

	ppm := protocol.ParseConcentration(s.buf)
	s.logDebug("concentration read", "ppm", ppm)
	return ppm, nil
}

// CalibrateZeroPoint performs zero point calibration. The sensor must
// have been in a stable 400 ppm environment for at least 20 minutes
// before calling this; the driver cannot verify that precondition.
//
// Success means a checksum-valid reply was received; the reply payload
// carries no information.
func (s *Sensor) CalibrateZeroPoint() error {
	if err := s.transact(protocol.BuildCalibrateZeroPointCmd()); err != nil {
		return fmt.Errorf("calibrate zero point: %w", err)
	}

	s.logInfo("zero point calibrated")
	return nil
}

// CalibrateSpanPoint performs span point calibration at the given span
// concentration in ppm. Calibrate the zero point first; the datasheet
// recommends a span of at least 1000 ppm.
func (s *Sensor) CalibrateSpanPoint(span uint16) error {
	frame, err := protocol.BuildCalibrateSpanPointCmd(span)
	if err != nil {
		return err
	}

	if err := s.transact(frame); err != nil {
		return fmt.Errorf("calibrate span point: %w", err)
	}

	s.logInfo("span point calibrated", "span_ppm", span)
	return nil
}

// SetAutoCalibration enables or disables the sensor's automatic
// baseline correction (ABC logic).
//
// Example:
//
//	err := sensor.SetAutoCalibration(protocol.AutoCalibrationDisable)
func (s *Sensor) SetAutoCalibration(state protocol.AutoCalibrationState) error {
	if err := s.transact(protocol.BuildAutoCalibrationCmd(state)); err != nil {
		return fmt.Errorf("set auto calibration: %w", err)
	}

	s.logInfo("auto calibration set", "state", state.String())
	return nil
}

// SetRange sets the sensor's detection range upper bound.
//
// Example:
//
//	err := sensor.SetRange(protocol.Range5000)
func (s *Sensor) SetRange(rng protocol.Range) error {
	frame, err := protocol.BuildSetRangeCmd(rng)
	if err != nil {
		return err
	}

	if err := s.transact(frame); err != nil {
		return fmt.Errorf("set range: %w", err)
	}

	s.logInfo("range set", "range_ppm", uint16(rng))
	return nil
}

// transact runs one full command cycle: send the frame, then block for
// the 9-byte reply and validate its checksum. On success the validated
// reply is left in s.buf for field extraction.
func (s *Sensor) transact(frame [protocol.FrameSize]byte) error {
	if err := s.send(frame); err != nil {
		return err
	}
	return s.receive()
}

// send writes the 9 frame bytes one at a time. Any single-byte failure
// aborts the remaining bytes.
func (s *Sensor) send(frame [protocol.FrameSize]byte) error {
	s.buf = frame

	for i, b := range s.buf {
		if err := s.transport.WriteByte(b); err != nil {
			return &WriteError{Index: i, Err: err}
		}
	}

	s.logDebug("command sent", "frame", fmt.Sprintf("% X", s.buf))
	return nil
}

// receive blocks until 9 response bytes have been collected, then
// validates the checksum. Bytes already read are discarded on failure.
func (s *Sensor) receive() error {
	for i := range s.buf {
		b, err := s.transport.ReadByte()
		if err != nil {
			return &ReadError{Index: i, Err: err}
		}
		s.buf[i] = b
	}

	if err := protocol.ValidateResponse(s.buf); err != nil {
		return err
	}

	s.logDebug("response received", "frame", fmt.Sprintf("% X", s.buf))
	return nil
}

// logDebug logs a debug message if a logger is configured.
func (s *Sensor) logDebug(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (s *Sensor) logInfo(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Info(msg, keysAndValues...)
	}
}
