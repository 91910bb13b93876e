package serialport

import (
	"fmt"
	"io"

	"go.bug.st/serial"

	"github.com/aranoy15/go-mhz19/mhz19"
	"github.com/aranoy15/go-mhz19/protocol"
)

var _ mhz19.Transport = (*Port)(nil)

// Port is a local serial device configured for the MH-Z19 line
// settings (9600 8N1). It implements mhz19.Transport.
type Port struct {
	port serial.Port
	name string
}

// Open opens the named serial device (e.g. /dev/ttyUSB0) with the
// sensor's required line configuration.
func Open(name string) (*Port, error) {
	mode := &serial.Mode{
		BaudRate: protocol.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	return &Port{port: port, name: name}, nil
}

// WriteByte writes one byte, blocking until the OS accepts it.
func (p *Port) WriteByte(b byte) error {
	buf := [1]byte{b}
	for {
		n, err := p.port.Write(buf[:])
		if err != nil {
			return err
		}
		if n == 1 {
			return nil
		}
	}
}

// ReadByte reads one byte, blocking until a byte is available. A read
// returning zero bytes without error is treated as end of input.
func (p *Port) ReadByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := p.port.Read(buf[:])
		if err != nil {
			return 0, err
		}
		if n == 1 {
			return buf[0], nil
		}
		if n == 0 {
			return 0, io.EOF
		}
	}
}

// Name returns the device path the port was opened with.
func (p *Port) Name() string {
	return p.name
}

// Close releases the underlying device.
func (p *Port) Close() error {
	return p.port.Close()
}
