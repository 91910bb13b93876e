package mhz19

// Transport is the minimal capability the driver requires from the host
// platform: blocking single-byte send and blocking single-byte receive.
//
// WriteByte must not return until the byte is accepted by the line or a
// transport error occurs. ReadByte must not return until a byte is
// available or a transport error occurs. The driver imposes no deadline
// of its own; a caller requiring a timeout must provide a Transport
// whose operations time out, or wrap the whole command externally.
//
// No framing, buffering or flow control is assumed. The line must be
// configured at protocol.BaudRate (9600), 8 data bits, no parity, one
// stop bit; see the serialport package for a ready-made implementation.
type Transport interface {
	// WriteByte writes one byte, blocking until accepted or erroring
	WriteByte(b byte) error

	// ReadByte reads one byte, blocking until available or erroring
	ReadByte() (byte, error)
}
