package mhz19

import "fmt"

// WriteError indicates that a transport write of a frame byte failed.
// The transaction is aborted immediately; remaining bytes are not sent
// and no partial frame is resent.
type WriteError struct {
	// Index is the frame offset of the byte that failed to send
	Index int

	// Err is the underlying transport error
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write frame byte %d: %v", e.Index, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ReadError indicates that a transport read of a response byte failed.
// The transaction is aborted; bytes already read are discarded.
type ReadError struct {
	// Index is the frame offset of the byte that failed to arrive
	Index int

	// Err is the underlying transport error
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read frame byte %d: %v", e.Index, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
