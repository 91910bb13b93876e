// Package serialport implements mhz19.Transport over a local serial
// device using go.bug.st/serial.
//
// The port is opened with the line configuration the sensor requires:
// 9600 baud, 8 data bits, no parity, one stop bit. No read timeout is
// configured, matching the driver's blocking contract; a sensor that
// never answers leaves the read blocked until the port is closed.
//
//	port, err := serialport.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	sensor := mhz19.New(port)
package serialport
