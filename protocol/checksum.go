package protocol

// Checksum computes the single-byte frame checksum per the MH-Z19
// datasheet: sum all bytes, then subtract from 255. Both the summation
// and the subtraction wrap silently; overflow is never an error.
//
// The checksum is calculated over frame bytes 0 through 7 inclusive,
// i.e. everything before the checksum byte itself. A frame is valid
// when sum(frame[0:8]) + frame[8] == 0xFF (mod 256), equivalently
// sum(frame[0:9]) == 0xFF (mod 256).
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return 0xFF - sum
}
