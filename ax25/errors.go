package ax25

import "errors"

// Decode error kinds, per spec §4.13/§7. These are unrecoverable: a decoder
// returning one of these has freed every intermediate allocation and the
// caller gets nothing partial back.
var (
	ErrNullInput            = errors.New("ax25: null input")
	ErrInvalidLength        = errors.New("ax25: invalid length")
	ErrInvalidSSID          = errors.New("ax25: invalid ssid")
	ErrMisplacedMark        = errors.New("ax25: '*' not at end of address")
	ErrInvalidAddressField  = errors.New("ax25: invalid address field")
	ErrInvalidControl       = errors.New("ax25: invalid control field")
	ErrInvalidInput         = errors.New("ax25: invalid input")
	ErrMalformedSegment     = errors.New("ax25: malformed segment")
	ErrBufferTooSmall       = errors.New("ax25: buffer too small")
	ErrTooManyRepeaters     = errors.New("ax25: more than 8 repeaters")
	ErrSegmentCountExceeded = errors.New("ax25: more than 128 segments")
)
