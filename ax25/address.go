package ax25

/*
Package-level address codec (spec §4.1, component C1).

Grounded in ax25_parse_addr / ax25_get_addr_with_ssid / ax25_set_ssid from
the teacher project (doismellburning/samoyed, src/ax25_pad.go), rewritten as
a plain value type instead of mutating a C struct embedded in a cgo packet_t.
*/

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// callsignForm matches the §6.3 string form: up to 6 alphanumerics, an
// optional "-SSID" (0-15), and an optional trailing heard ("*") mark.
var callsignForm = regexp.MustCompile(`^[A-Z0-9]{1,6}(-(\d{1,2}))?(\*)?$`)

// Address is a single AX.25 station address: a callsign, SSID, and the
// three control bits that vary by position in the frame header.
//
//   - CH is the "has-been-repeated" bit in a repeater address, or the C-bit
//     (command/response) in the destination/source address.
//   - Res0 and Res1 are the two reserved bits. Res1=false in the SOURCE
//     address signals that the station may use modulo-128 sequencing.
//   - Extension marks the last address in the header.
type Address struct {
	Callsign  string
	SSID      int
	CH        bool
	Res0      bool
	Res1      bool
	Extension bool
}

// ParseAddress parses the "CALL[-SSID][*]" text form used in monitor output
// and configuration. A trailing '*' sets CH. Res0 and Res1 default to true,
// matching the teacher's convention that unused reserved bits read as 1.
func ParseAddress(s string) (Address, error) {
	if s == "" {
		return Address{}, ErrNullInput
	}

	if strings.Contains(s, "*") && !callsignForm.MatchString(s) {
		// '*' present but not in the one legal position (trailing):
		// the whole string fails the §6.3 shape check.
		return Address{}, ErrMisplacedMark
	}

	heard := false
	if idx := strings.IndexByte(s, '*'); idx >= 0 {
		if idx != len(s)-1 {
			return Address{}, ErrMisplacedMark
		}
		heard = true
		s = s[:idx]
	}

	call := s
	ssid := 0
	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		call = s[:idx]
		ssidStr := s[idx+1:]
		n, err := strconv.Atoi(ssidStr)
		if err != nil || n < 0 || n > 15 || len(ssidStr) == 0 || len(ssidStr) > 2 {
			return Address{}, ErrInvalidSSID
		}
		ssid = n
	}

	if len(call) == 0 || len(call) > 6 {
		return Address{}, ErrInvalidLength
	}
	for _, c := range call {
		if !((c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return Address{}, fmt.Errorf("%w: invalid character %q in callsign", ErrInvalidInput, c)
		}
	}

	return Address{
		Callsign:  call,
		SSID:      ssid,
		CH:        heard,
		Res0:      true,
		Res1:      true,
		Extension: false,
	}, nil
}

// String renders the address in "CALL[-SSID][*]" form. The SSID suffix is
// only emitted when non-zero, matching ax25_get_addr_with_ssid.
func (a Address) String() string {
	s := a.Callsign
	if a.SSID != 0 {
		s += fmt.Sprintf("-%d", a.SSID)
	}
	if a.CH {
		s += "*"
	}
	return s
}

// Encode writes the 7-byte wire form: the callsign padded to 6 characters
// with spaces and shifted left one bit, followed by the SSID/flags octet.
func (a Address) Encode() ([7]byte, error) {
	var out [7]byte

	if len(a.Callsign) == 0 || len(a.Callsign) > 6 {
		return out, ErrInvalidLength
	}
	if a.SSID < 0 || a.SSID > 15 {
		return out, ErrInvalidSSID
	}

	padded := a.Callsign + "      "
	for i := 0; i < 6; i++ {
		out[i] = padded[i] << 1
	}

	var b byte
	if a.CH {
		b |= 0x80
	}
	if a.Res1 {
		b |= 0x40
	}
	if a.Res0 {
		b |= 0x20
	}
	b |= byte(a.SSID) << 1
	if a.Extension {
		b |= 0x01
	}
	out[6] = b

	return out, nil
}

// DecodeAddress parses a 7-byte wire-form address.
func DecodeAddress(b [7]byte) (Address, error) {
	var callsign []byte
	for i := 0; i < 6; i++ {
		c := b[i] >> 1
		if !((c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == ' ') {
			return Address{}, fmt.Errorf("%w: invalid callsign byte 0x%02x", ErrInvalidAddressField, c)
		}
		callsign = append(callsign, c)
	}

	call := strings.TrimRight(string(callsign), " ")
	if len(call) == 0 {
		return Address{}, ErrInvalidLength
	}

	flags := b[6]
	return Address{
		Callsign:  call,
		SSID:      int(flags>>1) & 0x0f,
		CH:        flags&0x80 != 0,
		Res1:      flags&0x40 != 0,
		Res0:      flags&0x20 != 0,
		Extension: flags&0x01 != 0,
	}, nil
}
