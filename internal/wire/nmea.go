package wire

import (
	"strconv"
	"strings"
)

// NMEAFields splits a $GPxxx sentence (with or without the checksum suffix)
// into its comma-separated fields, mirroring how aprs_raw_nmea tokenizes a
// raw GPS payload before handing fields off to the position decoder.
func NMEAFields(sentence string) []string {
	if i := strings.IndexByte(sentence, '*'); i >= 0 {
		sentence = sentence[:i]
	}
	return strings.Split(sentence, ",")
}

// NMEAChecksum computes the XOR checksum of an NMEA sentence body (the
// bytes between '$' and '*'), returned as two upper-case hex digits.
func NMEAChecksum(body string) string {
	var c byte
	for i := 0; i < len(body); i++ {
		if body[i] == '$' {
			continue
		}
		c ^= body[i]
	}
	s := strings.ToUpper(strconv.FormatUint(uint64(c), 16))
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}

// ParseFixedDigits parses an exactly-len digit run, returning ok=false if
// any byte is not '0'-'9'. The aprs package uses it for the fixed-width
// numeric subfields of the Agrelo DF format.
func ParseFixedDigits(b []byte) (int, bool) {
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
