package aprs

import (
	"fmt"
	"time"
)

// TimestampKind distinguishes the three fixed-width APRS timestamp
// encodings (spec §4.10/§6.4).
type TimestampKind int

const (
	// DHM: day-of-month/hour/minute, zulu or local, 6 digits + indicator.
	DHM TimestampKind = iota
	// HMS: hour/minute/second zulu, 6 digits + 'h'.
	HMS
	// MDHM: month/day/hour/minute zulu, 8 digits, no indicator character.
	MDHM
)

// Timestamp is a decoded APRS timestamp field. Only the fields relevant
// to Kind are populated.
//
// Grounded in get_timestamp (decode_aprs.go), which recognizes exactly
// these three fixed-width forms.
type Timestamp struct {
	Kind   TimestampKind
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
	Local  bool // DHM only: indicator was '/' rather than 'z'
}

// DecodeTimestamp parses a 7-byte DHM or HMS field, or an 8-byte MDHM
// field.
func DecodeTimestamp(b []byte) (Timestamp, error) {
	switch len(b) {
	case 7:
		for i := 0; i < 6; i++ {
			if b[i] < '0' || b[i] > '9' {
				return Timestamp{}, ErrMalformed
			}
		}
		switch b[6] {
		case 'z':
			return Timestamp{Kind: DHM, Day: twoDigits(b[0:2]), Hour: twoDigits(b[2:4]), Minute: twoDigits(b[4:6])}, nil
		case '/':
			return Timestamp{Kind: DHM, Day: twoDigits(b[0:2]), Hour: twoDigits(b[2:4]), Minute: twoDigits(b[4:6]), Local: true}, nil
		case 'h':
			return Timestamp{Kind: HMS, Hour: twoDigits(b[0:2]), Minute: twoDigits(b[2:4]), Second: twoDigits(b[4:6])}, nil
		default:
			return Timestamp{}, ErrMalformed
		}
	case 8:
		for i := 0; i < 8; i++ {
			if b[i] < '0' || b[i] > '9' {
				return Timestamp{}, ErrMalformed
			}
		}
		return Timestamp{Kind: MDHM, Month: twoDigits(b[0:2]), Day: twoDigits(b[2:4]), Hour: twoDigits(b[4:6]), Minute: twoDigits(b[6:8])}, nil
	default:
		return Timestamp{}, ErrMalformed
	}
}

// Resolve converts t to an absolute UTC time by filling in whatever
// date fields t itself lacks (year always, and month/day for HMS) from
// ref. Local-time DHM stamps are returned as-is with no zone
// conversion, matching get_timestamp's "local time not implemented"
// behavior in the teacher project.
//
// Grounded in get_timestamp (decode_aprs.go), which substitutes the
// wire day/hour/minute into the current month and year rather than
// carrying its own.
func (t Timestamp) Resolve(ref time.Time) time.Time {
	switch t.Kind {
	case DHM:
		return time.Date(ref.Year(), ref.Month(), t.Day, t.Hour, t.Minute, 0, 0, time.UTC)
	case HMS:
		return time.Date(ref.Year(), ref.Month(), ref.Day(), t.Hour, t.Minute, t.Second, 0, time.UTC)
	case MDHM:
		return time.Date(ref.Year(), time.Month(t.Month), t.Day, t.Hour, t.Minute, 0, 0, time.UTC)
	default:
		return time.Time{}
	}
}

func twoDigits(b []byte) int {
	return int(b[0]-'0')*10 + int(b[1]-'0')
}

// Encode renders the timestamp back to its fixed-width wire form.
func (t Timestamp) Encode() ([]byte, error) {
	switch t.Kind {
	case DHM:
		tic := byte('z')
		if t.Local {
			tic = '/'
		}
		return []byte(fmt.Sprintf("%02d%02d%02d%c", t.Day, t.Hour, t.Minute, tic)), nil
	case HMS:
		return []byte(fmt.Sprintf("%02d%02d%02dh", t.Hour, t.Minute, t.Second)), nil
	case MDHM:
		return []byte(fmt.Sprintf("%02d%02d%02d%02d", t.Month, t.Day, t.Hour, t.Minute)), nil
	default:
		return nil, ErrMalformed
	}
}
