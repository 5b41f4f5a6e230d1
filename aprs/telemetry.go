package aprs

import (
	"fmt"
	"strconv"
	"strings"
)

// Telemetry is a decoded telemetry report: a sequence number, five
// analog channel values, and eight digital bits (spec §4.11/§6.4).
//
// Grounded in aprs_telemetry (decode_aprs.go), which hands the raw text
// off to telemetry_data_original; this package parses the fixed comma
// separated "#seq,a1,a2,a3,a4,a5,bbbbbbbb" form directly instead of
// going through that helper's destination-lookup side effects.
type Telemetry struct {
	Sequence int
	Analog   [5]int
	Digital  [8]bool
	Comment  string
}

func (Telemetry) DTI() byte   { return dtiTelemetry }
func (Telemetry) payloadTag() {}

func decodeTelemetry(info []byte) (Payload, error) {
	body := info[1:]
	if len(body) < 1 || body[0] != '#' {
		return nil, ErrMalformed
	}
	rest := string(body[1:])

	var comment string
	if idx := strings.IndexByte(rest, ' '); idx >= 0 {
		comment = rest[idx+1:]
		rest = rest[:idx]
	}

	fields := strings.Split(rest, ",")
	if len(fields) != 7 {
		return nil, ErrMalformed
	}

	seq, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: bad sequence %q", ErrMalformed, fields[0])
	}

	t := Telemetry{Sequence: seq, Comment: comment}
	for i := 0; i < 5; i++ {
		v, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: bad analog value %q", ErrMalformed, fields[i+1])
		}
		t.Analog[i] = v
	}

	bits := fields[6]
	if len(bits) != 8 {
		return nil, ErrMalformed
	}
	for i := 0; i < 8; i++ {
		switch bits[i] {
		case '1':
			t.Digital[i] = true
		case '0':
			t.Digital[i] = false
		default:
			return nil, ErrMalformed
		}
	}

	return t, nil
}

func (t Telemetry) Encode() ([]byte, error) {
	var bits strings.Builder
	for _, b := range t.Digital {
		if b {
			bits.WriteByte('1')
		} else {
			bits.WriteByte('0')
		}
	}

	out := fmt.Sprintf("#%03d,%03d,%03d,%03d,%03d,%03d,%s", t.Sequence,
		t.Analog[0], t.Analog[1], t.Analog[2], t.Analog[3], t.Analog[4], bits.String())
	if t.Comment != "" {
		out += " " + t.Comment
	}
	return append([]byte{dtiTelemetry}, out...), nil
}
