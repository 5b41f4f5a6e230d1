package aprs

import "github.com/kd9xb/axprs/internal/wire"

// AgreloDF is a decoded Agrelo direction-finding bearing report: a
// 3-digit bearing and a single quality digit (spec §4.11/§6.4).
type AgreloDF struct {
	Bearing int // degrees, 0-359
	Quality int // 0-9, higher is better
}

func (AgreloDF) DTI() byte   { return dtiAgreloDF }
func (AgreloDF) payloadTag() {}

func decodeAgrelo(info []byte) (Payload, error) {
	body := info[1:]
	if len(body) != 5 || body[3] != '/' {
		return nil, ErrMalformed
	}
	bearing, ok := wire.ParseFixedDigits(body[0:3])
	if !ok {
		return nil, ErrMalformed
	}
	quality, ok := wire.ParseFixedDigits(body[4:5])
	if !ok {
		return nil, ErrMalformed
	}
	return AgreloDF{Bearing: bearing, Quality: quality}, nil
}

func (a AgreloDF) Encode() ([]byte, error) {
	if a.Bearing < 0 || a.Bearing > 359 || a.Quality < 0 || a.Quality > 9 {
		return nil, ErrOutOfRange
	}
	out := []byte{dtiAgreloDF}
	out = append(out, []byte(padNum(a.Bearing, 3))...)
	out = append(out, '/')
	out = append(out, byte('0'+a.Quality))
	return out, nil
}
