package aprs

import "strings"

// Object is a decoded APRS object report: a named, possibly-moving
// waypoint broadcast on behalf of something that is not itself a station
// (spec §4.10).
//
// Grounded in aprs_object (decode_aprs.go): a fixed 9-character name, a
// live/killed marker, a timestamp, then a position in either the
// uncompressed or compressed form.
type Object struct {
	Name       string
	Killed     bool
	Timestamp  Timestamp
	Lat        float64
	Lon        float64
	Symbol     Symbol
	Compressed bool
	Comment    string
}

func (Object) DTI() byte { return dtiObject }
func (Object) payloadTag() {}

func decodeObject(info []byte) (Payload, error) {
	if len(info) < 18 {
		return nil, ErrMalformed
	}
	name := strings.TrimRight(string(info[1:10]), " ")
	marker := info[10]
	if marker != '*' && marker != '_' {
		return nil, ErrMalformed
	}

	ts, err := DecodeTimestamp(info[11:18])
	if err != nil {
		return nil, err
	}

	body := info[18:]
	if len(body) < 1 {
		return nil, ErrMalformed
	}

	o := Object{Name: name, Killed: marker == '_', Timestamp: ts}

	if body[0] == '/' || body[0] == '\\' {
		if len(body) < 13 {
			return nil, ErrMalformed
		}
		o.Compressed = true
		o.Symbol.Table = body[0]
		lat, err := DecodeCompressedLatitude(string(body[1:5]))
		if err != nil {
			return nil, err
		}
		lon, err := DecodeCompressedLongitude(string(body[5:9]))
		if err != nil {
			return nil, err
		}
		o.Lat, o.Lon = lat, lon
		o.Symbol.Code = body[9]
		o.Comment = string(body[13:])
		return o, nil
	}

	if len(body) < 19 {
		return nil, ErrMalformed
	}
	lat, _, err := DecodeLatitude(string(body[0:8]))
	if err != nil {
		return nil, err
	}
	lon, _, err := DecodeLongitude(string(body[9:18]))
	if err != nil {
		return nil, err
	}
	o.Lat, o.Lon = lat, lon
	o.Symbol = Symbol{Table: body[8], Code: body[18]}
	o.Comment = string(body[19:])
	return o, nil
}

func (o Object) Encode() ([]byte, error) {
	name := o.Name
	for len(name) < 9 {
		name += " "
	}
	if len(name) > 9 {
		return nil, ErrOutOfRange
	}

	out := []byte{dtiObject}
	out = append(out, name...)
	if o.Killed {
		out = append(out, '_')
	} else {
		out = append(out, '*')
	}
	ts, err := o.Timestamp.Encode()
	if err != nil {
		return nil, err
	}
	out = append(out, ts...)

	if o.Compressed {
		out = append(out, o.Symbol.Table)
		out = append(out, EncodeCompressedLatitude(o.Lat)...)
		out = append(out, EncodeCompressedLongitude(o.Lon)...)
		out = append(out, o.Symbol.Code)
		out = append(out, "  !"...)
	} else {
		out = append(out, EncodeLatitude(o.Lat, 0)...)
		out = append(out, o.Symbol.Table)
		out = append(out, EncodeLongitude(o.Lon, 0)...)
		out = append(out, o.Symbol.Code)
	}
	out = append(out, o.Comment...)
	return out, nil
}
