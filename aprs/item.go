package aprs

// Item is a decoded APRS item report: like Object but with no timestamp
// and a variable-length (3-9 character) name terminated by the
// live/killed marker itself.
//
// Grounded in aprs_item (decode_aprs.go): the name is read byte by byte
// until a '!' (live) or '_' (killed) marker is seen.
type Item struct {
	Name       string
	Killed     bool
	Lat        float64
	Lon        float64
	Symbol     Symbol
	Compressed bool
	Comment    string
}

func (Item) DTI() byte { return dtiItem }
func (Item) payloadTag() {}

func decodeItem(info []byte) (Payload, error) {
	body := info[1:]

	var name []byte
	i := 0
	for i < len(body) && body[i] != '!' && body[i] != '_' {
		name = append(name, body[i])
		i++
	}
	if i >= len(body) || len(name) < 3 || len(name) > 9 {
		return nil, ErrMalformed
	}

	killed := body[i] == '_'
	rest := body[i+1:]

	it := Item{Name: string(name), Killed: killed}

	if len(rest) < 1 {
		return nil, ErrMalformed
	}

	if rest[0] == '/' || rest[0] == '\\' {
		if len(rest) < 13 {
			return nil, ErrMalformed
		}
		it.Compressed = true
		it.Symbol.Table = rest[0]
		lat, err := DecodeCompressedLatitude(string(rest[1:5]))
		if err != nil {
			return nil, err
		}
		lon, err := DecodeCompressedLongitude(string(rest[5:9]))
		if err != nil {
			return nil, err
		}
		it.Lat, it.Lon = lat, lon
		it.Symbol.Code = rest[9]
		it.Comment = string(rest[13:])
		return it, nil
	}

	if len(rest) < 19 {
		return nil, ErrMalformed
	}
	lat, _, err := DecodeLatitude(string(rest[0:8]))
	if err != nil {
		return nil, err
	}
	lon, _, err := DecodeLongitude(string(rest[9:18]))
	if err != nil {
		return nil, err
	}
	it.Lat, it.Lon = lat, lon
	it.Symbol = Symbol{Table: rest[8], Code: rest[18]}
	it.Comment = string(rest[19:])
	return it, nil
}

func (it Item) Encode() ([]byte, error) {
	if len(it.Name) < 3 || len(it.Name) > 9 {
		return nil, ErrOutOfRange
	}
	out := []byte{dtiItem}
	out = append(out, it.Name...)
	if it.Killed {
		out = append(out, '_')
	} else {
		out = append(out, '!')
	}

	if it.Compressed {
		out = append(out, it.Symbol.Table)
		out = append(out, EncodeCompressedLatitude(it.Lat)...)
		out = append(out, EncodeCompressedLongitude(it.Lon)...)
		out = append(out, it.Symbol.Code)
		out = append(out, "  !"...)
	} else {
		out = append(out, EncodeLatitude(it.Lat, 0)...)
		out = append(out, it.Symbol.Table)
		out = append(out, EncodeLongitude(it.Lon, 0)...)
		out = append(out, it.Symbol.Code)
	}
	out = append(out, it.Comment...)
	return out, nil
}
