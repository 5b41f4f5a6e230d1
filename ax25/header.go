package ax25

// Header is the destination/source/repeater-path portion common to every
// AX.25 frame variant (component C2, spec §4.3).
type Header struct {
	Destination Address
	Source      Address
	Repeaters   Path

	// CR and SrcCR mirror the C-bit of the destination and source address
	// respectively. An AX.25 v2.2 command has CR=true, SrcCR=false; a
	// response reverses them.
	CR    bool
	SrcCR bool
}

// MinHeaderLen is the wire length of a header with no repeaters.
const MinHeaderLen = 14

// DecodeHeader parses the destination, source, and 0..8 repeater addresses
// from the front of buf. It returns the header and the remaining bytes
// (the control field onward).
//
// Grounded in the address-walking loop of ax25_from_frame /
// ax25_get_num_addr: addresses are consumed until one is found with its
// extension bit set, to a maximum of 8 repeaters beyond dest+source.
func DecodeHeader(buf []byte) (Header, []byte, error) {
	if len(buf) < MinHeaderLen {
		return Header{}, nil, ErrInvalidLength
	}

	var destBytes, srcBytes [7]byte
	copy(destBytes[:], buf[0:7])
	copy(srcBytes[:], buf[7:14])

	dest, err := DecodeAddress(destBytes)
	if err != nil {
		return Header{}, nil, err
	}
	src, err := DecodeAddress(srcBytes)
	if err != nil {
		return Header{}, nil, err
	}

	h := Header{
		Destination: dest,
		Source:      src,
		CR:          dest.CH,
		SrcCR:       src.CH,
	}

	rest := buf[14:]
	if src.Extension {
		return h, rest, nil
	}

	var repeaters Path
	for {
		if len(repeaters) >= MaxRepeaters {
			return Header{}, nil, ErrInvalidAddressField
		}
		if len(rest) < 7 {
			return Header{}, nil, ErrInvalidAddressField
		}
		var rb [7]byte
		copy(rb[:], rest[0:7])
		addr, err := DecodeAddress(rb)
		if err != nil {
			return Header{}, nil, err
		}
		repeaters = append(repeaters, addr)
		rest = rest[7:]
		if addr.Extension {
			break
		}
	}

	h.Repeaters = repeaters
	return h, rest, nil
}

// Encode serializes the header. Extension is forced true on exactly one
// address (the last repeater, or the source if there are no repeaters) and
// false everywhere else, regardless of what the caller set.
func (h Header) Encode() ([]byte, error) {
	if len(h.Repeaters) > MaxRepeaters {
		return nil, ErrTooManyRepeaters
	}

	dest := h.Destination
	dest.CH = h.CR
	dest.Extension = false

	src := h.Source
	src.CH = h.SrcCR
	src.Extension = len(h.Repeaters) == 0

	out := make([]byte, 0, MinHeaderLen+7*len(h.Repeaters))

	db, err := dest.Encode()
	if err != nil {
		return nil, err
	}
	out = append(out, db[:]...)

	sb, err := src.Encode()
	if err != nil {
		return nil, err
	}
	out = append(out, sb[:]...)

	reps := h.Repeaters.WithExtensionBits(true)
	for _, r := range reps {
		rb, err := r.Encode()
		if err != nil {
			return nil, err
		}
		out = append(out, rb[:]...)
	}

	return out, nil
}
