package ax25

// InformationFrame carries sequenced user data (spec §4.4, I frame).
//
// Grounded in ax25_i_frame / the control-byte layout comments in
// ax25_pad.h: mod-8 packs N(S), P/F, and N(R) into one byte; mod-128
// spreads N(S) and N(R) across two bytes with P/F as bit 0 of the second.
type InformationFrame struct {
	Header Header
	Modulo Modulo
	NS     int
	NR     int
	PF     bool
	PID    byte
	Info   []byte
}

func (f InformationFrame) FrameHeader() Header { return f.Header }
func (InformationFrame) frameTag()             {}

func decodeIFrame(h Header, rest []byte, modulo Modulo) (InformationFrame, error) {
	switch modulo {
	case Modulo8:
		if len(rest) < 2 {
			return InformationFrame{}, ErrInvalidControl
		}
		c := rest[0]
		f := InformationFrame{
			Header: h,
			Modulo: Modulo8,
			NS:     int(c>>1) & 0x07,
			PF:     c&0x10 != 0,
			NR:     int(c>>5) & 0x07,
			PID:    rest[1],
			Info:   append([]byte(nil), rest[2:]...),
		}
		return f, nil
	case Modulo128:
		if len(rest) < 3 {
			return InformationFrame{}, ErrInvalidControl
		}
		c0, c1 := rest[0], rest[1]
		f := InformationFrame{
			Header: h,
			Modulo: Modulo128,
			NS:     int(c0>>1) & 0x7f,
			PF:     c1&0x01 != 0,
			NR:     int(c1>>1) & 0x7f,
			PID:    rest[2],
			Info:   append([]byte(nil), rest[3:]...),
		}
		return f, nil
	default:
		return InformationFrame{}, ErrInvalidControl
	}
}

// Encode serializes the frame using f.Modulo, defaulting to Modulo8 when
// unset.
func (f InformationFrame) Encode() ([]byte, error) {
	hb, err := f.Header.Encode()
	if err != nil {
		return nil, err
	}

	modulo := f.Modulo
	if modulo == ModuloAuto {
		modulo = Modulo8
	}

	switch modulo {
	case Modulo8:
		if f.NS < 0 || f.NS > 7 || f.NR < 0 || f.NR > 7 {
			return nil, ErrInvalidControl
		}
		var c byte
		c |= byte(f.NS&0x07) << 1
		if f.PF {
			c |= 0x10
		}
		c |= byte(f.NR&0x07) << 5
		out := append(hb, c, f.PID)
		out = append(out, f.Info...)
		return out, nil
	case Modulo128:
		if f.NS < 0 || f.NS > 127 || f.NR < 0 || f.NR > 127 {
			return nil, ErrInvalidControl
		}
		c0 := byte(f.NS&0x7f) << 1
		var c1 byte
		if f.PF {
			c1 |= 0x01
		}
		c1 |= byte(f.NR&0x7f) << 1
		out := append(hb, c0, c1, f.PID)
		out = append(out, f.Info...)
		return out, nil
	default:
		return nil, ErrInvalidControl
	}
}
