package ax25

// SupervisoryKind is the exported form of sFrameKind, naming the four
// RR/RNR/REJ/SREJ variants (spec §4.4).
type SupervisoryKind int

const (
	RR SupervisoryKind = iota
	RNR
	REJ
	SREJ
)

// SupervisoryFrame carries flow-control and acknowledgement information
// with no user data (spec §4.4, S frame).
type SupervisoryFrame struct {
	Header Header
	Modulo Modulo
	Kind   SupervisoryKind
	NR     int
	PF     bool
}

func (f SupervisoryFrame) FrameHeader() Header { return f.Header }
func (SupervisoryFrame) frameTag()             {}

func decodeSFrame(h Header, rest []byte, modulo Modulo) (SupervisoryFrame, error) {
	switch modulo {
	case Modulo8:
		if len(rest) < 1 {
			return SupervisoryFrame{}, ErrInvalidControl
		}
		c := rest[0]
		return SupervisoryFrame{
			Header: h,
			Modulo: Modulo8,
			Kind:   SupervisoryKind(decodeSFrameKind(c)),
			PF:     c&0x10 != 0,
			NR:     int(c>>5) & 0x07,
		}, nil
	case Modulo128:
		if len(rest) < 2 {
			return SupervisoryFrame{}, ErrInvalidControl
		}
		c0, c1 := rest[0], rest[1]
		return SupervisoryFrame{
			Header: h,
			Modulo: Modulo128,
			Kind:   SupervisoryKind(decodeSFrameKind(c0)),
			PF:     c1&0x01 != 0,
			NR:     int(c1>>1) & 0x7f,
		}, nil
	default:
		return SupervisoryFrame{}, ErrInvalidControl
	}
}

func (f SupervisoryFrame) Encode() ([]byte, error) {
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
		if f.NR < 0 || f.NR > 7 {
			return nil, ErrInvalidControl
		}
		c := byte(0x01)
		c |= encodeSFrameKind(sFrameKind(f.Kind))
		if f.PF {
			c |= 0x10
		}
		c |= byte(f.NR&0x07) << 5
		return append(hb, c), nil
	case Modulo128:
		if f.NR < 0 || f.NR > 127 {
			return nil, ErrInvalidControl
		}
		c0 := byte(0x01) | encodeSFrameKind(sFrameKind(f.Kind))
		var c1 byte
		if f.PF {
			c1 |= 0x01
		}
		c1 |= byte(f.NR&0x7f) << 1
		return append(hb, c0, c1), nil
	default:
		return nil, ErrInvalidControl
	}
}
