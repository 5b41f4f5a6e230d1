package ax25

// UFrameType identifies one of the nine unnumbered control-field
// modifiers this package understands (spec §4.4, U frame).
type UFrameType int

const (
	SABM UFrameType = iota
	SABME
	DISC
	UA
	DM
	FRMR
	UI
	XID
	TEST
)

// modifierMask clears P/F (bit 4) of a U-frame control byte, leaving the
// 5 modifier bits spread across bits 2-3 and 5-7. The uModifiers values
// are grounded in the SABM/SABME/DISC/UA/DM/FRMR/UI/XID/TEST constants in
// ax25_pad.h.
const modifierMask = 0xEF

var uModifiers = map[UFrameType]byte{
	SABM:  0x2F,
	SABME: 0x6F,
	DISC:  0x43,
	UA:    0x63,
	DM:    0x0F,
	FRMR:  0x87,
	UI:    0x03,
	XID:   0xAF,
	TEST:  0xE3,
}

var modifierToType = func() map[byte]UFrameType {
	m := make(map[byte]UFrameType, len(uModifiers))
	for t, v := range uModifiers {
		m[v] = t
	}
	return m
}()

// FRMRDiagnostic is the 3-byte (mod-8) or 5-byte (mod-128) information
// field carried by a FRMR frame, reporting why the rejected frame's
// control field could not be processed (spec §4.4).
type FRMRDiagnostic struct {
	RejectedControl int // control field of the rejected frame (two bytes, low first, for mod-128)
	VR              int
	VS              int
	FrmrCr          bool // C/R bit of the rejected frame
	W               bool // control field invalid
	X               bool // rejected frame contained an info field not permitted
	Y               bool // info field exceeded the maximum length
	Z               bool // rejected frame's N(S) was invalid
}

// UnnumberedFrame is the frame shape used for link setup/teardown (SABM,
// SABME, DISC, UA, DM, FRMR) and connectionless delivery (UI, XID, TEST).
// Only the fields relevant to Type are populated; the rest are zero.
type UnnumberedFrame struct {
	Header Header
	Type   UFrameType
	PF     bool

	PID  byte   // UI only
	Info []byte // UI, XID, TEST

	Modulo Modulo          // FRMR only: which control width the diagnostic uses
	FRMR   *FRMRDiagnostic // FRMR only
}

func (f UnnumberedFrame) FrameHeader() Header { return f.Header }
func (UnnumberedFrame) frameTag()             {}

func decodeUFrame(h Header, rest []byte) (UnnumberedFrame, error) {
	if len(rest) < 1 {
		return UnnumberedFrame{}, ErrInvalidControl
	}
	c := rest[0]
	t, ok := modifierToType[c&modifierMask]
	if !ok {
		return UnnumberedFrame{}, ErrInvalidControl
	}

	f := UnnumberedFrame{
		Header: h,
		Type:   t,
		PF:     c&0x10 != 0,
	}

	body := rest[1:]
	switch t {
	case UI:
		if len(body) < 1 {
			return UnnumberedFrame{}, ErrInvalidControl
		}
		f.PID = body[0]
		f.Info = append([]byte(nil), body[1:]...)
	case XID, TEST:
		f.Info = append([]byte(nil), body...)
	case FRMR:
		diag, modulo, err := decodeFRMRInfo(body)
		if err != nil {
			return UnnumberedFrame{}, err
		}
		f.FRMR = diag
		f.Modulo = modulo
	}

	return f, nil
}

func decodeFRMRInfo(b []byte) (*FRMRDiagnostic, Modulo, error) {
	switch len(b) {
	case 3:
		w := b[2]&0x01 != 0
		x := b[2]&0x02 != 0
		y := b[2]&0x04 != 0
		z := b[2]&0x08 != 0
		return &FRMRDiagnostic{
			RejectedControl: int(b[0]),
			VR:              int(b[1]>>5) & 0x07,
			VS:              int(b[1]>>1) & 0x07,
			FrmrCr:          b[1]&0x10 != 0,
			W:               w,
			X:               x,
			Y:               y,
			Z:               z,
		}, Modulo8, nil
	case 5:
		w := b[4]&0x01 != 0
		x := b[4]&0x02 != 0
		y := b[4]&0x04 != 0
		z := b[4]&0x08 != 0
		return &FRMRDiagnostic{
			RejectedControl: int(b[0]) | int(b[1])<<8,
			VR:              int(b[3]>>1) & 0x7f,
			VS:              int(b[2]>>1) & 0x7f,
			FrmrCr:          b[2]&0x01 != 0,
			W:               w,
			X:               x,
			Y:               y,
			Z:               z,
		}, Modulo128, nil
	default:
		return nil, ModuloAuto, ErrMalformedSegment
	}
}

func (f UnnumberedFrame) Encode() ([]byte, error) {
	hb, err := f.Header.Encode()
	if err != nil {
		return nil, err
	}

	modifier, ok := uModifiers[f.Type]
	if !ok {
		return nil, ErrInvalidControl
	}
	c := modifier
	if f.PF {
		c |= 0x10
	}
	out := append(hb, c)

	switch f.Type {
	case UI:
		out = append(out, f.PID)
		out = append(out, f.Info...)
	case XID, TEST:
		out = append(out, f.Info...)
	case FRMR:
		if f.FRMR == nil {
			return nil, ErrInvalidInput
		}
		diag := f.FRMR
		var flags byte
		if diag.W {
			flags |= 0x01
		}
		if diag.X {
			flags |= 0x02
		}
		if diag.Y {
			flags |= 0x04
		}
		if diag.Z {
			flags |= 0x08
		}
		modulo := f.Modulo
		if modulo == ModuloAuto {
			modulo = Modulo8
		}
		var cr byte
		if diag.FrmrCr {
			cr = 1
		}
		if modulo == Modulo8 {
			out = append(out, byte(diag.RejectedControl), byte(diag.VR)<<5|cr<<4|byte(diag.VS)<<1, flags)
		} else {
			out = append(out,
				byte(diag.RejectedControl),
				byte(diag.RejectedControl>>8),
				byte(diag.VS)<<1|cr,
				byte(diag.VR)<<1,
				flags,
			)
		}
	}

	return out, nil
}
