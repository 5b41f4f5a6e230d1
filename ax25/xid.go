package ax25

import "fmt"

// XID parameter identifiers and the Format/Group indicator bytes that
// precede them in a negotiation frame's info field (spec §4.3.3.7,
// §6.3.2). Grounded in xid.go's FI_/GI_/PI_ constants.
const (
	xidFormatIndicator = 0x82
	xidGroupIdentifier = 0x80

	piClassesOfProcedures   = 2
	piHDLCOptionalFunctions = 3
	piIFieldLengthRx        = 6
	piWindowSizeRx          = 8
	piAckTimer              = 9
	piRetries               = 10
)

// Classes of Procedures bit masks (PV for PI 2).
const (
	pvClassesBalancedABM = 0x0100
	pvClassesHalfDuplex  = 0x2000
	pvClassesFullDuplex  = 0x4000
)

// HDLC Optional Functions bit masks (PV for PI 3).
const (
	pvHDLCSynchronousTx     = 0x000002
	pvHDLCMultiSREJCmdResp  = 0x000020
	pvHDLCSegmenter         = 0x000040
	pvHDLCModulo8           = 0x000400
	pvHDLCModulo128         = 0x000800
	pvHDLCTESTCmdResp       = 0x002000
	pvHDLC16BitFCS          = 0x008000
	pvHDLCREJCmdResp        = 0x020000
	pvHDLCSREJCmdResp       = 0x040000
	pvHDLCExtendedAddress   = 0x800000
)

// SREJMode is the level of selective-reject support a station advertises.
type SREJMode int

const (
	SREJNotSpecified SREJMode = iota
	SREJNone
	SREJSingle
	SREJMulti
)

// XIDParam is one negotiable parameter in an XID frame's info field. The
// three typed variants cover every parameter this package interprets;
// RawParam preserves anything else byte-for-byte.
type XIDParam interface {
	paramID() byte
	encodeValue() []byte
}

// ClassOfProcedures is PI 2: half/full duplex, balanced ABM operation.
type ClassOfProcedures struct {
	BalancedABM bool
	FullDuplex  bool
}

func (ClassOfProcedures) paramID() byte { return piClassesOfProcedures }

func (p ClassOfProcedures) encodeValue() []byte {
	var v uint16
	if p.BalancedABM {
		v |= pvClassesBalancedABM
	}
	if p.FullDuplex {
		v |= pvClassesFullDuplex
	} else {
		v |= pvClassesHalfDuplex
	}
	return []byte{byte(v >> 8), byte(v)}
}

// HDLCOptionalFunctions is PI 3: the modulus, REJ/SREJ support, FCS
// width, segmenter availability, and the other link-level capability
// bits negotiated by XID.
type HDLCOptionalFunctions struct {
	Modulo         Modulo
	SREJ           SREJMode
	Segmenter      bool
	SixteenBitFCS  bool
	TESTCmdResp    bool
	ExtendedAddr   bool
	SynchronousTx  bool
}

func (HDLCOptionalFunctions) paramID() byte { return piHDLCOptionalFunctions }

func (p HDLCOptionalFunctions) encodeValue() []byte {
	var v uint32
	switch p.Modulo {
	case Modulo128:
		v |= pvHDLCModulo128
	default:
		v |= pvHDLCModulo8
	}
	switch p.SREJ {
	case SREJMulti:
		v |= pvHDLCMultiSREJCmdResp
	case SREJSingle:
		v |= pvHDLCSREJCmdResp
	case SREJNone:
		v |= pvHDLCREJCmdResp
	}
	if p.Segmenter {
		v |= pvHDLCSegmenter
	}
	if p.SixteenBitFCS {
		v |= pvHDLC16BitFCS
	}
	if p.TESTCmdResp {
		v |= pvHDLCTESTCmdResp
	}
	if p.ExtendedAddr {
		v |= pvHDLCExtendedAddress
	}
	if p.SynchronousTx {
		v |= pvHDLCSynchronousTx
	}
	return []byte{byte(v >> 16), byte(v >> 8), byte(v)}
}

// BigEndianNumber covers the remaining numeric parameters (I Field
// Length Rx, Window Size Rx, Ack Timer, Retries), which are plain
// big-endian integers with no bit-field structure.
type BigEndianNumber struct {
	PI    byte
	Value uint32
	Width int // encoded byte width, 1-4
}

func (p BigEndianNumber) paramID() byte { return p.PI }

func (p BigEndianNumber) encodeValue() []byte {
	w := p.Width
	if w < 1 {
		w = 1
	}
	out := make([]byte, w)
	v := p.Value
	for i := w - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

// RawParam preserves a parameter this package does not interpret.
type RawParam struct {
	PI    byte
	Value []byte
}

func (p RawParam) paramID() byte    { return p.PI }
func (p RawParam) encodeValue() []byte { return p.Value }

// DefaultXIDParams is the capability set this package advertises when
// originating a v2.2 connection: balanced ABM, full duplex, modulo-128
// with multi-SREJ, a 256-byte receive N1, window size 7, a 3-second ack
// timer, and 10 retries. It is a package-level value, never mutated
// after init, so concurrent callers may share it freely.
var DefaultXIDParams = []XIDParam{
	ClassOfProcedures{BalancedABM: true, FullDuplex: true},
	HDLCOptionalFunctions{
		Modulo:      Modulo128,
		SREJ:        SREJMulti,
		Segmenter:   true,
		TESTCmdResp: true,
	},
	BigEndianNumber{PI: piIFieldLengthRx, Value: 256 * 8, Width: 2},
	BigEndianNumber{PI: piWindowSizeRx, Value: 7, Width: 1},
	BigEndianNumber{PI: piAckTimer, Value: 3000, Width: 2},
	BigEndianNumber{PI: piRetries, Value: 10, Width: 1},
}

// DecodeXIDParams parses an XID frame's info field into its constituent
// parameters. An empty info field decodes to a nil, non-error result: the
// spec permits an XID with no parameters, meaning "keep current values."
func DecodeXIDParams(info []byte) ([]XIDParam, error) {
	if len(info) == 0 {
		return nil, nil
	}
	if len(info) < 4 {
		return nil, ErrInvalidInput
	}
	if info[0] != xidFormatIndicator {
		return nil, fmt.Errorf("%w: expected format indicator 0x%02x, got 0x%02x", ErrInvalidInput, xidFormatIndicator, info[0])
	}
	if info[1] != xidGroupIdentifier {
		return nil, fmt.Errorf("%w: expected group identifier 0x%02x, got 0x%02x", ErrInvalidInput, xidGroupIdentifier, info[1])
	}
	groupLen := int(info[2])<<8 | int(info[3])
	end := 4 + groupLen
	if end > len(info) {
		return nil, ErrInvalidInput
	}

	var params []XIDParam
	i := 4
	for i < end {
		if i+2 > end {
			return nil, ErrInvalidInput
		}
		pi := info[i]
		pl := int(info[i+1])
		i += 2
		if pl < 1 || pl > 4 || i+pl > end {
			return nil, ErrInvalidInput
		}
		var pval uint32
		for j := 0; j < pl; j++ {
			pval = pval<<8 | uint32(info[i+j])
		}
		i += pl

		switch pi {
		case piClassesOfProcedures:
			params = append(params, ClassOfProcedures{
				BalancedABM: pval&pvClassesBalancedABM != 0,
				FullDuplex:  pval&pvClassesFullDuplex != 0,
			})
		case piHDLCOptionalFunctions:
			p := HDLCOptionalFunctions{
				Segmenter:     pval&pvHDLCSegmenter != 0,
				SixteenBitFCS: pval&pvHDLC16BitFCS != 0,
				TESTCmdResp:   pval&pvHDLCTESTCmdResp != 0,
				ExtendedAddr:  pval&pvHDLCExtendedAddress != 0,
				SynchronousTx: pval&pvHDLCSynchronousTx != 0,
			}
			if pval&pvHDLCModulo128 != 0 {
				p.Modulo = Modulo128
			} else {
				p.Modulo = Modulo8
			}
			switch {
			case pval&pvHDLCMultiSREJCmdResp != 0:
				p.SREJ = SREJMulti
			case pval&pvHDLCSREJCmdResp != 0:
				p.SREJ = SREJSingle
			case pval&pvHDLCREJCmdResp != 0:
				p.SREJ = SREJNone
			}
			params = append(params, p)
		case piIFieldLengthRx, piWindowSizeRx, piAckTimer, piRetries:
			params = append(params, BigEndianNumber{PI: pi, Value: pval, Width: pl})
		default:
			raw := make([]byte, pl)
			for j := 0; j < pl; j++ {
				raw[j] = byte(pval >> uint(8*(pl-1-j)))
			}
			params = append(params, RawParam{PI: pi, Value: raw})
		}
	}

	return params, nil
}

// EncodeXIDParams serializes params back into an XID frame's info field.
func EncodeXIDParams(params []XIDParam) []byte {
	if len(params) == 0 {
		return nil
	}

	var body []byte
	for _, p := range params {
		v := p.encodeValue()
		body = append(body, p.paramID(), byte(len(v)))
		body = append(body, v...)
	}

	out := []byte{xidFormatIndicator, xidGroupIdentifier, byte(len(body) >> 8), byte(len(body))}
	return append(out, body...)
}
