// Package aprs decodes and encodes the APRS 1.0/1.2 information-field
// payload carried inside an AX.25 UI frame.
//
// Grounded in decode_aprs.go / encode_aprs.go's data-type-indicator
// switch, rewritten as a Go interface-based tagged union (the same
// approach used for ax25.Frame) instead of the teacher's single
// decode_aprs_t struct with every field for every packet type present
// at once.
package aprs

import "errors"

var (
	ErrEmptyInfo       = errors.New("aprs: empty information field")
	ErrUnknownDTI       = errors.New("aprs: unrecognized data type indicator")
	ErrMalformed        = errors.New("aprs: malformed payload")
	ErrOutOfRange       = errors.New("aprs: value out of range")
)

// Payload is the tagged union of every APRS information-field shape this
// package understands. Decode returns the most specific variant it can;
// RawPayload is the fallback for an unrecognized DTI. A recognized DTI
// whose body does not parse yields an error, not a RawPayload.
type Payload interface {
	DTI() byte
	Encode() ([]byte, error)
	payloadTag()
}

// RawPayload preserves an information field verbatim.
type RawPayload struct {
	Data []byte
}

func (p RawPayload) DTI() byte {
	if len(p.Data) == 0 {
		return 0
	}
	return p.Data[0]
}
func (p RawPayload) Encode() ([]byte, error) { return append([]byte(nil), p.Data...), nil }
func (RawPayload) payloadTag()               {}

// Data type indicators, spec §6.4 / decode_aprs.go's top-level switch.
const (
	dtiMicEOld          = '\''
	dtiMicECurrent      = '`'
	dtiPositionNoTS      = '!'
	dtiPositionNoTSMsg   = '='
	dtiRawGPSOrUltimeter = '$'
	dtiItem              = ')'
	dtiPositionTS        = '/'
	dtiPositionTSMsg     = '@'
	dtiMessage           = ':'
	dtiObject            = ';'
	dtiCapabilities      = '<'
	dtiStatus            = '>'
	dtiQuery             = '?'
	dtiTelemetry         = 'T'
	dtiWeatherNoPosition = '_'
	dtiUserDefined       = '{'
	dtiThirdParty        = '}'
	dtiAgreloDF          = '%'
	dtiTest              = ','
	// dtiGridSquare ('[') is defined in grid.go, alongside GridSquare.
)

// Decode dispatches info (the AX.25 information field, PID 0xF0 assumed)
// to the Payload variant matching its leading data type indicator.
func Decode(info []byte) (Payload, error) {
	if len(info) == 0 {
		return nil, ErrEmptyInfo
	}

	switch info[0] {
	case dtiMicEOld, dtiMicECurrent:
		return decodeMicE(info)
	case dtiPositionNoTS, dtiPositionNoTSMsg, dtiPositionTS, dtiPositionTSMsg:
		return decodePositionPacket(info)
	case dtiRawGPSOrUltimeter:
		return decodeRawGPSOrUltimeter(info)
	case dtiItem:
		return decodeItem(info)
	case dtiMessage:
		return decodeMessage(info)
	case dtiObject:
		return decodeObject(info)
	case dtiCapabilities:
		return decodeCapabilities(info)
	case dtiStatus:
		return decodeStatus(info)
	case dtiQuery:
		return decodeQuery(info)
	case dtiTelemetry:
		return decodeTelemetry(info)
	case dtiWeatherNoPosition:
		return decodeWeatherNoPosition(info)
	case dtiUserDefined:
		return decodeUserDefined(info)
	case dtiThirdParty:
		return decodeThirdParty(info)
	case dtiAgreloDF:
		return decodeAgrelo(info)
	case dtiTest:
		return decodeTestPacket(info)
	case dtiGridSquare:
		return decodeGridSquare(info)
	default:
		return RawPayload{Data: append([]byte(nil), info...)}, nil
	}
}
