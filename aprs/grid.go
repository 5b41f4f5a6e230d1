package aprs

import "strings"

const dtiGridSquare = '['

// GridSquare is a decoded Maidenhead grid-square report: a 4 or
// 6-character locator followed by free-text comment (spec §4.11/§6.4).
//
// Grounded in get_maidenhead (decode_aprs.go), reused here as the
// decoder for the dedicated '[' DTI rather than only as a status-report
// sub-case.
type GridSquare struct {
	Grid    string
	Comment string
}

func (GridSquare) DTI() byte   { return dtiGridSquare }
func (GridSquare) payloadTag() {}

func decodeGridSquare(info []byte) (Payload, error) {
	body := info[1:]
	switch {
	case len(body) >= 6 && isMaidenhead(string(body[0:6])):
		return GridSquare{Grid: string(body[0:6]), Comment: strings.TrimPrefix(string(body[6:]), " ")}, nil
	case len(body) >= 4 && isMaidenhead(string(body[0:4])):
		return GridSquare{Grid: string(body[0:4]), Comment: strings.TrimPrefix(string(body[4:]), " ")}, nil
	default:
		return nil, ErrMalformed
	}
}

func (g GridSquare) Encode() ([]byte, error) {
	if !isMaidenhead(g.Grid) {
		return nil, ErrOutOfRange
	}
	out := []byte{dtiGridSquare}
	out = append(out, g.Grid...)
	if g.Comment != "" {
		out = append(out, ' ')
		out = append(out, g.Comment...)
	}
	return out, nil
}
