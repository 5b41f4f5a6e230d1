package aprs

import "unicode"

// StatusReport is a free-text station status, optionally preceded by a
// zulu timestamp or a 4/6-character Maidenhead locator plus symbol (spec
// §4.10).
//
// Grounded in aprs_status_report (decode_aprs.go), which tries each of
// the three fixed-prefix forms in turn before falling back to plain text.
type StatusReport struct {
	Timestamp  *Timestamp
	Maidenhead string
	Symbol     Symbol
	Text       string
}

func (StatusReport) DTI() byte { return dtiStatus }
func (StatusReport) payloadTag() {}

func isMaidenhead(s string) bool {
	if len(s) != 4 && len(s) != 6 {
		return false
	}
	if s[0] < 'A' || s[0] > 'R' || s[1] < 'A' || s[1] > 'R' {
		return false
	}
	if !unicode.IsDigit(rune(s[2])) || !unicode.IsDigit(rune(s[3])) {
		return false
	}
	if len(s) == 6 {
		if s[4] < 'a' || s[4] > 'x' || s[5] < 'a' || s[5] > 'x' {
			return false
		}
	}
	return true
}

func decodeStatus(info []byte) (Payload, error) {
	body := info[1:]

	if len(body) >= 7 && allDigits(body[0:6]) && body[6] == 'z' {
		ts, err := DecodeTimestamp(body[0:7])
		if err != nil {
			return nil, err
		}
		return StatusReport{Timestamp: &ts, Text: string(body[7:])}, nil
	}

	if len(body) >= 9 && isMaidenhead(string(body[0:6])) {
		sr := StatusReport{Maidenhead: string(body[0:6]), Symbol: Symbol{Table: body[6], Code: body[7]}}
		rest := body[8:]
		if len(rest) > 0 && rest[0] == ' ' {
			rest = rest[1:]
		}
		sr.Text = string(rest)
		return sr, nil
	}

	if len(body) >= 7 && isMaidenhead(string(body[0:4])) {
		sr := StatusReport{Maidenhead: string(body[0:4]), Symbol: Symbol{Table: body[4], Code: body[5]}}
		rest := body[6:]
		if len(rest) > 0 && rest[0] == ' ' {
			rest = rest[1:]
		}
		sr.Text = string(rest)
		return sr, nil
	}

	return StatusReport{Text: string(body)}, nil
}

func allDigits(b []byte) bool {
	for _, c := range b {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (s StatusReport) Encode() ([]byte, error) {
	out := []byte{dtiStatus}
	switch {
	case s.Timestamp != nil:
		ts, err := s.Timestamp.Encode()
		if err != nil {
			return nil, err
		}
		out = append(out, ts...)
	case s.Maidenhead != "":
		out = append(out, s.Maidenhead...)
		out = append(out, s.Symbol.Table, s.Symbol.Code, ' ')
	}
	out = append(out, s.Text...)
	return out, nil
}
