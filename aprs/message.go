package aprs

import (
	"regexp"
	"strings"
)

// MessageSubtype refines Message into its special-cased forms: a plain
// message, a bulletin, a weather-service bulletin, an ack/reject, a
// directed station query, or one of the four telemetry-metadata
// messages (spec §4.10/§6.4).
type MessageSubtype int

const (
	MessageSubtypePlain MessageSubtype = iota
	MessageSubtypeBulletin
	MessageSubtypeNWS
	MessageSubtypeAck
	MessageSubtypeReject
	MessageSubtypeDirectedQuery
	MessageSubtypeTelemetryParam
	MessageSubtypeTelemetryUnit
	MessageSubtypeTelemetryEqns
	MessageSubtypeTelemetryBits
)

// Message is a decoded APRS ":addressee:text{number" payload.
//
// Grounded in aprs_message (decode_aprs.go): a fixed 9-character
// addressee field, with bulletin/NWS/ack/reject/query/telemetry-metadata
// recognized by inspecting the addressee prefix or message text prefix.
type Message struct {
	Addressee string
	Text      string
	Number    string // message ID, 1-5 alphanumerics; empty if absent
	Subtype   MessageSubtype
}

func (Message) DTI() byte { return dtiMessage }
func (Message) payloadTag() {}

// badAddresseeSpace matches an addressee whose callsign and SSID dash
// are separated by stray padding (e.g. "WB2OSZ -7"), a malformed field
// decode_aprs.go rejects outright rather than trimming.
var badAddresseeSpace = regexp.MustCompile(`[A-Z0-9]+ +-[0-9]`)

func decodeMessage(info []byte) (Payload, error) {
	if len(info) < 11 || info[10] != ':' {
		return nil, ErrMalformed
	}
	addressee := strings.TrimRight(string(info[1:10]), " ")
	if badAddresseeSpace.MatchString(addressee) {
		return nil, ErrMalformed
	}
	text := string(info[11:])

	m := Message{Addressee: addressee, Text: text, Subtype: MessageSubtypePlain}

	switch {
	case strings.HasPrefix(addressee, "BLN"):
		m.Subtype = MessageSubtypeBulletin
	case strings.HasPrefix(addressee, "NWS"), strings.HasPrefix(addressee, "SKY"),
		strings.HasPrefix(addressee, "CWA"), strings.HasPrefix(addressee, "BOM"):
		m.Subtype = MessageSubtypeNWS
	case strings.HasPrefix(text, "PARM."):
		m.Subtype = MessageSubtypeTelemetryParam
		m.Text = text[5:]
	case strings.HasPrefix(text, "UNIT."):
		m.Subtype = MessageSubtypeTelemetryUnit
		m.Text = text[5:]
	case strings.HasPrefix(text, "EQNS."):
		m.Subtype = MessageSubtypeTelemetryEqns
		m.Text = text[5:]
	case strings.HasPrefix(text, "BITS."):
		m.Subtype = MessageSubtypeTelemetryBits
		m.Text = text[5:]
	case strings.HasPrefix(text, "?"):
		m.Subtype = MessageSubtypeDirectedQuery
		m.Text = text[1:]
	case len(text) >= 3 && strings.EqualFold(text[:3], "ack"):
		m.Subtype = MessageSubtypeAck
		m.Number = text[3:]
		m.Text = ""
	case len(text) >= 3 && strings.EqualFold(text[:3], "rej"):
		m.Subtype = MessageSubtypeReject
		m.Number = text[3:]
		m.Text = ""
	default:
		if idx := strings.IndexByte(text, '{'); idx >= 0 {
			m.Number = strings.TrimSuffix(text[idx+1:], "}")
			m.Text = text[:idx]
		}
	}

	return m, nil
}

func (m Message) Encode() ([]byte, error) {
	addressee := m.Addressee
	for len(addressee) < 9 {
		addressee += " "
	}
	if len(addressee) > 9 {
		return nil, ErrOutOfRange
	}

	out := []byte{dtiMessage}
	out = append(out, addressee...)
	out = append(out, ':')

	switch m.Subtype {
	case MessageSubtypeAck:
		out = append(out, "ack"...)
		out = append(out, m.Number...)
	case MessageSubtypeReject:
		out = append(out, "rej"...)
		out = append(out, m.Number...)
	case MessageSubtypeDirectedQuery:
		out = append(out, '?')
		out = append(out, m.Text...)
	default:
		out = append(out, m.Text...)
		if m.Number != "" {
			out = append(out, '{')
			out = append(out, m.Number...)
			out = append(out, '}')
		}
	}
	return out, nil
}
