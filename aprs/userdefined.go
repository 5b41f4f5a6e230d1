package aprs

// UserDefined is a decoded user-defined data packet: a one-byte user ID
// (an amateur callsign's leading letter, historically) and packet type,
// followed by data whose shape is defined by that (UserID, PacketType)
// pair rather than by this package (spec §4.11/§6.4, APRS Protocol
// Reference chapter 18).
//
// Grounded in aprs_user_defined (decode_aprs.go), which special-cases a
// few well-known (UserID, PacketType) combinations — raw touch-tone
// ("tt"/"DT"), Morse code ("mc"/"DM") — before falling back to opaque
// data; this package exposes those as descriptive Kind text instead of
// decoding their payloads, since they are not part of the APRS payload
// family this library targets.
type UserDefined struct {
	UserID     byte
	PacketType byte
	Data       []byte
}

func (UserDefined) DTI() byte   { return dtiUserDefined }
func (UserDefined) payloadTag() {}

// Kind names the well-known historical sub-formats this package
// recognizes but does not further decode.
func (u UserDefined) Kind() string {
	switch {
	case u.UserID == 't' && u.PacketType == 't', u.UserID == 'D' && u.PacketType == 'T':
		return "raw touch-tone"
	case u.UserID == 'm' && u.PacketType == 'c', u.UserID == 'D' && u.PacketType == 'M':
		return "Morse code"
	default:
		return "user-defined"
	}
}

func decodeUserDefined(info []byte) (Payload, error) {
	body := info[1:]
	if len(body) < 2 {
		return nil, ErrMalformed
	}
	return UserDefined{
		UserID:     body[0],
		PacketType: body[1],
		Data:       append([]byte(nil), body[2:]...),
	}, nil
}

func (u UserDefined) Encode() ([]byte, error) {
	if u.UserID == 0 || u.PacketType == 0 {
		return nil, ErrOutOfRange
	}
	out := []byte{dtiUserDefined, u.UserID, u.PacketType}
	return append(out, u.Data...), nil
}
