package aprs

import "fmt"

// MicEMessageType is the 3-bit standard/custom status code buried in the
// Mic-E destination callsign (spec §4.10).
type MicEMessageType int

const (
	MicEEmergency MicEMessageType = iota
	MicEPriority
	MicESpecial
	MicECommitted
	MicEReturning
	MicEInService
	MicEEnRoute
	MicEOffDuty
)

var micEStdText = [8]string{"Emergency", "Priority", "Special", "Committed", "Returning", "In Service", "En Route", "Off Duty"}
var micECustomText = [8]string{"Emergency", "Custom-6", "Custom-5", "Custom-4", "Custom-3", "Custom-2", "Custom-1", "Custom-0"}

// MicEPacket is a decoded Mic-E position report. Unlike every other APRS
// payload, most of its information rides in the AX.25 destination
// callsign rather than the information field, so decoding a Mic-E packet
// requires both.
//
// Grounded in aprs_mic_e / mic_e_digit (decode_aprs.go).
type MicEPacket struct {
	Legacy bool // DTI is '\'' (legacy) rather than '`' (current)

	Lat    float64
	Lon    float64
	Symbol Symbol

	SpeedKnots int
	Course     int // 0 = unknown

	Standard bool // message type came from the standard (P-Y) code set
	Custom   bool // message type came from the custom (A-J) code set
	Message  MicEMessageType

	Comment string
}

func (p MicEPacket) DTI() byte {
	if p.Legacy {
		return dtiMicEOld
	}
	return dtiMicECurrent
}
func (MicEPacket) payloadTag() {}

func micEDigit(c byte, mask int, std, cust *int) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'J':
		*cust |= mask
		return int(c - 'A')
	case c >= 'P' && c <= 'Y':
		*std |= mask
		return int(c - 'P')
	case c == 'K':
		*cust |= mask
		return 0
	case c == 'L':
		return 0
	case c == 'Z':
		*std |= mask
		return 0
	default:
		return 0
	}
}

// DecodeMicE decodes a Mic-E packet from the destination callsign (as
// transmitted, 6 printable characters before any SSID) and the
// information field (which begins with the ' or ` data type indicator).
func DecodeMicE(destCallsign string, info []byte) (MicEPacket, error) {
	if len(destCallsign) < 6 {
		return MicEPacket{}, ErrMalformed
	}
	if len(info) < 9 {
		return MicEPacket{}, ErrMalformed
	}

	d := []byte(destCallsign)
	var std, cust int

	lat := float64(micEDigit(d[0], 4, &std, &cust)*10+micEDigit(d[1], 2, &std, &cust)) +
		float64(micEDigit(d[2], 1, &std, &cust)*1000+
			micEDigit(d[3], 0, &std, &cust)*100+
			micEDigit(d[4], 0, &std, &cust)*10+
			micEDigit(d[5], 0, &std, &cust))/6000.0

	south := (d[3] >= '0' && d[3] <= '9') || d[3] == 'L'
	if south {
		lat = -lat
	}

	offset := d[4] >= 'P' && d[4] <= 'Z'

	lonBytes := info[1:4]
	lon, err := decodeMicELongitude(lonBytes, offset)
	if err != nil {
		return MicEPacket{}, err
	}

	west := d[5] >= 'P' && d[5] <= 'Z'
	if west {
		lon = -lon
	}

	symCode := info[7]
	symTable := info[8]
	if symTable != '/' && symTable != '\\' && !(symTable >= 'A' && symTable <= 'Z') && !(symTable >= '0' && symTable <= '9') {
		symTable = '/'
	}

	speedCourse := info[4:7]
	n := int(speedCourse[0]-28)*10 + int(speedCourse[1]-28)/10
	if n >= 800 {
		n -= 800
	}
	speed := n

	n = int(speedCourse[1]-28)%10*100 + int(speedCourse[2]-28)
	if n >= 400 {
		n -= 400
	}
	course := n % 360

	p := MicEPacket{
		Legacy:     info[0] == dtiMicEOld,
		Lat:        lat,
		Lon:        lon,
		Symbol:     Symbol{Table: symTable, Code: symCode},
		SpeedKnots: speed,
		Course:     course,
		Standard:   std != 0,
		Custom:     cust != 0,
		Comment:    string(info[9:]),
	}

	switch {
	case std == 0 && cust == 0:
		p.Message = MicEEmergency
	case std == 0:
		p.Message = MicEMessageType(cust)
	case cust == 0:
		p.Message = MicEMessageType(std)
	}

	return p, nil
}

func decodeMicELongitude(lon []byte, offset bool) (float64, error) {
	ch := lon[0]
	var deg float64
	switch {
	case offset && ch >= 118 && ch <= 127:
		deg = float64(ch - 118)
	case !offset && ch >= 38 && ch <= 127:
		deg = float64(ch-38) + 10
	case offset && ch >= 108 && ch <= 117:
		deg = float64(ch-108) + 100
	case offset && ch >= 38 && ch <= 107:
		deg = float64(ch-38) + 110
	default:
		return 0, fmt.Errorf("%w: invalid mic-e longitude degrees byte 0x%02x", ErrMalformed, ch)
	}

	ch = lon[1]
	var min float64
	switch {
	case ch >= 88 && ch <= 97:
		min = float64(ch-88) / 60.0
	case ch >= 38 && ch <= 87:
		min = float64(ch-38+10) / 60.0
	default:
		return 0, fmt.Errorf("%w: invalid mic-e longitude minutes byte 0x%02x", ErrMalformed, ch)
	}

	ch = lon[2]
	if ch < 28 {
		return 0, fmt.Errorf("%w: invalid mic-e longitude hundredths byte 0x%02x", ErrMalformed, ch)
	}
	hundredths := float64(ch-28) / 6000.0

	return deg + min + hundredths, nil
}

// MessageText returns the human-readable status text for p's message
// type and source code set.
func (p MicEPacket) MessageText() string {
	switch {
	case p.Standard:
		return micEStdText[p.Message]
	case p.Custom:
		return micECustomText[p.Message]
	default:
		return micEStdText[MicEEmergency]
	}
}

func decodeMicE(info []byte) (Payload, error) {
	return nil, fmt.Errorf("%w: mic-e decode requires the destination callsign; use DecodeMicE", ErrMalformed)
}

// Encode returns the information field only, the same bytes as
// EncodeMicEInfo. Mic-E carries the latitude and message bits in the
// destination callsign, which Encode does not produce.
func (p MicEPacket) Encode() ([]byte, error) {
	return EncodeMicEInfo(p)
}

// EncodeMicEInfo renders the information-field portion of a Mic-E packet
// (the DTI plus longitude/speed/course/symbol/comment). The destination
// callsign encoding is handled separately since it carries latitude and
// message-type bits rather than a station identifier.
func EncodeMicEInfo(p MicEPacket) ([]byte, error) {
	out := []byte{p.DTI()}

	lonDeg := int(p.Lon)
	if lonDeg < 0 {
		lonDeg = -lonDeg
	}
	offset := lonDeg >= 100 || lonDeg < 10

	var d0 byte
	switch {
	case offset && lonDeg < 10:
		d0 = byte(lonDeg) + 118
	case !offset:
		d0 = byte(lonDeg-10) + 38
	case offset && lonDeg >= 100 && lonDeg < 110:
		d0 = byte(lonDeg-100) + 108
	default:
		d0 = byte(lonDeg-110) + 38
	}

	absLon := p.Lon
	if absLon < 0 {
		absLon = -absLon
	}
	minFrac := (absLon - float64(int(absLon))) * 60
	minInt := int(minFrac)
	hundredths := int((minFrac - float64(minInt)) * 100)

	var d1 byte
	if minInt < 10 {
		d1 = byte(minInt) + 88
	} else {
		d1 = byte(minInt-10) + 38
	}
	d2 := byte(hundredths) + 28

	out = append(out, d0, d1, d2)

	speed := p.SpeedKnots
	course := p.Course % 360
	sc0 := byte(speed/10) + 28
	sc1 := byte(speed%10*10+course/100) + 28
	sc2 := byte(course%100) + 28
	out = append(out, sc0, sc1, sc2)

	out = append(out, p.Symbol.Code, p.Symbol.Table)
	out = append(out, p.Comment...)
	return out, nil
}
