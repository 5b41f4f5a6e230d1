package aprs

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/kd9xb/axprs/internal/wire"
)

// PositionPacket is a plain or timestamped APRS position report, in
// uncompressed or Base-91 compressed form (spec §4.10).
//
// Grounded in latitude_to_str / longitude_to_str / latitude_to_comp_str /
// longitude_to_comp_str (latlong.go) and the '!'/'='/'/'/'@' cases of
// decode_aprs.go's dispatch switch.
type PositionPacket struct {
	Messaging  bool // DTI is '=' or '@' rather than '!' or '/'
	Timestamp  *Timestamp
	Lat        float64
	Lon        float64
	Symbol     Symbol
	Ambiguity  int // 0-4 uncompressed digits blanked; ignored when Compressed
	Compressed bool
	Course     int // degrees, 0 means unknown/omitted
	Speed      int // knots
	HasCourseSpeed bool
	PHG        *PHGExtension
	DF         *DFExtension
	Altitude   *int // feet, from a "/A=NNNNNN" token anywhere in Comment
	Comment    string
}

// PHGExtension is the Power-Height-Gain-Directivity data extension
// (spec §3/§4.10/GLOSSARY): a station's transmitted power, antenna
// height above average terrain, antenna gain, and beam heading, each as
// a single digit index into the APRS PHG tables.
//
// Grounded in decode_aprs.go's "PHG" case of aprs_data_extension: power
// watts = PowerIndex², height feet = 10·2^HeightIndex, gain is the raw
// dB value, and DirectivityIndex 0-8 maps to omni/45°-step headings.
type PHGExtension struct {
	PowerIndex       int // 0-9
	HeightIndex      int // 0-9
	GainIndex        int // 0-9, dB
	DirectivityIndex int // 0-8: 0=omni, 1=NE, 2=E, ... 8=N, in 45° steps
}

// PowerWatts returns the transmitted power implied by PowerIndex.
func (p PHGExtension) PowerWatts() int { return p.PowerIndex * p.PowerIndex }

// HeightFeet returns the antenna height above average terrain implied
// by HeightIndex.
func (p PHGExtension) HeightFeet() int { return 10 << uint(p.HeightIndex) }

// phgDirections is the APRS PHG directivity table, index 0 = omni.
var phgDirections = [9]string{"omni", "NE", "E", "SE", "S", "SW", "W", "NW", "N"}

// Directivity returns the compass heading (or "omni") implied by
// DirectivityIndex.
func (p PHGExtension) Directivity() string {
	if p.DirectivityIndex < 0 || p.DirectivityIndex > 8 {
		return ""
	}
	return phgDirections[p.DirectivityIndex]
}

// DFExtension is the direction-finding signal-strength data extension:
// the same height/gain/directivity encoding as PHGExtension, but with
// the power digit replaced by an S-meter signal-strength reading
// (spec §3/§4.10, grounded in decode_aprs.go's "DFS" case).
type DFExtension struct {
	StrengthIndex    int // 0-9, S-meter reading
	HeightIndex      int
	GainIndex        int
	DirectivityIndex int
}

func (d DFExtension) HeightFeet() int { return 10 << uint(d.HeightIndex) }
func (d DFExtension) Directivity() string {
	if d.DirectivityIndex < 0 || d.DirectivityIndex > 8 {
		return ""
	}
	return phgDirections[d.DirectivityIndex]
}

// parsePHGPrefix recognizes a 7-character PHG data extension at the
// front of comment and returns it along with the remaining comment
// text. It reports ok=false (never an error: a malformed extension is
// silently left as ordinary comment text) when comment does not begin
// with one.
func parsePHGPrefix(comment string) (*PHGExtension, string, bool) {
	if !strings.HasPrefix(comment, "PHG") || len(comment) < 7 {
		return nil, comment, false
	}
	digits := comment[3:7]
	for _, c := range digits[:3] {
		if c < '0' || c > '9' {
			return nil, comment, false
		}
	}
	ext := &PHGExtension{
		PowerIndex:  int(digits[0] - '0'),
		HeightIndex: int(digits[1] - '0'),
		GainIndex:   int(digits[2] - '0'),
	}
	if digits[3] >= '0' && digits[3] <= '8' {
		ext.DirectivityIndex = int(digits[3] - '0')
	} else {
		ext.DirectivityIndex = -1
	}
	return ext, comment[7:], true
}

func parseDFSPrefix(comment string) (*DFExtension, string, bool) {
	if !strings.HasPrefix(comment, "DFS") || len(comment) < 7 {
		return nil, comment, false
	}
	digits := comment[3:7]
	if digits[0] < '0' || digits[0] > '9' || digits[1] < '0' || digits[1] > '9' || digits[2] < '0' || digits[2] > '9' {
		return nil, comment, false
	}
	ext := &DFExtension{
		StrengthIndex: int(digits[0] - '0'),
		HeightIndex:   int(digits[1] - '0'),
		GainIndex:     int(digits[2] - '0'),
	}
	if digits[3] >= '0' && digits[3] <= '8' {
		ext.DirectivityIndex = int(digits[3] - '0')
	} else {
		ext.DirectivityIndex = -1
	}
	return ext, comment[7:], true
}

var altitudeExtension = regexp.MustCompile(`/A=(-?\d{6})`)

// parseAltitude finds a "/A=NNNNNN" token anywhere in comment and
// returns its value in feet. Per spec §9 Open Question (a), the token
// is left in place in the returned comment rather than stripped.
func parseAltitude(comment string) (*int, bool) {
	m := altitudeExtension.FindStringSubmatch(comment)
	if m == nil {
		return nil, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, false
	}
	return &v, true
}

// Symbol is an APRS symbol table/code pair.
type Symbol struct {
	Table byte // '/' (primary) or '\\' (alternate), or an overlay character
	Code  byte
}

func (p PositionPacket) dti() byte {
	switch {
	case p.Timestamp != nil && p.Messaging:
		return dtiPositionTSMsg
	case p.Timestamp != nil:
		return dtiPositionTS
	case p.Messaging:
		return dtiPositionNoTSMsg
	default:
		return dtiPositionNoTS
	}
}

func (p PositionPacket) DTI() byte { return p.dti() }
func (PositionPacket) payloadTag() {}

// EncodeLatitude renders dlat in the fixed-width "ddmm.mmN" form, with
// ambiguity trailing digits blanked. No centering offset is applied to
// blanked digits (an APRS behavior left unspecified by some references;
// this package always reports the low edge of the ambiguous cell).
func EncodeLatitude(dlat float64, ambiguity int) string {
	if dlat < -90 {
		dlat = -90
	}
	if dlat > 90 {
		dlat = 90
	}
	hemi := byte('N')
	if dlat < 0 {
		dlat = -dlat
		hemi = 'S'
	}
	ideg := int(dlat)
	dmin := (dlat - float64(ideg)) * 60
	smin := fmt.Sprintf("%05.2f", dmin)
	if smin[0] == '6' {
		smin = "00.00"
		ideg++
	}
	s := []byte(fmt.Sprintf("%02d%s%c", ideg, smin, hemi))
	blankLatLonAmbiguity(s, ambiguity, 6, 5, 3, 2)
	return string(s)
}

// EncodeLongitude renders dlon in the fixed-width "dddmm.mmE" form.
func EncodeLongitude(dlon float64, ambiguity int) string {
	if dlon < -180 {
		dlon = -180
	}
	if dlon > 180 {
		dlon = 180
	}
	hemi := byte('E')
	if dlon < 0 {
		dlon = -dlon
		hemi = 'W'
	}
	ideg := int(dlon)
	dmin := (dlon - float64(ideg)) * 60
	smin := fmt.Sprintf("%05.2f", dmin)
	if smin[0] == '6' {
		smin = "00.00"
		ideg++
	}
	s := []byte(fmt.Sprintf("%03d%s%c", ideg, smin, hemi))
	blankLatLonAmbiguity(s, ambiguity, 7, 6, 4, 3)
	return string(s)
}

func blankLatLonAmbiguity(s []byte, ambiguity int, idx1, idx2, idx3, idx4 int) {
	if ambiguity >= 1 {
		s[idx1] = ' '
	}
	if ambiguity >= 2 {
		s[idx2] = ' '
	}
	if ambiguity >= 3 {
		s[idx3] = ' '
	}
	if ambiguity >= 4 {
		s[idx4] = ' '
	}
}

// DecodeLatitude parses the fixed-width "ddmm.mmN" (or with blanked
// ambiguity digits, read as zero) form back to degrees, and reports how
// many trailing digits were blanked.
func DecodeLatitude(s string) (dlat float64, ambiguity int, err error) {
	if len(s) != 8 {
		return 0, 0, ErrMalformed
	}
	degDigits, minDigits, ambiguity := unblankDigits(s[0:2], s[2:7])
	deg, err := strconv.Atoi(degDigits)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	min, err := strconv.ParseFloat(minDigits, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	dlat = float64(deg) + min/60
	switch s[7] {
	case 'S', 's':
		dlat = -dlat
	case 'N', 'n':
	default:
		return 0, 0, ErrMalformed
	}
	return dlat, ambiguity, nil
}

// DecodeLongitude parses the fixed-width "dddmm.mmE" form.
func DecodeLongitude(s string) (dlon float64, ambiguity int, err error) {
	if len(s) != 9 {
		return 0, 0, ErrMalformed
	}
	degDigits, minDigits, ambiguity := unblankDigits(s[0:3], s[3:8])
	deg, err := strconv.Atoi(degDigits)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	min, err := strconv.ParseFloat(minDigits, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	dlon = float64(deg) + min/60
	switch s[8] {
	case 'W', 'w':
		dlon = -dlon
	case 'E', 'e':
	default:
		return 0, 0, ErrMalformed
	}
	return dlon, ambiguity, nil
}

// unblankDigits counts trailing blanked digits across the concatenated
// degree+minute field (reading right to left over the minute field, then
// the degree field) and replaces every blank with '0' so the numeric
// parse succeeds.
func unblankDigits(deg, min string) (string, string, int) {
	combined := []byte(deg + strings.ReplaceAll(min, ".", ""))
	ambiguity := 0
	for i := len(combined) - 1; i >= 0 && combined[i] == ' '; i-- {
		ambiguity++
	}
	for i := range combined {
		if combined[i] == ' ' {
			combined[i] = '0'
		}
	}
	degOut := string(combined[:len(deg)])
	minDigitsOut := string(combined[len(deg):])
	return degOut, minDigitsOut[:2] + "." + minDigitsOut[2:], ambiguity
}

// EncodeCompressedLatitude renders dlat as the 4-character Base-91 form:
// y = round(380926 * (90 - dlat)).
func EncodeCompressedLatitude(dlat float64) string {
	if dlat < -90 {
		dlat = -90
	}
	if dlat > 90 {
		dlat = 90
	}
	y := uint32(math.Round(380926 * (90 - dlat)))
	return string(wire.EncodeBase91(y, 4))
}

// EncodeCompressedLongitude renders dlon as the 4-character Base-91 form:
// x = round(190463 * (180 + dlon)).
func EncodeCompressedLongitude(dlon float64) string {
	if dlon < -180 {
		dlon = -180
	}
	if dlon > 180 {
		dlon = 180
	}
	x := uint32(math.Round(190463 * (180 + dlon)))
	return string(wire.EncodeBase91(x, 4))
}

// DecodeCompressedLatitude reverses EncodeCompressedLatitude.
func DecodeCompressedLatitude(s string) (float64, error) {
	if len(s) != 4 {
		return 0, ErrMalformed
	}
	y := wire.DecodeBase91([]byte(s))
	return 90 - float64(y)/380926, nil
}

// DecodeCompressedLongitude reverses EncodeCompressedLongitude.
func DecodeCompressedLongitude(s string) (float64, error) {
	if len(s) != 4 {
		return 0, ErrMalformed
	}
	x := wire.DecodeBase91([]byte(s))
	return float64(x)/190463 - 180, nil
}

func (p PositionPacket) Encode() ([]byte, error) {
	var out []byte
	out = append(out, p.dti())

	if p.Timestamp != nil {
		ts, err := p.Timestamp.Encode()
		if err != nil {
			return nil, err
		}
		out = append(out, ts...)
	}

	if p.Compressed {
		out = append(out, p.Symbol.Table)
		out = append(out, EncodeCompressedLatitude(p.Lat)...)
		out = append(out, EncodeCompressedLongitude(p.Lon)...)
		out = append(out, p.Symbol.Code)
		cs, tByte := encodeCompressedCourseSpeed(p)
		out = append(out, cs...)
		out = append(out, tByte)
	} else {
		out = append(out, EncodeLatitude(p.Lat, p.Ambiguity)...)
		out = append(out, p.Symbol.Table)
		out = append(out, EncodeLongitude(p.Lon, p.Ambiguity)...)
		out = append(out, p.Symbol.Code)
		if p.HasCourseSpeed {
			out = append(out, []byte(fmt.Sprintf("%03d/%03d", p.Course, p.Speed))...)
		}
	}

	switch {
	case p.PHG != nil:
		out = append(out, encodePHGPrefix(p.PHG)...)
	case p.DF != nil:
		out = append(out, encodeDFSPrefix(p.DF)...)
	}
	out = append(out, p.Comment...)
	return out, nil
}

// encodeCompressedCourseSpeed renders the compressed position's optional
// course/speed extension: 'c' is course/4 (truncated), 's' is
// log(speed+1)/log(1.08) rounded, both Base-91 single digits, and the type
// byte is fixed to indicate "course/speed" rather than a range or radio range.
func encodeCompressedCourseSpeed(p PositionPacket) ([]byte, byte) {
	if !p.HasCourseSpeed {
		return []byte("  "), byte(0x20 + 0x00)
	}
	c := wire.EncodeBase91(uint32(p.Course/4), 1)
	speedVal := 0.0
	if p.Speed > 0 {
		speedVal = math.Log(float64(p.Speed)+1) / math.Log(1.08)
	}
	s := wire.EncodeBase91(uint32(math.Round(speedVal)), 1)
	return append(c, s...), '!'
}

func decodePositionPacket(info []byte) (Payload, error) {
	if len(info) < 1 {
		return nil, ErrMalformed
	}
	dti := info[0]
	body := info[1:]

	p := PositionPacket{Messaging: dti == dtiPositionNoTSMsg || dti == dtiPositionTSMsg}

	if dti == dtiPositionTS || dti == dtiPositionTSMsg {
		if len(body) < 7 {
			return nil, ErrMalformed
		}
		ts, err := DecodeTimestamp(body[:7])
		if err != nil {
			return nil, err
		}
		p.Timestamp = &ts
		body = body[7:]
	}

	if len(body) < 1 {
		return nil, ErrMalformed
	}

	if body[0] == '/' || body[0] == '\\' {
		return decodeCompressedPosition(p, body)
	}
	return decodeUncompressedPosition(p, body)
}

func decodeUncompressedPosition(p PositionPacket, body []byte) (Payload, error) {
	if len(body) < 19 {
		return nil, ErrMalformed
	}
	lat, amb, err := DecodeLatitude(string(body[0:8]))
	if err != nil {
		return nil, err
	}
	lon, _, err := DecodeLongitude(string(body[9:18]))
	if err != nil {
		return nil, err
	}
	p.Lat = lat
	p.Lon = lon
	p.Ambiguity = amb
	p.Symbol = Symbol{Table: body[8], Code: body[18]}

	rest := body[19:]
	if len(rest) >= 7 && rest[3] == '/' {
		course, cErr := strconv.Atoi(string(rest[0:3]))
		speed, sErr := strconv.Atoi(string(rest[4:7]))
		if cErr == nil && sErr == nil {
			if course == 0 && speed == 0 {
				// spec §4.10: "000/000" means the extension is absent,
				// not a course/speed of zero. Still consume the 7 bytes.
				rest = rest[7:]
			} else {
				p.Course = course
				p.Speed = speed
				p.HasCourseSpeed = true
				rest = rest[7:]
			}
		}
	}
	p.Comment = string(rest)
	applyDataExtensions(&p)
	return p, nil
}

func decodeCompressedPosition(p PositionPacket, body []byte) (Payload, error) {
	if len(body) < 13 {
		return nil, ErrMalformed
	}
	p.Compressed = true
	p.Symbol.Table = body[0]
	lat, err := DecodeCompressedLatitude(string(body[1:5]))
	if err != nil {
		return nil, err
	}
	lon, err := DecodeCompressedLongitude(string(body[5:9]))
	if err != nil {
		return nil, err
	}
	p.Lat = lat
	p.Lon = lon
	p.Symbol.Code = body[9]

	cs := body[10:12]
	tByte := body[12]
	if tByte == '!' && cs[0] != ' ' && cs[1] != ' ' {
		c := wire.DecodeBase91([]byte{cs[0]})
		s := wire.DecodeBase91([]byte{cs[1]})
		p.Course = int(c) * 4
		p.Speed = int(math.Round(math.Pow(1.08, float64(s)))) - 1
		p.HasCourseSpeed = true
	}

	p.Comment = string(body[13:])
	applyDataExtensions(&p)
	return p, nil
}

// applyDataExtensions strips a leading PHG or DFS data extension from
// p.Comment into the corresponding typed field, and records an "/A=NNNNNN"
// altitude token found anywhere in the comment without removing it.
func applyDataExtensions(p *PositionPacket) {
	if ext, rest, ok := parsePHGPrefix(p.Comment); ok {
		p.PHG = ext
		p.Comment = rest
	} else if ext, rest, ok := parseDFSPrefix(p.Comment); ok {
		p.DF = ext
		p.Comment = rest
	}
	if alt, ok := parseAltitude(p.Comment); ok {
		p.Altitude = alt
	}
}

// encodePHGPrefix renders a PHGExtension back to its 7-character "PHG####"
// comment prefix form.
func encodePHGPrefix(ext *PHGExtension) string {
	dir := ext.DirectivityIndex
	if dir < 0 || dir > 8 {
		dir = 0
	}
	return fmt.Sprintf("PHG%d%d%d%d", ext.PowerIndex, ext.HeightIndex, ext.GainIndex, dir)
}

// encodeDFSPrefix renders a DFExtension back to its 7-character "DFS####"
// comment prefix form.
func encodeDFSPrefix(ext *DFExtension) string {
	dir := ext.DirectivityIndex
	if dir < 0 || dir > 8 {
		dir = 0
	}
	return fmt.Sprintf("DFS%d%d%d%d", ext.StrengthIndex, ext.HeightIndex, ext.GainIndex, dir)
}
