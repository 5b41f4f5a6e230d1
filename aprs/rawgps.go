package aprs

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/kd9xb/axprs/internal/wire"
)

// RawGPS is a decoded NMEA GPRMC/GPGGA sentence carried as an APRS raw
// GPS data report (spec §4.11/§6.4).
//
// Grounded in aprs_raw_nmea (decode_aprs.go), which hands $GPRMC/$GNRMC
// to dwgpsnmea_gprmc for lat/lon/speed/course and $GPGGA/$GNGGA to
// dwgpsnmea_gpgga for lat/lon/altitude.
type RawGPS struct {
	Sentence   string // original sentence, e.g. "$GPRMC,..."
	Lat        float64
	Lon        float64
	HaveSpeed  bool
	SpeedKnots float64
	HaveCourse bool
	Course     float64
	HaveAlt    bool
	AltMeters  float64
}

func (RawGPS) DTI() byte   { return dtiRawGPSOrUltimeter }
func (RawGPS) payloadTag() {}

// Ultimeter is a decoded Peet Bros Ultimeter weather-station report,
// either the "$ULTW" hex-packed form or the older "!!" form (spec
// §4.11/§6.4).
//
// Grounded in aprs_ultimeter (decode_aprs.go): 16-bit hex fields packed
// back to back with no delimiter, in instrument units.
type Ultimeter struct {
	Legacy          bool // "!!" form (4 fields) rather than "$ULTW" (11-13 fields)
	WindPeakTenthKm int16
	WindDirRaw      int16 // 0-255, scaled by 360/256 for degrees
	OutTempTenthF   int16
	TotalRainHundredthIn int16
	BaroTenthMbar   int16
	BaroDeltaTenthMbar int16
	OutHumidTenthPct int16
	DateDayOfYear   int16
	TimeMinuteOfDay int16
	RainTodayHundredthIn int16
	WindAvgTenthKm  int16
}

func (Ultimeter) DTI() byte   { return dtiRawGPSOrUltimeter }
func (Ultimeter) payloadTag() {}

func decodeRawGPSOrUltimeter(info []byte) (Payload, error) {
	body := info[1:]
	switch {
	case bytes.HasPrefix(body, []byte("ULTW")):
		return decodeUltimeterHex(body[4:])
	case bytes.HasPrefix(body, []byte("!!")):
		return decodeUltimeterLegacy(body[2:])
	case bytes.HasPrefix(body, []byte("GPRMC,")), bytes.HasPrefix(body, []byte("GNRMC,")):
		return decodeGPRMC(body)
	case bytes.HasPrefix(body, []byte("GPGGA,")), bytes.HasPrefix(body, []byte("GNGGA,")):
		return decodeGPGGA(body)
	default:
		return nil, ErrMalformed
	}
}

func decodeGPRMC(body []byte) (Payload, error) {
	f := wire.NMEAFields(string(body))
	if len(f) < 9 || f[2] != "A" {
		return nil, ErrMalformed
	}
	lat, err := nmeaLat(f[3], f[4])
	if err != nil {
		return nil, err
	}
	lon, err := nmeaLon(f[5], f[6])
	if err != nil {
		return nil, err
	}
	g := RawGPS{Sentence: "$" + string(body), Lat: lat, Lon: lon}
	if v, err := strconv.ParseFloat(f[7], 64); err == nil {
		g.SpeedKnots, g.HaveSpeed = v, true
	}
	if v, err := strconv.ParseFloat(f[8], 64); err == nil {
		g.Course, g.HaveCourse = v, true
	}
	return g, nil
}

func decodeGPGGA(body []byte) (Payload, error) {
	f := wire.NMEAFields(string(body))
	if len(f) < 10 {
		return nil, ErrMalformed
	}
	lat, err := nmeaLat(f[2], f[3])
	if err != nil {
		return nil, err
	}
	lon, err := nmeaLon(f[4], f[5])
	if err != nil {
		return nil, err
	}
	g := RawGPS{Sentence: "$" + string(body), Lat: lat, Lon: lon}
	if v, err := strconv.ParseFloat(f[9], 64); err == nil {
		g.AltMeters, g.HaveAlt = v, true
	}
	return g, nil
}

// nmeaLat parses an NMEA "ddmm.mmmm" latitude plus hemisphere letter.
func nmeaLat(ddmm, hemi string) (float64, error) {
	if len(ddmm) < 4 {
		return 0, ErrMalformed
	}
	deg, err := strconv.Atoi(ddmm[0:2])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	min, err := strconv.ParseFloat(ddmm[2:], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	lat := float64(deg) + min/60
	if hemi == "S" {
		lat = -lat
	}
	return lat, nil
}

// nmeaLon parses an NMEA "dddmm.mmmm" longitude plus hemisphere letter.
func nmeaLon(dddmm, hemi string) (float64, error) {
	if len(dddmm) < 5 {
		return 0, ErrMalformed
	}
	deg, err := strconv.Atoi(dddmm[0:3])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	min, err := strconv.ParseFloat(dddmm[3:], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	lon := float64(deg) + min/60
	if hemi == "W" {
		lon = -lon
	}
	return lon, nil
}

func (g RawGPS) Encode() ([]byte, error) {
	if g.Sentence == "" {
		return nil, ErrOutOfRange
	}
	out := []byte{dtiRawGPSOrUltimeter}
	return append(out, strings.TrimPrefix(g.Sentence, "$")...), nil
}

func decodeUltimeterHex(hex []byte) (Payload, error) {
	fields, err := scanHex16(hex, 11, 13)
	if err != nil {
		return nil, err
	}
	u := Ultimeter{
		WindPeakTenthKm:      fields[0],
		WindDirRaw:           fields[1],
		OutTempTenthF:        fields[2],
		TotalRainHundredthIn: fields[3],
		BaroTenthMbar:        fields[4],
		BaroDeltaTenthMbar:   fields[5],
		OutHumidTenthPct:     fields[8],
		DateDayOfYear:        fields[9],
		TimeMinuteOfDay:      fields[10],
	}
	if len(fields) > 11 {
		u.RainTodayHundredthIn = fields[11]
	}
	if len(fields) > 12 {
		u.WindAvgTenthKm = fields[12]
	}
	return u, nil
}

func decodeUltimeterLegacy(hex []byte) (Payload, error) {
	fields, err := scanHex16(hex, 4, 4)
	if err != nil {
		return nil, err
	}
	return Ultimeter{
		Legacy:               true,
		WindPeakTenthKm:      fields[0],
		WindDirRaw:           fields[1],
		OutTempTenthF:        fields[2],
		TotalRainHundredthIn: fields[3],
	}, nil
}

func scanHex16(hex []byte, min, max int) ([]int16, error) {
	s := string(hex)
	var out []int16
	for len(s) >= 4 && len(out) < max {
		v, err := strconv.ParseUint(s[0:4], 16, 16)
		if err != nil {
			break
		}
		out = append(out, int16(v))
		s = s[4:]
	}
	if len(out) < min {
		return nil, ErrMalformed
	}
	return out, nil
}

func (u Ultimeter) Encode() ([]byte, error) {
	out := []byte{dtiRawGPSOrUltimeter}
	fields := []int16{u.WindPeakTenthKm, u.WindDirRaw, u.OutTempTenthF, u.TotalRainHundredthIn}
	if u.Legacy {
		out = append(out, '!', '!')
	} else {
		out = append(out, "ULTW"...)
		fields = append(fields, u.BaroTenthMbar, u.BaroDeltaTenthMbar, 0, 0,
			u.OutHumidTenthPct, u.DateDayOfYear, u.TimeMinuteOfDay)
		if u.RainTodayHundredthIn != 0 {
			fields = append(fields, u.RainTodayHundredthIn)
		}
		if u.WindAvgTenthKm != 0 {
			fields = append(fields, u.WindAvgTenthKm)
		}
	}
	for _, f := range fields {
		out = append(out, []byte(fmt.Sprintf("%04X", uint16(f)))...)
	}
	return out, nil
}
