package aprs

import "bytes"

// ThirdParty is a decoded third-party traffic packet: an encapsulated
// AX.25-style header/info pair carried as text, exactly one colon
// separating the two per APRS 1.2 (spec §4.11/§6.4).
//
// Grounded in ax25_unwrap_third_party / aprs_data_extension's third
// party handling in decode_aprs.go, which recurse decode_aprs on the
// inner info field after stripping the outer header.
type ThirdParty struct {
	Header    string // "source>dest,path" text preceding the colon
	InnerInfo []byte // the encapsulated information field
}

func (ThirdParty) DTI() byte   { return dtiThirdParty }
func (ThirdParty) payloadTag() {}

func decodeThirdParty(info []byte) (Payload, error) {
	body := info[1:]
	header, inner, found := bytes.Cut(body, []byte{':'})
	if !found {
		return nil, ErrMalformed
	}
	return ThirdParty{Header: string(header), InnerInfo: append([]byte(nil), inner...)}, nil
}

func (t ThirdParty) Encode() ([]byte, error) {
	out := []byte{dtiThirdParty}
	out = append(out, t.Header...)
	out = append(out, ':')
	out = append(out, t.InnerInfo...)
	return out, nil
}

// UnwrapThirdParty decodes t's inner information field as an ordinary
// APRS payload, the way a digipeater or I-gate resolves a third-party
// packet before further routing it.
func UnwrapThirdParty(t ThirdParty) (Payload, error) {
	return Decode(t.InnerInfo)
}
