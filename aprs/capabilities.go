package aprs

// Capabilities is a decoded station capabilities report: plain free
// text, with no fixed field structure (spec §4.11/§6.4).
//
// Grounded in aprs_station_capabilities (decode_aprs.go), which copies
// the remainder of the information field verbatim into the comment.
type Capabilities struct {
	Text string
}

func (Capabilities) DTI() byte   { return dtiCapabilities }
func (Capabilities) payloadTag() {}

func decodeCapabilities(info []byte) (Payload, error) {
	return Capabilities{Text: string(info[1:])}, nil
}

func (c Capabilities) Encode() ([]byte, error) {
	out := []byte{dtiCapabilities}
	out = append(out, c.Text...)
	return out, nil
}
