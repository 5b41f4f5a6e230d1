package aprs

// TestPacket is an arbitrary-content APRS test packet (DTI ',', spec
// §4.11/§6.4): no internal structure is imposed on the payload.
type TestPacket struct {
	Data []byte
}

func (TestPacket) DTI() byte   { return dtiTest }
func (TestPacket) payloadTag() {}

func decodeTestPacket(info []byte) (Payload, error) {
	return TestPacket{Data: append([]byte(nil), info[1:]...)}, nil
}

func (t TestPacket) Encode() ([]byte, error) {
	out := []byte{dtiTest}
	return append(out, t.Data...), nil
}
