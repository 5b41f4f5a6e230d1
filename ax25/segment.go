package ax25

import "encoding/binary"

// SegmentPID is the byte that marks an information field as one fragment
// of a segmented payload (spec §4.8; ax25_pad.go's "same for segments"
// check against frame_data[info_offset] == 0x08). The teacher recognizes
// the byte but does not implement the segmenter itself; the split/
// reassembly logic below follows the AX.25 v2.2 segmentation octet
// layout directly.
const SegmentPID = 0x08

// MaxSegments is the largest series the 7-bit segment counter can address.
const MaxSegments = 128

// firstSegmentFlag marks the first segment in a series; every segment
// (first and subsequent) carries a 7-bit countdown of segments still to
// follow in the low bits of the byte after SegmentPID.
const firstSegmentFlag = 0x80

// firstSegmentOverhead is the header size of the first segment: the
// SegmentPID byte, the flag byte, and a 2-byte big-endian total length.
const firstSegmentOverhead = 4

// tailSegmentOverhead is the header size of every subsequent segment:
// the SegmentPID byte and the flag byte.
const tailSegmentOverhead = 2

// Segment splits payload into a series of at most MaxSegments fragments
// under an MTU of n1 bytes each. The first fragment's info field is
// SegmentPID, flag_byte, total-length (2 bytes, big-endian), then data;
// every later fragment is SegmentPID, flag_byte, then data, with
// flag_byte's low 7 bits counting down the number of segments still to
// follow (spec §3/§4.8).
func Segment(payload []byte, n1 int) ([][]byte, error) {
	firstCap := n1 - firstSegmentOverhead
	tailCap := n1 - tailSegmentOverhead
	if firstCap <= 0 || tailCap <= 0 {
		return nil, ErrInvalidInput
	}

	totalLen := len(payload)
	if totalLen <= firstCap {
		return [][]byte{buildFirstSegment(0, totalLen, payload)}, nil
	}

	remaining := payload[firstCap:]
	tailCount := (len(remaining) + tailCap - 1) / tailCap
	total := 1 + tailCount
	if total > MaxSegments {
		return nil, ErrSegmentCountExceeded
	}

	out := make([][]byte, 0, total)
	out = append(out, buildFirstSegment(tailCount, totalLen, payload[:firstCap]))

	seq := tailCount - 1
	for len(remaining) > 0 {
		chunkLen := tailCap
		if chunkLen > len(remaining) {
			chunkLen = len(remaining)
		}
		out = append(out, buildTailSegment(seq, remaining[:chunkLen]))
		remaining = remaining[chunkLen:]
		seq--
	}

	return out, nil
}

func buildFirstSegment(remaining, totalLen int, data []byte) []byte {
	out := make([]byte, 0, firstSegmentOverhead+len(data))
	out = append(out, SegmentPID, firstSegmentFlag|byte(remaining&0x7f))
	out = binary.BigEndian.AppendUint16(out, uint16(totalLen))
	out = append(out, data...)
	return out
}

func buildTailSegment(remaining int, data []byte) []byte {
	out := make([]byte, 0, tailSegmentOverhead+len(data))
	out = append(out, SegmentPID, byte(remaining&0x7f))
	out = append(out, data...)
	return out
}

// Reassemble joins a series of segment info fields, in arrival order,
// back into the original payload. It rejects a series missing its first
// fragment, containing more than one first fragment, whose countdown
// sequence has a gap or repeat, or whose reassembled length disagrees
// with the length the first fragment declared.
func Reassemble(segments [][]byte) ([]byte, error) {
	if len(segments) == 0 {
		return nil, ErrMalformedSegment
	}
	if len(segments) > MaxSegments {
		return nil, ErrSegmentCountExceeded
	}

	var firstSeen bool
	var payload []byte
	totalLen := -1
	expected := -1

	for idx, seg := range segments {
		if len(seg) < 2 || seg[0] != SegmentPID {
			return nil, ErrMalformedSegment
		}
		indicator := seg[1]
		isFirst := indicator&firstSegmentFlag != 0
		count := int(indicator & 0x7f)

		if isFirst {
			if firstSeen || idx != 0 {
				return nil, ErrMalformedSegment
			}
			if len(seg) < firstSegmentOverhead {
				return nil, ErrMalformedSegment
			}
			firstSeen = true
			totalLen = int(binary.BigEndian.Uint16(seg[2:4]))
			payload = append(payload, seg[firstSegmentOverhead:]...)
			expected = count - 1
			continue
		}

		if expected < 0 || count != expected {
			return nil, ErrMalformedSegment
		}
		payload = append(payload, seg[tailSegmentOverhead:]...)
		expected--
	}

	if !firstSeen {
		return nil, ErrMalformedSegment
	}
	if len(payload) != totalLen {
		return nil, ErrMalformedSegment
	}

	return payload, nil
}
