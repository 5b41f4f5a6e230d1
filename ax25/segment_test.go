package ax25

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSegmentReassembleRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n1 := rapid.IntRange(5, 64).Draw(t, "n1")
		payload := []byte(rapid.StringN(0, 2000, -1).Draw(t, "payload"))

		segs, err := Segment(payload, n1)
		if err != nil {
			require.ErrorIs(t, err, ErrSegmentCountExceeded)
			return
		}

		gotPayload, err := Reassemble(segs)
		require.NoError(t, err)
		assert.Equal(t, payload, gotPayload)
	})
}

func TestSegmentSingleFragmentNeedsNoSplitting(t *testing.T) {
	segs, err := Segment([]byte("short"), 64)
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, byte(0x80), segs[0][1])
}

func TestReassembleRejectsMissingFirst(t *testing.T) {
	_, err := Reassemble([][]byte{{SegmentPID, 0x00, 'a'}})
	assert.ErrorIs(t, err, ErrMalformedSegment)
}

func TestReassembleRejectsGapInSequence(t *testing.T) {
	segs, err := Segment([]byte("0123456789abcdefghij"), 6)
	require.NoError(t, err)
	require.Greater(t, len(segs), 2)

	broken := append(append([][]byte{}, segs[0]), segs[2:]...)
	_, err = Reassemble(broken)
	assert.ErrorIs(t, err, ErrMalformedSegment)
}

// Spec §8 scenario 6: a 10,000-byte payload at N1=256 splits into 40
// segments with under 1% overhead, and the first segment begins with the
// first-segment flag plus a countdown of 39 following segments (0xA7),
// then the 2-byte big-endian total length 0x2710 (10000).
func TestSegmentScenario(t *testing.T) {
	payload := make([]byte, 10000)
	for i := range payload {
		payload[i] = byte(i % 256)
	}

	segs, err := Segment(payload, 256)
	require.NoError(t, err)
	assert.Len(t, segs, 40)
	assert.Equal(t, []byte{0x08, 0xA7, 0x27, 0x10}, segs[0][:4])

	total := 0
	for _, s := range segs {
		total += len(s)
	}
	overhead := float64(total-len(payload)) / float64(len(payload))
	assert.Less(t, overhead, 0.01)

	got, err := Reassemble(segs)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}
