package ax25

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func testHeader() Header {
	dest, _ := ParseAddress("APRS")
	src, _ := ParseAddress("KD9XB-9")
	return Header{Destination: dest, Source: src}
}

func TestInformationFrameRoundTripModulo8(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := InformationFrame{
			Header: testHeader(),
			Modulo: Modulo8,
			NS:     rapid.IntRange(0, 7).Draw(t, "ns"),
			NR:     rapid.IntRange(0, 7).Draw(t, "nr"),
			PF:     rapid.Bool().Draw(t, "pf"),
			PID:    0xF0,
			Info:   []byte(rapid.StringN(0, 20, -1).Draw(t, "info")),
		}
		wire, err := f.Encode()
		require.NoError(t, err)

		decoded, err := DecodeFrame(wire, Modulo8)
		require.NoError(t, err)
		i, ok := decoded.(InformationFrame)
		require.True(t, ok)
		assert.Equal(t, f.NS, i.NS)
		assert.Equal(t, f.NR, i.NR)
		assert.Equal(t, f.PF, i.PF)
		assert.Equal(t, f.Info, i.Info)
	})
}

func TestInformationFrameRoundTripModulo128(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := InformationFrame{
			Header: testHeader(),
			Modulo: Modulo128,
			NS:     rapid.IntRange(0, 127).Draw(t, "ns"),
			NR:     rapid.IntRange(0, 127).Draw(t, "nr"),
			PF:     rapid.Bool().Draw(t, "pf"),
			PID:    0xF0,
		}
		wire, err := f.Encode()
		require.NoError(t, err)

		decoded, err := DecodeFrame(wire, Modulo128)
		require.NoError(t, err)
		i, ok := decoded.(InformationFrame)
		require.True(t, ok)
		assert.Equal(t, f.NS, i.NS)
		assert.Equal(t, f.NR, i.NR)
	})
}

func TestSupervisoryFrameRoundTrip(t *testing.T) {
	for _, kind := range []SupervisoryKind{RR, RNR, REJ, SREJ} {
		f := SupervisoryFrame{Header: testHeader(), Modulo: Modulo8, Kind: kind, NR: 3, PF: true}
		wire, err := f.Encode()
		require.NoError(t, err)

		decoded, err := DecodeFrame(wire, Modulo8)
		require.NoError(t, err)
		s, ok := decoded.(SupervisoryFrame)
		require.True(t, ok)
		assert.Equal(t, kind, s.Kind)
		assert.Equal(t, 3, s.NR)
		assert.True(t, s.PF)
	}
}

func TestUnnumberedFrameRoundTripUI(t *testing.T) {
	f := UnnumberedFrame{
		Header: testHeader(),
		Type:   UI,
		PID:    0xF0,
		Info:   []byte("CQ CQ CQ"),
	}
	wire, err := f.Encode()
	require.NoError(t, err)

	decoded, err := DecodeFrame(wire, ModuloAuto)
	require.NoError(t, err)
	u, ok := decoded.(UnnumberedFrame)
	require.True(t, ok)
	assert.Equal(t, UI, u.Type)
	assert.Equal(t, byte(0xF0), u.PID)
	assert.Equal(t, []byte("CQ CQ CQ"), u.Info)
}

func TestUnnumberedFrameRoundTripSABM(t *testing.T) {
	f := UnnumberedFrame{Header: testHeader(), Type: SABM, PF: true}
	wire, err := f.Encode()
	require.NoError(t, err)

	decoded, err := DecodeFrame(wire, ModuloAuto)
	require.NoError(t, err)
	u, ok := decoded.(UnnumberedFrame)
	require.True(t, ok)
	assert.Equal(t, SABM, u.Type)
	assert.True(t, u.PF)
}

func TestUnnumberedFrameRoundTripFRMR(t *testing.T) {
	f := UnnumberedFrame{
		Header: testHeader(),
		Type:   FRMR,
		Modulo: Modulo8,
		FRMR: &FRMRDiagnostic{
			RejectedControl: 0x53,
			VR:              2,
			VS:              5,
			FrmrCr:          true,
			W:               true,
			Z:               true,
		},
	}
	wire, err := f.Encode()
	require.NoError(t, err)

	decoded, err := DecodeFrame(wire, ModuloAuto)
	require.NoError(t, err)
	u, ok := decoded.(UnnumberedFrame)
	require.True(t, ok)
	require.NotNil(t, u.FRMR)
	assert.Equal(t, 0x53, u.FRMR.RejectedControl)
	assert.Equal(t, 2, u.FRMR.VR)
	assert.Equal(t, 5, u.FRMR.VS)
	assert.True(t, u.FRMR.W)
	assert.True(t, u.FRMR.Z)
	assert.False(t, u.FRMR.X)
	assert.True(t, u.FRMR.FrmrCr)
}

func TestDecodeFrameUnrecognizedControlFails(t *testing.T) {
	h := testHeader()
	hb, err := h.Encode()
	require.NoError(t, err)
	buf := append(hb, 0xFF)

	_, err = DecodeFrame(buf, Modulo8)
	assert.Error(t, err)
}
