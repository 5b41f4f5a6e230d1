package main

import (
	"encoding/hex"
	"io"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kd9xb/axprs/ax25"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	defer func() { os.Stdout = old }()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func testHeader(t *testing.T) ax25.Header {
	t.Helper()
	dest, err := ax25.ParseAddress("APRS")
	require.NoError(t, err)
	src, err := ax25.ParseAddress("KD9XB-9")
	require.NoError(t, err)
	return ax25.Header{Destination: dest, Source: src}
}

func TestDecodeLineReportsNonHex(t *testing.T) {
	logger := log.New(io.Discard)
	out := captureStdout(t, func() {
		decodeLine(logger, "not hex at all!!", ax25.ModuloAuto, "%Y-%m-%d", nil)
	})
	assert.Empty(t, out)
}

func TestDecodeLineReportsNonUIFrame(t *testing.T) {
	logger := log.New(io.Discard)
	f := ax25.SupervisoryFrame{Header: testHeader(t), Modulo: ax25.Modulo8, Kind: ax25.RR, NR: 1}
	wire, err := f.Encode()
	require.NoError(t, err)

	out := captureStdout(t, func() {
		decodeLine(logger, hex.EncodeToString(wire), ax25.Modulo8, "%Y-%m-%d", nil)
	})
	assert.Contains(t, out, "not a UI frame")
}

func TestDecodeLineDecodesAPRSPayload(t *testing.T) {
	logger := log.New(io.Discard)
	f := ax25.UnnumberedFrame{
		Header: testHeader(t),
		Type:   ax25.UI,
		PID:    0xF0,
		Info:   []byte("!4237.14NS07120.83W#Chelmsford, MA"),
	}
	wire, err := f.Encode()
	require.NoError(t, err)

	out := captureStdout(t, func() {
		decodeLine(logger, hex.EncodeToString(wire), ax25.Modulo8, "%Y-%m-%d", nil)
	})
	assert.Contains(t, out, "KD9XB-9")
	assert.Contains(t, out, "PositionPacket")
}
