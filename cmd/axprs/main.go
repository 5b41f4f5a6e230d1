// Command axprs is a small decode utility for AX.25 frames and
// APRS payloads: hex bytes in, a human-readable description out, the
// same way cmd/decode_aprs works in the teacher project but built on
// this package's public codec rather than a cgo decode_aprs_t.
//
// This command is explicitly out of scope for the codec engine itself
// (spec.md §1); it exists only as a thin external collaborator
// demonstrating the library end to end.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"

	"github.com/kd9xb/axprs/aprs"
	"github.com/kd9xb/axprs/ax25"
)

func main() {
	var (
		modulo       = pflag.StringP("modulo", "m", "auto", "Sequence numbering: auto, 8, or 128")
		timeFormat   = pflag.StringP("time-format", "T", "%Y-%m-%d %H:%M:%S", "strftime format for the printed decode timestamp")
		deviceIDPath = pflag.StringP("deviceid", "d", "", "Path to a tocalls.yaml device-identifier table")
		help         = pflag.BoolP("help", "h", false, "Display help text")
	)

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - decode AX.25/APRS frames from hex bytes on stdin.\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		return
	}

	logger := log.New(os.Stderr)

	var deviceIDs *aprs.DeviceIdentifier
	if *deviceIDPath != "" {
		data, err := os.ReadFile(*deviceIDPath)
		if err != nil {
			logger.Error("reading device identifier table", "path", *deviceIDPath, "err", err)
		} else if deviceIDs, err = aprs.LoadDeviceIdentifier(data); err != nil {
			logger.Error("parsing device identifier table", "path", *deviceIDPath, "err", err)
		}
	}

	var mod ax25.Modulo
	switch *modulo {
	case "8":
		mod = ax25.Modulo8
	case "128":
		mod = ax25.Modulo128
	default:
		mod = ax25.ModuloAuto
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		logger.Fatal("reading stdin", "err", err)
	}

	for _, line := range strings.Split(strings.TrimSpace(string(input)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		decodeLine(logger, line, mod, *timeFormat, deviceIDs)
	}
}

func decodeLine(logger *log.Logger, line string, mod ax25.Modulo, timeFormat string, deviceIDs *aprs.DeviceIdentifier) {
	raw, err := hex.DecodeString(strings.ReplaceAll(line, " ", ""))
	if err != nil {
		logger.Error("not valid hex", "line", line, "err", err)
		return
	}

	frame, err := ax25.DecodeFrame(raw, mod)
	if err != nil {
		logger.Error("decoding frame", "err", err)
		return
	}

	h := frame.FrameHeader()
	fmt.Printf("%s>%s", h.Source.String(), h.Destination.String())
	for _, r := range h.Repeaters {
		fmt.Printf(",%s", r.String())
	}

	ui, ok := frame.(ax25.UnnumberedFrame)
	if !ok || ui.Type != ax25.UI {
		fmt.Println(":  (not a UI frame, no APRS payload)")
		return
	}
	fmt.Println(":")

	payload, err := aprs.Decode(ui.Info)
	if err != nil {
		logger.Error("decoding APRS payload", "err", err)
		return
	}

	formattedTime, _ := strftime.Format(timeFormat, time.Now())
	fmt.Printf("  [%s] %#v\n", formattedTime, payload)

	if deviceIDs != nil {
		if device := deviceIDs.DecodeDest(h.Destination.Callsign); device != "" {
			fmt.Printf("  device: %s\n", device)
		}
	}
}
