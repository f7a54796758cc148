package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"
	"unicode"

	"github.com/gemalto/flume"
	"github.com/gemalto/klv-go"
	"github.com/gemalto/klv-go/internal/klvutil"
	_ "github.com/gemalto/klv-go/misb0102"
	_ "github.com/gemalto/klv-go/misb0601"
)

const FormatHex = "hex"
const FormatBin = "bin"

var log = flume.New("ppklv")

const usage = `ppklv - klv pretty printer

Usage:  ppklv [options] [input]

Pretty prints MISB KLV packets.  Reads packets as hex or raw binary, and
prints them as text, json, raw hex, or pretty printed hex.

The input argument should be a hex string.  If not present, input will
be read from the file named by -f, or from standard in.

When reading hex input, any non-hex characters, such as whitespace or
embedded formatting characters, will be ignored.  The 'prettyhex'
output format embeds such characters, but because they are ignored,
'prettyhex' output is still valid 'hex' input.

Bytes between packets are skipped.  A packet which fails to decode is
reported on standard error, and printing continues with the next packet.
A packet with a bad checksum is printed after a warning.

Examples:

    ppklv 060e2b34020b01010e01030101000000 08 050271c2 010214c7
    ppklv -i bin -f capture.klv -o json

Output (in 'text' format):

    ST 0601 (060E2B34.020B0101.0E010301.01000000):
      PlatformHeadingAngle (0x05/2): 159.97436484321355

prettyhex format:

    060e2b34020b01010e01030101000000 | 08
      05 | 02 | 71c2
      01 | 02 | 14c7
`

func main() {

	flag.Usage = func() {
		_, _ = fmt.Fprint(flag.CommandLine.Output(), usage+"\n")
		flag.PrintDefaults()
	}

	var inFormat string
	var outFormat string
	var inFile string
	var verbose bool
	flag.StringVar(&inFormat, "i", "", "input format: hex|bin, defaults to auto detect")
	flag.StringVar(&outFormat, "o", "", "output format: text|hex|prettyhex|json, defaults to text")
	flag.StringVar(&inFile, "f", "", "input file name, defaults to stdin")
	flag.BoolVar(&verbose, "v", false, "log decoding details to standard error")

	flag.Parse()

	if verbose {
		flume.Configure(flume.Config{
			Development:  true,
			DefaultLevel: flume.DebugLevel,
		})
	}

	buf := bytes.NewBuffer(nil)

	switch {
	case inFile != "":
		file, err := ioutil.ReadFile(inFile)
		if err != nil {
			fail("error reading input file", err)
		}
		buf = bytes.NewBuffer(file)
	case flag.NArg() > 0:
		buf.WriteString(strings.Join(flag.Args(), " "))
	default:
		reader := bufio.NewReader(os.Stdin)
		if _, err := buf.ReadFrom(reader); err != nil {
			fail("error reading standard input", err)
		}
	}

	if inFormat == "" {
		inFormat = detectFormat(buf.Bytes())
	}

	outFormat = strings.ToLower(outFormat)
	if outFormat == "" {
		outFormat = "text"
	}

	var raw []byte
	switch strings.ToLower(inFormat) {
	case FormatHex:
		b, err := klvutil.ParseHex(buf.String())
		if err != nil {
			fail("error parsing hex", err)
		}
		raw = b
	case FormatBin:
		raw = buf.Bytes()
	default:
		fail("invalid input format: "+inFormat, nil)
	}

	var count int
	s := klv.NewScanner(raw)
	for s.Next() {
		err := s.Err()
		switch {
		case err == nil:
		case klv.IsChecksumError(err):
			_, _ = fmt.Fprintf(os.Stderr, "warning: packet at offset %d: %v\n", s.Offset(), err)
		default:
			_, _ = fmt.Fprintf(os.Stderr, "error: packet at offset %d: %v\n", s.Offset(), err)
			log.Debug("decode error", "offset", s.Offset(), "details", klv.Details(err))
			continue
		}
		printPacket(outFormat, s.Packet(), count)
		count++
	}
	if count == 0 {
		fail("no packets found", nil)
	}
	fmt.Println()
}

// detectFormat treats input made only of hex digits, whitespace and
// punctuation as hex.
func detectFormat(b []byte) string {
	for _, r := range string(b) {
		if r > unicode.MaxASCII || !(unicode.IsPrint(r) || unicode.IsSpace(r)) {
			return FormatBin
		}
	}
	return FormatHex
}

func printPacket(outFormat string, p klv.Packet, count int) {
	if count > 0 {
		fmt.Println("")
	}
	switch outFormat {
	case "text":
		if err := klv.PrintPacket(os.Stdout, "", "  ", p); err != nil {
			fail("error printing", err)
		}
	case "json":
		s, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			fail("error printing JSON", err)
		}
		fmt.Print(string(s))
	case "hex", "prettyhex":
		b, err := klv.EncodePacket(p)
		if err != nil {
			fail("error encoding packet", err)
		}
		if outFormat == "hex" {
			fmt.Print(hex.EncodeToString(b))
		} else if err := klv.PrintPacketPrettyHex(os.Stdout, "", "  ", b); err != nil {
			fail("error printing", err)
		}
	default:
		fail("invalid output format: "+outFormat, nil)
	}
}

func fail(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, msg+":", err)
	} else {
		_, _ = fmt.Fprintln(os.Stderr, msg)
	}
	os.Exit(1)
}
