// Command barcodegen renders a barcode or QR Code symbol to a text matrix
// dump on standard output.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	barcode "github.com/craig-b/ZXing.Encoders"

	// Register all format writers.
	_ "github.com/craig-b/ZXing.Encoders/oned"
	_ "github.com/craig-b/ZXing.Encoders/qrcode"
)

var g = struct {
	format    string
	ecLevel   string
	margin    int
	width     int
	height    int
	charset   string
	gs1       bool
	noECI     bool
	forceC    bool
	chars     bool
}{
	format:  "qrcode",
	ecLevel: "",
	margin:  -1,
	width:   0,
	height:  0,
}

func parseFlags() []string {
	getopt.FlagLong(&g.format, "format", 'f',
		"symbology: qrcode, code128, code39, code93, codabar, itf, "+
			"msi, plessey, upca, upce, ean8, ean13", "name")
	getopt.FlagLong(&g.ecLevel, "ec-level", 'e',
		"QR error correction level: L, M, Q or H", "level")
	getopt.FlagLong(&g.margin, "margin", 'm', "quiet zone size in modules")
	getopt.FlagLong(&g.width, "width", 'w', "minimum output width")
	getopt.FlagLong(&g.height, "height", 'h', "minimum output height")
	getopt.FlagLong(&g.charset, "charset", 'c',
		"character set hint for byte-mode segments (e.g. Shift_JIS)", "name")
	getopt.FlagLong(&g.gs1, "gs1", 'g', "treat contents as GS1-formatted data")
	getopt.FlagLong(&g.noECI, "no-eci", 0, "suppress the ECI header")
	getopt.FlagLong(&g.forceC, "force-code-set-b", 0,
		"CODE 128: force Code Set B")
	getopt.FlagLong(&g.chars, "chars", 0,
		"dump using '#'/'.' instead of '1'/'0'")
	getopt.Parse()
	return getopt.Args()
}

func main() {
	log.SetFlags(0)
	args := parseFlags()

	var contents string
	if len(args) != 0 {
		contents = strings.Join(args, " ")
	} else {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalln(err)
		}
		contents = strings.TrimSuffix(string(b), "\n")
	}

	format, err := lookupFormat(g.format)
	if err != nil {
		log.Fatalln(err)
	}

	opts := &barcode.EncodeOptions{
		CharacterSet: g.charset,
		DisableECI:   g.noECI,
		GS1Format:    g.gs1,
	}
	if g.ecLevel != "" {
		opts.ErrorCorrection = strings.ToUpper(g.ecLevel)
	}
	if g.margin >= 0 {
		opts.Margin = &g.margin
	}
	if g.forceC {
		opts.ForceCodeSet = "B"
	}

	matrix, err := barcode.Encode(contents, format, g.width, g.height, opts)
	if err != nil {
		log.Fatalln(err)
	}

	out := os.Stdout
	if g.chars {
		fmt.Fprintln(out, matrix.StringWithChars("#", "."))
	} else if isatty.IsTerminal(out.Fd()) {
		fmt.Fprintln(out, matrix.StringWithChars("#", " "))
	} else {
		fmt.Fprintln(out, matrix.String())
	}
}

func lookupFormat(name string) (barcode.Format, error) {
	switch strings.ToLower(name) {
	case "qrcode", "qr":
		return barcode.FormatQRCode, nil
	case "code128":
		return barcode.FormatCode128, nil
	case "code39":
		return barcode.FormatCode39, nil
	case "code93":
		return barcode.FormatCode93, nil
	case "codabar":
		return barcode.FormatCodabar, nil
	case "itf":
		return barcode.FormatITF, nil
	case "msi":
		return barcode.FormatMSI, nil
	case "plessey":
		return barcode.FormatPlessey, nil
	case "upca":
		return barcode.FormatUPCA, nil
	case "upce":
		return barcode.FormatUPCE, nil
	case "ean8":
		return barcode.FormatEAN8, nil
	case "ean13":
		return barcode.FormatEAN13, nil
	default:
		return 0, fmt.Errorf("barcodegen: unknown format %q", name)
	}
}
