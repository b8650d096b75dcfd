package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/synesthete/internal/core/config"
	"github.com/hay-kot/synesthete/internal/core/styles"
	"github.com/hay-kot/synesthete/pkg/color"
	"github.com/hay-kot/synesthete/pkg/iojson"
)

const swatchWidth = 4

// colorResult is one line of command output.
type colorResult struct {
	Input string      `json:"input"`
	CSS   string      `json:"css"`
	Hex   string      `json:"hex"`
	RGBA  [4]float64  `json:"rgba"`
	Color color.Color `json:"-"`
}

func newResult(input string, c color.Color) colorResult {
	return colorResult{
		Input: input,
		CSS:   c.CSS(),
		Hex:   c.Hex(),
		RGBA:  c.Values(),
		Color: c,
	}
}

// outputOptions holds the --format and --swatch flags. Empty values defer to
// the config file.
type outputOptions struct {
	format string
	swatch string
}

func (o *outputOptions) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Usage:       "output format (css, hex, json); defaults to output.format from config",
			Destination: &o.format,
		},
		&cli.StringFlag{
			Name:        "swatch",
			Usage:       "render color swatches (auto, always, never); defaults to output.swatch from config",
			Destination: &o.swatch,
		},
	}
}

// resolve fills unset options from cfg and validates them.
func (o outputOptions) resolve(cfg *config.Config) (outputOptions, error) {
	if o.format == "" {
		o.format = cfg.Output.Format
	}
	if o.swatch == "" {
		o.swatch = cfg.Output.Swatch
	}

	switch o.format {
	case config.FormatCSS, config.FormatHex, config.FormatJSON:
	default:
		return o, fmt.Errorf("invalid --format %q: must be css, hex or json", o.format)
	}

	switch o.swatch {
	case config.SwatchAuto, config.SwatchAlways, config.SwatchNever:
	default:
		return o, fmt.Errorf("invalid --swatch %q: must be auto, always or never", o.swatch)
	}

	return o, nil
}

func (o outputOptions) showSwatch(w io.Writer) bool {
	switch o.swatch {
	case config.SwatchAlways:
		return true
	case config.SwatchNever:
		return false
	}

	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// write prints results in the selected format. JSON output is an array.
func (o outputOptions) write(w, ew io.Writer, results []colorResult) error {
	if o.format == config.FormatJSON {
		return iojson.WriteWith(w, ew, results)
	}

	swatch := o.showSwatch(w)
	for _, r := range results {
		value := r.CSS
		if o.format == config.FormatHex {
			value = r.Hex
		}

		line := value
		if r.Input != "" {
			line += "  " + styles.MutedStyle.Render(r.Input)
		}
		if swatch {
			line = styles.Swatch(r.Color, swatchWidth) + " " + line
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
