package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/synesthete/internal/core/logging"
	"github.com/hay-kot/synesthete/pkg/color"
	"github.com/hay-kot/synesthete/pkg/iojson"
)

type MixCmd struct {
	flags  *Flags
	output outputOptions
	reader iojson.FileReader[[]string]

	brighten float64
}

// NewMixCmd creates a new mix command
func NewMixCmd(flags *Flags) *MixCmd {
	return &MixCmd{flags: flags}
}

// Register adds the mix command to the application
func (cmd *MixCmd) Register(app *cli.Command) *cli.Command {
	flags := append(cmd.output.flags(),
		cmd.reader.Flag(),
		&cli.FloatFlag{
			Name:        "brighten",
			Usage:       "multiply red, green and blue of the result",
			Value:       1,
			Destination: &cmd.brighten,
		},
	)

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "mix",
		Usage:     "Average colors together",
		UsageText: "synesthete mix [options] COLOR...",
		Description: `Averages the given colors with equal weight on every channel, alpha included.

Colors may be written as #rgb, #rrggbb, #rrggbbaa, rgb(R, G, B) or
rgba(R, G, B, A). With no arguments a JSON array of colors is read from
--file or stdin.`,
		Flags:  flags,
		Action: cmd.run,
	})

	return app
}

func (cmd *MixCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, c.Name)

	opts, err := cmd.output.resolve(cmd.flags.Config)
	if err != nil {
		return err
	}

	inputs := c.Args().Slice()
	if len(inputs) == 0 {
		inputs, err = cmd.reader.Read()
		if err != nil {
			return fmt.Errorf("read colors: %w", err)
		}
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no colors to mix")
	}

	colors := make([]color.Color, 0, len(inputs))
	for _, in := range inputs {
		parsed, err := color.Parse(in)
		if err != nil {
			return fmt.Errorf("parse color: %w", err)
		}
		colors = append(colors, parsed)
	}

	mixed := colors[0].Mix(colors[1:]...)
	if cmd.brighten != 1 {
		mixed = mixed.Brighten(cmd.brighten)
	}

	log.Debug().Ctx(ctx).Int("count", len(colors)).Str("css", mixed.CSS()).Msg("mixed")

	return opts.write(c.Root().Writer, c.Root().ErrWriter, []colorResult{newResult(strings.Join(inputs, " + "), mixed)})
}
