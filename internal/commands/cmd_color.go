package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/synesthete/internal/core/logging"
)

type ColorCmd struct {
	flags  *Flags
	output outputOptions
}

// NewColorCmd creates a new color command
func NewColorCmd(flags *Flags) *ColorCmd {
	return &ColorCmd{flags: flags}
}

// Register adds the color command to the application
func (cmd *ColorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "color",
		Usage:     "Print the color of each argument",
		UsageText: "synesthete color [options] TEXT...",
		Description: `Maps each argument to a color. Single letters come from the letter table,
longer text is blended character by character from the last one to the first.

Letters and pins from the config file take precedence over the built-in table.`,
		Flags:  cmd.output.flags(),
		Action: cmd.run,
	})

	return app
}

func (cmd *ColorCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, c.Name)

	if c.Args().Len() == 0 {
		return fmt.Errorf("at least one TEXT argument is required")
	}

	opts, err := cmd.output.resolve(cmd.flags.Config)
	if err != nil {
		return err
	}

	results := make([]colorResult, 0, c.Args().Len())
	for _, text := range c.Args().Slice() {
		col := cmd.flags.Colorizer.Color(text)
		log.Debug().Ctx(ctx).Str("input", text).Str("css", col.CSS()).Msg("colored")
		results = append(results, newResult(text, col))
	}

	return opts.write(c.Root().Writer, c.Root().ErrWriter, results)
}
