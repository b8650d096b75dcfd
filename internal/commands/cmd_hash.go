package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/synesthete/internal/core/config"
	"github.com/hay-kot/synesthete/internal/core/synesthesia"
	"github.com/hay-kot/synesthete/pkg/iojson"
)

type HashCmd struct {
	flags  *Flags
	output outputOptions
}

// NewHashCmd creates a new hash command
func NewHashCmd(flags *Flags) *HashCmd {
	return &HashCmd{flags: flags}
}

// Register adds the hash command to the application
func (cmd *HashCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "hash",
		Usage:     "Print the hash-derived fallback color of each argument",
		UsageText: "synesthete hash [options] VALUE...",
		Description: `Derives red, green and blue from the first three bytes of the SHA-256 digest
of each quoted argument. Colors that would be dark on every channel are
inverted, so the result is always reasonably light.`,
		Flags:  cmd.output.flags(),
		Action: cmd.run,
	})

	return app
}

type hashResult struct {
	Input string  `json:"input"`
	R     float64 `json:"r"`
	G     float64 `json:"g"`
	B     float64 `json:"b"`
	CSS   string  `json:"css"`
}

func (cmd *HashCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() == 0 {
		return fmt.Errorf("at least one VALUE argument is required")
	}

	opts, err := cmd.output.resolve(cmd.flags.Config)
	if err != nil {
		return err
	}

	w := c.Root().Writer

	if opts.format == config.FormatJSON {
		out := make([]hashResult, 0, c.Args().Len())
		for _, v := range c.Args().Slice() {
			r, g, b := synesthesia.Colorize(v)
			out = append(out, hashResult{Input: v, R: r, G: g, B: b, CSS: synesthesia.HashColor(v).CSS()})
		}
		return iojson.WriteWith(w, c.Root().ErrWriter, out)
	}

	for _, v := range c.Args().Slice() {
		r, g, b := synesthesia.Colorize(v)
		if _, err := fmt.Fprintf(w, "%.4f %.4f %.4f\t", r, g, b); err != nil {
			return err
		}
		if err := opts.write(w, c.Root().ErrWriter, []colorResult{newResult(v, synesthesia.HashColor(v))}); err != nil {
			return err
		}
	}

	return nil
}
