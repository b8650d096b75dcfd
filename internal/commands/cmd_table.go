package commands

import (
	"context"
	"maps"
	"slices"

	"github.com/urfave/cli/v3"
)

type TableCmd struct {
	flags  *Flags
	output outputOptions
}

// NewTableCmd creates a new table command
func NewTableCmd(flags *Flags) *TableCmd {
	return &TableCmd{flags: flags}
}

// Register adds the table command to the application
func (cmd *TableCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "table",
		Usage:       "Print the character table",
		UsageText:   "synesthete table [options]",
		Description: "Prints every character with a fixed color, including letter overrides from the config file.",
		Flags:       cmd.output.flags(),
		Action:      cmd.run,
	})

	return app
}

func (cmd *TableCmd) run(ctx context.Context, c *cli.Command) error {
	opts, err := cmd.output.resolve(cmd.flags.Config)
	if err != nil {
		return err
	}

	table := cmd.flags.Colorizer.Table()
	keys := slices.Sorted(maps.Keys(table))

	results := make([]colorResult, 0, len(keys))
	for _, r := range keys {
		results = append(results, newResult(string(r), table[r]))
	}

	return opts.write(c.Root().Writer, c.Root().ErrWriter, results)
}
