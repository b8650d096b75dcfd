package commands

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/synesthete/internal/tui/preview"
)

type PreviewCmd struct {
	flags *Flags
}

// NewPreviewCmd creates a new preview command
func NewPreviewCmd(flags *Flags) *PreviewCmd {
	return &PreviewCmd{flags: flags}
}

// Register adds the preview command to the application
func (cmd *PreviewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "preview",
		Usage:       "Interactively color text as you type",
		UsageText:   "synesthete preview [TEXT]",
		Description: "Opens a full-screen preview that recolors the input on every keystroke.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *PreviewCmd) run(ctx context.Context, c *cli.Command) error {
	m := preview.New(cmd.flags.Colorizer, strings.Join(c.Args().Slice(), " "))

	p := tea.NewProgram(m, tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run preview: %w", err)
	}

	if final, ok := finalModel.(preview.Model); ok && final.Value() != "" {
		_, err = fmt.Fprintln(c.Root().Writer, final.Color().CSS())
	}

	return err
}
