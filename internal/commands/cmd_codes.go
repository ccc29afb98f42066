package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/ben1998pe/soap-country-info/internal/console"
)

type CodesCmd struct {
	flags *Flags
}

// NewCodesCmd creates a new codes command
func NewCodesCmd(flags *Flags) *CodesCmd {
	return &CodesCmd{flags: flags}
}

// Register adds the codes command to the application
func (cmd *CodesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "codes",
		Usage:       "List all ISO country codes",
		UsageText:   "country-info codes",
		Description: "Fetches the full ISO code catalog from the directory service and prints it.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *CodesCmd) run(ctx context.Context, c *cli.Command) error {
	codes, err := cmd.flags.Service.CountryCodes(ctx)
	if err != nil {
		return fmt.Errorf("list country codes: %w", err)
	}

	fmt.Fprintln(c.Root().Writer, console.RenderCodes(codes))
	return nil
}
