package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/ben1998pe/soap-country-info/internal/console"
	"github.com/ben1998pe/soap-country-info/internal/countryinfo"
)

type LookupCmd struct {
	flags *Flags
}

// NewLookupCmd creates a new lookup command
func NewLookupCmd(flags *Flags) *LookupCmd {
	return &LookupCmd{flags: flags}
}

// Register adds the lookup command to the application
func (cmd *LookupCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "lookup",
		Usage:       "Look up a single country by ISO code",
		UsageText:   "country-info lookup <CODE>",
		Description: "Fetches and prints the directory record for one 2-letter ISO code, then exits.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *LookupCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one country code, got %d arguments", c.Args().Len())
	}

	code := c.Args().First()

	record, err := cmd.flags.Service.CountryInfo(ctx, code)
	switch {
	case errors.Is(err, countryinfo.ErrInvalidCode):
		return fmt.Errorf("%q is not a valid 2-letter country code", code)
	case errors.Is(err, countryinfo.ErrNotFound):
		return fmt.Errorf("no country found for code %q", code)
	case err != nil:
		return fmt.Errorf("lookup %s: %w", code, err)
	}

	fmt.Fprintln(c.Root().Writer, console.RenderRecord(record))
	return nil
}
