package commands

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/ben1998pe/soap-country-info/internal/console"
	"github.com/ben1998pe/soap-country-info/internal/core/history"
)

// ConsoleCmd runs the interactive lookup console. It is the default action
// when no subcommand is given, so it is not registered as a subcommand.
type ConsoleCmd struct {
	flags *Flags
}

// NewConsoleCmd creates a new console command
func NewConsoleCmd(flags *Flags) *ConsoleCmd {
	return &ConsoleCmd{flags: flags}
}

// Run starts the interactive console and blocks until the session ends.
func (cmd *ConsoleCmd) Run(ctx context.Context, c *cli.Command) error {
	con := console.New(console.Options{
		Service:    cmd.flags.Service,
		History:    history.NewStore(cmd.flags.Config.HistorySize),
		ExportPath: cmd.flags.Config.ExportFile,
		In:         os.Stdin,
		Out:        c.Root().Writer,
		Logger:     log.With().Str("component", "console").Logger(),
	})

	return con.Run(ctx)
}
