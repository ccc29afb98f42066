package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/ben1998pe/soap-country-info/internal/commands"
	"github.com/ben1998pe/soap-country-info/internal/core/config"
	"github.com/ben1998pe/soap-country-info/internal/countryinfo"
	"github.com/ben1998pe/soap-country-info/internal/printer"
	"github.com/ben1998pe/soap-country-info/pkg/deferlog"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	if err := setupLogger("info", "", nil); err != nil {
		panic(err)
	}

	var (
		p     = printer.New(os.Stderr)
		flags = &commands.Flags{}
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = printer.NewContext(ctx, p)

	var deferredLogs *deferlog.Writer

	app := &cli.Command{
		Name:      "country-info",
		Usage:     "Look up country metadata from the public SOAP directory",
		UsageText: "country-info [global options] [command]",
		Description: `Interactive client for the CountryInfoService SOAP web service.

Run 'country-info' with no arguments to open the interactive console, where
you can look up countries by ISO code, list all codes, review this session's
lookup history, and export it to a text file.

Run 'country-info lookup PE' or 'country-info codes' for one-shot queries.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("COUNTRYINFO_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (optional)",
				Sources:     cli.EnvVars("COUNTRYINFO_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("COUNTRYINFO_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// No subcommand means the interactive console owns the terminal,
			// so buffer logs and show them after the session ends.
			interactive := len(c.Args().Slice()) == 0

			var deferred io.Writer
			if interactive {
				deferredLogs = &deferlog.Writer{}
				deferred = deferredLogs
			}

			if err := setupLogger(flags.LogLevel, flags.LogFile, deferred); err != nil {
				return ctx, err
			}

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			flags.Service = countryinfo.New(countryinfo.Options{
				Endpoint: cfg.Endpoint,
				Timeout:  cfg.Timeout(),
				Retries:  cfg.Retries,
			}, log.With().Str("component", "countryinfo").Logger())

			return ctx, nil
		},
	}

	consoleCmd := commands.NewConsoleCmd(flags)

	app = commands.NewLookupCmd(flags).Register(app)
	app = commands.NewCodesCmd(flags).Register(app)

	// Open the interactive console when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'country-info --help' for usage", c.Args().First())
		}
		return consoleCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Println()
		printer.Ctx(ctx).FatalError(err)
		exitCode = 1
	}

	// Flush deferred logs to console after the interactive session exits
	if deferredLogs != nil {
		if err := deferredLogs.Flush(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}); err != nil {
			fmt.Fprintf(os.Stderr, "failed to flush logs: %v\n", err)
		}
	}

	os.Exit(exitCode)
}

func setupLogger(level string, logFile string, deferred io.Writer) error {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}

	if logFile != "" {
		logDir := filepath.Dir(logFile)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}

		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}

		if deferred != nil {
			// Interactive mode with explicit log file - write to both
			output = io.MultiWriter(file, deferred)
		} else {
			output = io.MultiWriter(
				zerolog.ConsoleWriter{Out: os.Stderr},
				file,
			)
		}
	} else if deferred != nil {
		// Interactive mode without log file - buffer for display after exit
		output = deferred
	}

	log.Logger = log.Output(output).Level(parsedLevel)

	return nil
}
