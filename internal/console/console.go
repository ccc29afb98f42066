// Package console implements the interactive read-eval-render loop.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ben1998pe/soap-country-info/internal/core/country"
	"github.com/ben1998pe/soap-country-info/internal/core/export"
	"github.com/ben1998pe/soap-country-info/internal/core/history"
	"github.com/ben1998pe/soap-country-info/internal/countryinfo"
	"github.com/ben1998pe/soap-country-info/internal/printer"
	"github.com/ben1998pe/soap-country-info/internal/styles"
)

// Service is the country directory surface the console depends on.
type Service interface {
	// CountryCodes returns all ISO codes known to the directory.
	CountryCodes(ctx context.Context) ([]string, error)
	// CountryInfo fetches the record for a two-letter ISO code.
	CountryInfo(ctx context.Context, code string) (country.Record, error)
}

// Options configures a Console.
type Options struct {
	Service    Service
	History    *history.Store
	ExportPath string
	In         io.Reader
	Out        io.Writer
	Logger     zerolog.Logger

	// Now is the clock used for history timestamps. Defaults to time.Now.
	Now func() time.Time
}

// Console runs the interactive lookup loop. All state (history, cached
// catalog) lives for one session and is touched only by the loop itself.
type Console struct {
	svc        Service
	history    *history.Store
	exportPath string
	in         io.Reader
	out        io.Writer
	p          *printer.Printer
	logger     zerolog.Logger
	now        func() time.Time

	// catalog is fetched on the first "list" and cached for the session.
	catalog []string
}

// New creates a console from the given options.
func New(opts Options) *Console {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.History == nil {
		opts.History = history.NewStore(history.DefaultCapacity)
	}
	if opts.ExportPath == "" {
		opts.ExportPath = export.DefaultPath
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Console{
		svc:        opts.Service,
		history:    opts.History,
		exportPath: opts.ExportPath,
		in:         opts.In,
		out:        opts.Out,
		p:          printer.New(opts.Out),
		logger:     opts.Logger,
		now:        opts.Now,
	}
}

// Run reads commands until an exit command, end of input, or context
// cancellation (Ctrl+C). Remote and I/O failures are rendered and the loop
// continues; none of them terminate the session.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, styles.BannerStyle.Render(styles.Banner))
	c.p.Infof("Country directory console. Type a 2-letter ISO code, or 'help' for commands.")

	// Reading happens on its own goroutine so a pending Ctrl+C can
	// interrupt a blocked stdin read.
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		fmt.Fprint(c.out, styles.PromptStyle.Render(">")+" ")

		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			c.p.Infof("Goodbye!")
			return nil
		case line, ok := <-lines:
			if !ok {
				c.p.Infof("Goodbye!")
				return nil
			}
			if quit := c.dispatch(ctx, line); quit {
				c.p.Infof("Goodbye!")
				return nil
			}
		}
	}
}

// dispatch handles one line of input. Returns true on an exit command.
func (c *Console) dispatch(ctx context.Context, raw string) bool {
	input := strings.TrimSpace(raw)
	if input == "" {
		return false
	}

	switch strings.ToLower(input) {
	case "exit", "quit", "salir":
		return true
	case "help", "ayuda":
		c.renderHelp()
	case "list", "lista":
		c.handleList(ctx)
	case "history", "historial":
		c.handleHistory()
	case "export", "exportar":
		c.handleExport()
	default:
		if country.ValidCode(input) {
			c.handleLookup(ctx, input)
		} else {
			c.p.Errorf("Unrecognized command %q", input)
			c.p.Infof("Enter a 2-letter code like 'PE', or type 'help'")
		}
	}

	return false
}

func (c *Console) handleLookup(ctx context.Context, code string) {
	code = country.NormalizeCode(code)

	record, err := c.svc.CountryInfo(ctx, code)
	if err != nil {
		c.renderLookupError(code, err)
		return
	}

	fmt.Fprintln(c.out, RenderRecord(record))

	c.history.Record(history.Entry{
		ISOCode:     record.ISOCode,
		CountryName: record.Name,
		Timestamp:   c.now(),
	})
	c.logger.Debug().Str("code", record.ISOCode).Msg("lookup recorded")
}

func (c *Console) renderLookupError(code string, err error) {
	switch {
	case errors.Is(err, countryinfo.ErrInvalidCode):
		c.p.Errorf("%q is not a valid 2-letter country code", code)
	case errors.Is(err, countryinfo.ErrNotFound):
		c.p.Errorf("No country found for code %q", code)
		c.p.Infof("Run 'list' to see all available codes")
	case errors.Is(err, countryinfo.ErrUnavailable):
		c.p.Errorf("The country service is unreachable. Check your connection and try again.")
	case errors.Is(err, countryinfo.ErrServiceFault):
		c.p.Errorf("The country service returned an unexpected response.")
	default:
		c.p.Errorf("Lookup failed: %v", err)
	}
	c.logger.Debug().Err(err).Str("code", code).Msg("lookup failed")
}

func (c *Console) handleList(ctx context.Context) {
	codes, err := c.codes(ctx)
	if err != nil {
		switch {
		case errors.Is(err, countryinfo.ErrUnavailable):
			c.p.Errorf("The country service is unreachable. Check your connection and try again.")
		default:
			c.p.Errorf("Could not fetch the code list: %v", err)
		}
		return
	}

	fmt.Fprintln(c.out, RenderCodes(codes))
}

// codes returns the session catalog, fetching it on first use.
func (c *Console) codes(ctx context.Context) ([]string, error) {
	if c.catalog != nil {
		return c.catalog, nil
	}

	codes, err := c.svc.CountryCodes(ctx)
	if err != nil {
		return nil, err
	}

	c.catalog = codes
	return codes, nil
}

func (c *Console) handleHistory() {
	entries := c.history.Recent()
	if len(entries) == 0 {
		c.p.Infof("No lookups yet this session")
		return
	}

	fmt.Fprint(c.out, RenderHistory(entries))
}

func (c *Console) handleExport() {
	if err := export.Write(c.history.Recent(), c.exportPath); err != nil {
		c.p.Errorf("Export failed: %v", err)
		return
	}

	c.p.Successf("History exported to %s", c.exportPath)
}

func (c *Console) renderHelp() {
	help := `
Commands:
  <code>              look up a country by 2-letter ISO code (e.g. PE, US, ES)
  list, lista         show all available ISO codes
  history, historial  show the last lookups of this session
  export, exportar    write the session history to a text file
  help, ayuda         show this help
  exit, quit, salir   leave the console
`
	fmt.Fprintln(c.out, help)
}
