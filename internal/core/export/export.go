// Package export writes the session lookup history to a plain-text file.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/ben1998pe/soap-country-info/internal/core/history"
)

// DefaultPath is the export file written when no path is configured.
const DefaultPath = "resultados_paises.txt"

// Write creates or overwrites path with one line per entry, in the order
// given. An empty entry list still produces a valid header-only file.
func Write(entries []history.Entry, path string) error {
	var buf bytes.Buffer

	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TIME\tCODE\tCOUNTRY")
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n",
			e.Timestamp.Format("2006-01-02 15:04:05"),
			e.ISOCode,
			e.CountryName,
		)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("format export: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}

	// Write through a temp file so a failed write never leaves a truncated
	// export behind.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write export temp file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename export file: %w", err)
	}

	return nil
}
