package console

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/ben1998pe/soap-country-info/internal/core/country"
	"github.com/ben1998pe/soap-country-info/internal/core/history"
	"github.com/ben1998pe/soap-country-info/internal/styles"
)

// codesPerRow controls the column layout of the code listing.
const codesPerRow = 8

// RenderRecord formats a country record as a bordered card.
func RenderRecord(r country.Record) string {
	title := styles.TitleStyle.Render(fmt.Sprintf("%s (%s)", r.Name, r.ISOCode))

	rows := []string{
		title,
		recordField("Capital", r.Capital),
		recordField("Currency", r.CurrencyCode),
		recordField("Languages", r.LanguageList()),
		recordField("Phone code", r.PhoneCode),
		recordField("Continent", r.ContinentCode),
		recordField("Flag", r.FlagURL),
	}

	return styles.RecordBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func recordField(label, value string) string {
	if value == "" {
		value = "n/a"
	}
	return styles.LabelStyle.Render(fmt.Sprintf("%-11s", label)) + styles.ValueStyle.Render(value)
}

// RenderCodes lays out ISO codes in columns with a total line.
func RenderCodes(codes []string) string {
	var b strings.Builder

	for i := 0; i < len(codes); i += codesPerRow {
		row := codes[i:min(i+codesPerRow, len(codes))]
		b.WriteString("  " + strings.Join(row, "  ") + "\n")
	}

	b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("%d countries available", len(codes))))
	return b.String()
}

// RenderHistory formats history entries as a table, newest first.
func RenderHistory(entries []history.Entry) string {
	var b strings.Builder

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TIME\tCODE\tCOUNTRY")
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n",
			e.Timestamp.Format("15:04:05"),
			e.ISOCode,
			e.CountryName,
		)
	}
	_ = w.Flush()

	return b.String()
}
