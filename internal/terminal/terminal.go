// Package terminal prints widget pages as text tables.
package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/cexcal-dev/cexcal/internal/model"
	"github.com/cexcal-dev/cexcal/internal/render"
	"github.com/cexcal-dev/cexcal/internal/stats"
	"github.com/cexcal-dev/cexcal/internal/widget"
)

// WriteMonth prints the header, the active filter and the month grid.
func WriteMonth(w io.Writer, p widget.Page) {
	fmt.Fprintln(w, p.Header)
	filter := p.Exchange
	if filter == "" {
		filter = render.AllExchanges
	}
	fmt.Fprintf(w, "交易所: %s\n", filter)

	table := tablewriter.NewWriter(w)
	table.SetHeader(p.Weekdays[:])
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetRowLine(true)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, week := range p.Weeks {
		row := make([]string, len(week))
		for i, d := range week {
			row[i] = dayCell(d)
		}
		table.Append(row)
	}
	table.Render()
}

// dayCell formats one grid cell: the day number (bracketed outside the
// month, starred for today), the count badge, then every summary line.
func dayCell(d render.DayView) string {
	var b strings.Builder
	day := strconv.Itoa(d.Day)
	switch {
	case !d.InMonth:
		day = "(" + day + ")"
	case d.Today:
		day = "*" + day
	}
	b.WriteString(day)
	if d.HasEvents {
		fmt.Fprintf(&b, " [%d]", d.Count)
	}
	for _, e := range d.Entries {
		b.WriteString("\n")
		b.WriteString(e.Summary)
	}
	return b.String()
}

// WriteStats prints the per-exchange stats table, or the empty message.
func WriteStats(w io.Writer, r stats.Report) {
	if r.Empty() {
		fmt.Fprintln(w, stats.EmptyMessage)
		return
	}

	header := []string{"Exchange", "Total"}
	for _, t := range model.Types {
		header = append(header, t.Label())
	}
	header = append(header, "Share")

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, row := range r.Rows {
		line := []string{row.Exchange, strconv.Itoa(row.Total)}
		for _, t := range model.Types {
			line = append(line, countCell(row.Count(t)))
		}
		line = append(line, row.Share.StringFixed(1)+"%")
		table.Append(line)
	}
	table.SetFooter([]string{"", strconv.Itoa(r.MonthTotal), "", "", "", "", ""})
	table.Render()
}

// countCell leaves zero counts blank, like the stats panel hides empty types.
func countCell(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// WriteModal prints the day detail.
func WriteModal(w io.Writer, m render.ModalView) {
	fmt.Fprintln(w, m.Heading)
	if m.Empty {
		fmt.Fprintln(w, m.Message)
		return
	}
	for _, d := range m.Details {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s  [%s]\n", d.Header, d.TypeLabel)
		if d.Time != "" {
			fmt.Fprintf(w, "  %s%s\n", render.TimeLabel, d.Time)
		}
		if d.Pairs != "" {
			fmt.Fprintf(w, "  %s%s\n", render.PairsLabel, d.Pairs)
		}
		if d.Notes != "" {
			fmt.Fprintf(w, "  %s%s\n", render.NotesLabel, d.Notes)
		}
	}
}

// WriteExchanges prints one exchange name per line.
func WriteExchanges(w io.Writer, names []string) {
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}
