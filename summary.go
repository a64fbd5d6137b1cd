package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	colorOK     = lipgloss.Color("#22c55e")
	colorWarn   = lipgloss.Color("#fbbf24")
	colorError  = lipgloss.Color("#f87171")
	colorDim    = lipgloss.Color("#64748b")
	colorHeader = lipgloss.Color("#2dd4bf")

	styleOK     = lipgloss.NewStyle().Foreground(colorOK)
	styleWarn   = lipgloss.NewStyle().Foreground(colorWarn)
	styleError  = lipgloss.NewStyle().Foreground(colorError)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
)

// renderSummary prints one row per day with its totals and outcome, then
// every warning and rejection, then the trip summary when known.
func renderSummary(results []DayResult, trip *TripSummary) string {
	headers := []string{"DAY", "DATE", "MILES", "OFF", "SB", "D", "ON", "STATUS"}
	rows := make([][]string, 0, len(results))
	var notes []string

	for _, res := range results {
		t := res.Sheet.Totals
		row := []string{
			strconv.Itoa(res.Sheet.DayNumber),
			res.Sheet.Date,
			humanize.Commaf(res.Sheet.TotalMiles),
			FormatHours(t.OffDuty),
			FormatHours(t.Sleeper),
			FormatHours(t.Driving),
			FormatHours(t.OnDuty),
		}
		switch {
		case res.Err != nil:
			row = append(row, styleError.Render("✗ rejected"))
			notes = append(notes, styleError.Render("✗ "+res.Err.Error()))
		case len(res.Chart.Warnings) > 0:
			row = append(row, styleWarn.Render(fmt.Sprintf("⚠ %d warning(s)", len(res.Chart.Warnings))))
			for _, w := range res.Chart.Warnings {
				notes = append(notes, styleWarn.Render("⚠ "+w.String()))
			}
		default:
			row = append(row, styleOK.Render("✓ ok"))
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	b.WriteString(renderTable(headers, rows))
	if len(notes) > 0 {
		b.WriteString("\n")
		for _, n := range notes {
			b.WriteString(n)
			b.WriteString("\n")
		}
	}
	if trip != nil {
		b.WriteString("\n")
		b.WriteString(styleDim.Render(fmt.Sprintf(
			"Trip: %s mi over %d day(s), %s h total, %d fuel stop(s), %d break(s), %d rest stop(s), cycle %s h after",
			humanize.Commaf(trip.TotalDistanceMiles), trip.TotalDays, FormatHours(trip.TotalDurationHours),
			trip.FuelStops, trip.RestBreaks, trip.RestStops, FormatHours(trip.CycleHoursAfter))))
		b.WriteString("\n")
	}
	return b.String()
}

// renderTable aligns columns by visible width so styled cells line up.
func renderTable(headers []string, rows [][]string) string {
	const colGap = 2
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style *lipgloss.Style) {
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if style != nil {
				cell = style.Render(cell)
			}
			b.WriteString(cell)
			if i < len(headers)-1 {
				b.WriteString(strings.Repeat(" ", pad+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, &styleHeader)
	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("─", w)
	}
	writeRow(sep, &styleDim)
	for _, row := range rows {
		writeRow(row, nil)
	}
	return b.String()
}
