package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	defaultTruck   = "4521"
	defaultCarrier = "Spotter Logistics"
)

// generateHTML builds one page holding a log card per day. Rejected days get
// a card with the reason instead of a chart.
func generateHTML(results []DayResult, header HeaderOptions) (string, error) {
	if len(results) == 0 {
		return "", fmt.Errorf("no log sheets to render")
	}

	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Driver's Daily Logs</title>\n")
	b.WriteString("<style>\n")
	b.WriteString(`
        body { margin: 0; padding: 32px; background: #0b1416; color: #e2e8f0; font-family: system-ui, sans-serif; }
        .log-card { border: 1px solid #2d4a54; border-radius: 12px; overflow: hidden; margin: 0 auto 32px; max-width: 960px; background: #0f1c1f; }
        .log-header { display: flex; justify-content: space-between; align-items: center; padding: 16px 24px; border-bottom: 1px solid #2d4a54; background: linear-gradient(to right, rgba(45,212,191,0.2), #152428); }
        .log-header h3 { margin: 0; font-size: 18px; letter-spacing: 0.02em; }
        .log-header p { margin: 2px 0 0; font-size: 11px; color: #64748b; }
        .log-day { text-align: right; font-family: monospace; }
        .log-day .date { font-size: 18px; font-weight: bold; color: #2dd4bf; }
        .log-info { display: flex; gap: 24px; padding: 10px 24px; font-size: 13px; border-bottom: 1px solid #2d4a54; }
        .log-info .k { color: #64748b; margin-right: 8px; }
        .log-info .v { font-family: monospace; }
        .log-chart { padding: 16px; overflow-x: auto; }
        .log-chart svg { width: 100%; min-width: 800px; height: auto; }
        .log-legend { display: flex; flex-wrap: wrap; gap: 24px; padding: 10px 24px; font-size: 12px; border-top: 1px solid #2d4a54; }
        .log-legend span.swatch { display: inline-block; width: 24px; height: 4px; border-radius: 2px; margin-right: 8px; vertical-align: middle; }
        .log-remarks { padding: 14px 24px; border-top: 1px solid #2d4a54; font-size: 12px; }
        .log-remarks h4 { margin: 0 0 10px; font-size: 12px; color: #64748b; text-transform: uppercase; letter-spacing: 0.08em; }
        .log-remarks .t { font-family: monospace; color: #64748b; }
        .log-remarks .a { color: #64748b; }
        .log-warnings { padding: 10px 24px; border-top: 1px solid #2d4a54; font-size: 12px; color: #fbbf24; }
        .log-error { padding: 24px; color: #f87171; font-family: monospace; }
    `)
	b.WriteString("\n</style>\n</head>\n<body>\n")

	for _, res := range results {
		if err := writeLogCard(&b, res, header); err != nil {
			return "", fmt.Errorf("day %d: %w", res.Sheet.DayNumber, err)
		}
	}

	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

func writeLogCard(b *strings.Builder, res DayResult, header HeaderOptions) error {
	sheet := res.Sheet
	b.WriteString("<div class=\"log-card\">\n")

	// --- Header ---
	b.WriteString("  <div class=\"log-header\">\n")
	b.WriteString("    <div><h3>DRIVER'S DAILY LOG</h3><p>U.S. DEPARTMENT OF TRANSPORTATION — ONE CALENDAR DAY (24 HOURS)</p></div>\n")
	fmt.Fprintf(b, "    <div class=\"log-day\"><div>Day %d</div><div class=\"date\">%s</div></div>\n",
		sheet.DayNumber, escapeHTML(sheet.Date))
	b.WriteString("  </div>\n")

	// --- Info Bar ---
	b.WriteString("  <div class=\"log-info\">\n")
	fmt.Fprintf(b, "    <div><span class=\"k\">Total Miles:</span><span class=\"v\">%s</span></div>\n",
		humanize.Commaf(sheet.TotalMiles))
	fmt.Fprintf(b, "    <div><span class=\"k\">Truck:</span><span class=\"v\">%s</span></div>\n",
		escapeHTML(ternary(header.Truck != "", header.Truck, defaultTruck)))
	fmt.Fprintf(b, "    <div><span class=\"k\">Carrier:</span><span>%s</span></div>\n",
		escapeHTML(ternary(header.Carrier != "", header.Carrier, defaultCarrier)))
	b.WriteString("  </div>\n")

	if res.Err != nil {
		fmt.Fprintf(b, "  <div class=\"log-error\">Log sheet rejected: %s</div>\n", escapeHTML(res.Err.Error()))
		b.WriteString("</div>\n")
		return nil
	}

	// --- Chart ---
	svgDoc, err := GenerateSVG(res.Chart)
	if err != nil {
		return err
	}
	b.WriteString("  <div class=\"log-chart\">\n")
	b.WriteString(inlineSVG(svgDoc))
	b.WriteString("\n  </div>\n")

	// --- Legend ---
	b.WriteString("  <div class=\"log-legend\">\n")
	for _, status := range DutyStatuses {
		fmt.Fprintf(b, "    <div><span class=\"swatch\" style=\"background-color: %s\"></span>%s</div>\n",
			status.Color(), escapeHTML(status.LegendLabel()))
	}
	b.WriteString("  </div>\n")

	// --- Warnings ---
	if len(res.Chart.Warnings) > 0 {
		b.WriteString("  <div class=\"log-warnings\">\n")
		for _, w := range res.Chart.Warnings {
			fmt.Fprintf(b, "    <div>⚠ %s</div>\n", escapeHTML(w.Message))
		}
		b.WriteString("  </div>\n")
	}

	// --- Remarks ---
	if len(res.Chart.Remarks) > 0 {
		b.WriteString("  <div class=\"log-remarks\">\n    <h4>Remarks</h4>\n")
		for _, r := range res.Chart.Remarks {
			fmt.Fprintf(b, "    <div><span class=\"t\">%s</span> — %s <span class=\"a\">(%s)</span></div>\n",
				escapeHTML(r.Time), escapeHTML(r.Location), escapeHTML(r.Activity))
		}
		b.WriteString("  </div>\n")
	}

	b.WriteString("</div>\n")
	return nil
}

// inlineSVG drops the XML prolog so the document can sit inside HTML.
func inlineSVG(doc string) string {
	if i := strings.Index(doc, "<svg"); i > 0 {
		return doc[i:]
	}
	return doc
}
