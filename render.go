package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Render draws one day. A malformed segment list rejects the day with a
// *DataIntegrityError; unknown statuses and totals discrepancies are
// returned as Chart.Warnings. sheet is not modified.
func Render(sheet LogSheet, cfg GridConfig) (*Chart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid grid config: %w", err)
	}
	if err := ValidateSegments(sheet.DayNumber, sheet.Segments); err != nil {
		return nil, err
	}

	layout := NewGridLayout(cfg)
	chart := &Chart{
		DayNumber:  sheet.DayNumber,
		Date:       sheet.Date,
		TotalMiles: sheet.TotalMiles,
		Width:      layout.Width(),
		Height:     layout.Height(),
		FontFamily: cfg.FontFamily,
		Background: Background(layout),
		Grid:       BuildGrid(layout),
		Remarks:    BuildRemarks(sheet.Remarks),
	}

	trace, warnings := BuildTrace(layout, sheet.DayNumber, sheet.Segments)
	chart.Trace = trace

	chart.Labels = BuildAxisLabels(layout)
	chart.Labels = append(chart.Labels, BuildTotals(layout, sheet.Totals)...)

	chart.Warnings = append(warnings, ReconcileTotals(sheet)...)
	return chart, nil
}

// DayResult is the outcome of rendering one sheet of a batch.
type DayResult struct {
	Index int // position in the input slice
	Sheet LogSheet
	Chart *Chart
	Err   error
}

// RenderAll renders every sheet concurrently. Results come back in input
// order; a rejected day carries its error and does not affect the others.
func RenderAll(sheets []LogSheet, cfg GridConfig) []DayResult {
	results := make([]DayResult, len(sheets))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range sheets {
		g.Go(func() error {
			chart, err := Render(sheets[i], cfg)
			results[i] = DayResult{Index: i, Sheet: sheets[i], Chart: chart, Err: err}
			return nil
		})
	}
	_ = g.Wait() // per-day errors live in results
	return results
}
