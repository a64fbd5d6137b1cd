package main

import "strconv"

const (
	totalsColumnOffset = 25.0 // grid right edge to totals column center
	totalsHeaderOffset = 12.0 // header baseline above grid top
	totalsHeaderText   = "HOURS"
	grandTotalText     = "= 24"
	totalLabelSize     = 11.0
)

// FormatHours renders an hour total with exactly one decimal: 13 -> "13.0".
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 1, 64)
}

// BuildTotals lays out the totals column from the supplied totals. Values are
// printed as given; reconciliation with the segments happens elsewhere.
func BuildTotals(layout GridLayout, totals LogSheetTotals) []Label {
	cfg := layout.Config()
	x := layout.GridRight() + totalsColumnOffset
	labels := make([]Label, 0, LaneCount+2)

	for i, status := range DutyStatuses {
		labels = append(labels, Label{
			Kind:   LabelTotal,
			X:      x,
			Y:      layout.LaneIndexToY(i),
			Text:   FormatHours(totals.Hours(status)),
			Anchor: AnchorMiddle,
			Middle: true,
			Size:   totalLabelSize,
			Bold:   true,
			Color:  cfg.TotalColor,
			Status: status,
		})
	}

	labels = append(labels,
		Label{
			Kind:   LabelTotalsHeader,
			X:      x,
			Y:      layout.GridTop() - totalsHeaderOffset,
			Text:   totalsHeaderText,
			Anchor: AnchorMiddle,
			Size:   hourLabelSize,
			Color:  cfg.MutedColor,
		},
		Label{
			Kind:   LabelGrandTotal,
			X:      x,
			Y:      layout.GridBottom() + hourLabelOffset,
			Text:   grandTotalText,
			Anchor: AnchorMiddle,
			Size:   totalLabelSize,
			Bold:   true,
			Color:  cfg.GrandTotalColor,
		},
	)
	return labels
}
