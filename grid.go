package main

import "strconv"

// Grid stroke weights and label placement offsets.
const (
	majorHourEvery   = 6
	majorStrokeWidth = 1.0
	minorStrokeWidth = 0.5
	quarterWidth     = 0.25
	quarterDash      = "2,4"
	quartersPerHour  = 4

	rowLabelGap     = 8.0  // row label right edge to grid left
	hourLabelOffset = 16.0 // grid bottom to hour label baseline
	rowLabelSize    = 10.0
	hourLabelSize   = 9.0
	midnightLabel   = "M"
)

// BuildGrid returns the static grid strokes: 25 hour lines, 5 lane
// boundaries, then the 72 quarter-hour lines that do not fall on an hour.
func BuildGrid(layout GridLayout) []Stroke {
	cfg := layout.Config()
	top, bottom := layout.GridTop(), layout.GridBottom()
	left, right := layout.GridLeft(), layout.GridRight()

	strokes := make([]Stroke, 0, (HourCount+1)+(LaneCount+1)+HourCount*(quartersPerHour-1))

	for h := 0; h <= HourCount; h++ {
		x := layout.HourToX(float64(h))
		s := Stroke{Kind: StrokeHourMinor, X1: x, Y1: top, X2: x, Y2: bottom, Color: cfg.GridMinorColor, Width: minorStrokeWidth}
		if h%majorHourEvery == 0 {
			s.Kind, s.Color, s.Width = StrokeHourMajor, cfg.GridMajorColor, majorStrokeWidth
		}
		strokes = append(strokes, s)
	}

	for i := 0; i <= LaneCount; i++ {
		y := layout.LaneTop(i)
		strokes = append(strokes, Stroke{
			Kind: StrokeLane, X1: left, Y1: y, X2: right, Y2: y,
			Color: cfg.GridMajorColor, Width: majorStrokeWidth,
		})
	}

	for q := 0; q < HourCount*quartersPerHour; q++ {
		if q%quartersPerHour == 0 {
			continue
		}
		x := layout.HourToX(float64(q) / quartersPerHour)
		strokes = append(strokes, Stroke{
			Kind: StrokeQuarter, X1: x, Y1: top, X2: x, Y2: bottom,
			Color: cfg.GridMinorColor, Width: quarterWidth, Dash: quarterDash,
		})
	}
	return strokes
}

// BuildAxisLabels returns the row labels left of each lane followed by the
// hour labels under each hour column ("M" for midnight, then 1..23).
func BuildAxisLabels(layout GridLayout) []Label {
	cfg := layout.Config()
	labels := make([]Label, 0, LaneCount+HourCount)

	for i, status := range DutyStatuses {
		labels = append(labels, Label{
			Kind:   LabelRow,
			X:      layout.GridLeft() - rowLabelGap,
			Y:      layout.LaneIndexToY(i),
			Text:   status.RowLabel(),
			Anchor: AnchorEnd,
			Middle: true,
			Size:   rowLabelSize,
			Color:  cfg.LabelColor,
			Status: status,
		})
	}

	for h := 0; h < HourCount; h++ {
		text := strconv.Itoa(h)
		if h == 0 {
			text = midnightLabel
		}
		labels = append(labels, Label{
			Kind:   LabelHour,
			X:      layout.HourToX(float64(h)) + cfg.HourWidth/2,
			Y:      layout.GridBottom() + hourLabelOffset,
			Text:   text,
			Anchor: AnchorMiddle,
			Size:   hourLabelSize,
			Color:  cfg.MutedColor,
		})
	}
	return labels
}

// Background returns the filled grid area behind the lines.
func Background(layout GridLayout) Rect {
	return Rect{
		X:      layout.GridLeft(),
		Y:      layout.GridTop(),
		W:      layout.GridWidth(),
		H:      layout.GridHeight(),
		Radius: 4,
		Fill:   layout.Config().Background,
	}
}
