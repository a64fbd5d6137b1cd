package main

import "math"

// connectorThreshold is the smallest vertical jump, in chart units, that
// gets a transition connector.
const connectorThreshold = 1.0

// BuildTrace turns a validated segment list into the stepped duty trace:
// one horizontal stroke per segment, preceded by a vertical connector at
// the segment's start whenever the lane changes. Output order mirrors input
// order; adjacent segments with the same status are not merged.
//
// Segments with an unrecognized status are drawn on the fallback lane in the
// fallback color and reported in the returned warnings.
func BuildTrace(layout GridLayout, day int, segments []DutySegment) ([]Stroke, []Warning) {
	cfg := layout.Config()
	strokes := make([]Stroke, 0, 2*len(segments))
	var warnings []Warning

	var prevY float64
	for i, seg := range segments {
		y, ok := layout.LaneToY(seg.Status)
		if !ok {
			warnings = append(warnings, unknownStatusWarning(day, i, seg.Status))
		}
		color := seg.Status.Color()
		startX := layout.HourToX(seg.StartHour)

		if i > 0 && math.Abs(prevY-y) > connectorThreshold {
			strokes = append(strokes, Stroke{
				Kind:   StrokeConnector,
				X1:     startX,
				Y1:     prevY,
				X2:     startX,
				Y2:     y,
				Color:  color,
				Width:  cfg.TraceWidth,
				Status: seg.Status,
				Round:  true,
			})
		}

		strokes = append(strokes, Stroke{
			Kind:   StrokeTrace,
			X1:     startX,
			Y1:     y,
			X2:     layout.HourToX(seg.EndHour),
			Y2:     y,
			Color:  color,
			Width:  cfg.TraceWidth,
			Status: seg.Status,
			Round:  true,
		})
		prevY = y
	}
	return strokes, warnings
}
