package main

import (
	"errors"
	"fmt"
	"math"
)

const (
	// boundaryEpsilon absorbs float noise when comparing segment boundaries.
	boundaryEpsilon = 1e-6
	// totalsEpsilon is the largest accepted gap between a supplied total
	// and the segment sum for the same status.
	totalsEpsilon = 0.05
)

// ErrDataIntegrity is matched by every *DataIntegrityError via errors.Is.
var ErrDataIntegrity = errors.New("data integrity error")

// DataIntegrityError rejects a whole day whose segment list is malformed.
// Index is the offending segment, or -1 when the list as a whole is at fault.
type DataIntegrityError struct {
	Day    int
	Index  int
	Reason string
}

func (e *DataIntegrityError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("day %d: invalid segment list: %s", e.Day, e.Reason)
	}
	return fmt.Sprintf("day %d: invalid segment %d: %s", e.Day, e.Index, e.Reason)
}

func (e *DataIntegrityError) Is(target error) bool {
	return target == ErrDataIntegrity
}

// ValidateSegments checks that segments tile [0, 24] exactly: sorted,
// contiguous, each with positive duration, starting at 0 and ending at 24.
func ValidateSegments(day int, segments []DutySegment) error {
	fail := func(i int, format string, args ...any) error {
		return &DataIntegrityError{Day: day, Index: i, Reason: fmt.Sprintf(format, args...)}
	}

	if len(segments) == 0 {
		return fail(-1, "no segments")
	}

	for i, seg := range segments {
		if !isFinite(seg.StartHour) || !isFinite(seg.EndHour) {
			return fail(i, "non-finite hours [%v, %v]", seg.StartHour, seg.EndHour)
		}
		if seg.StartHour < 0 || seg.StartHour >= HourCount {
			return fail(i, "start_hour %v outside [0, 24)", seg.StartHour)
		}
		if seg.EndHour <= 0 || seg.EndHour > HourCount {
			return fail(i, "end_hour %v outside (0, 24]", seg.EndHour)
		}
		if seg.EndHour <= seg.StartHour {
			return fail(i, "end_hour %v not after start_hour %v", seg.EndHour, seg.StartHour)
		}
		if i == 0 {
			continue
		}
		prev := segments[i-1]
		gap := seg.StartHour - prev.EndHour
		switch {
		case gap > boundaryEpsilon:
			return fail(i, "gap of %.4gh after segment %d (%v to %v)", gap, i-1, prev.EndHour, seg.StartHour)
		case gap < -boundaryEpsilon:
			return fail(i, "overlaps segment %d (starts at %v, previous ends at %v)", i-1, seg.StartHour, prev.EndHour)
		}
	}

	if first := segments[0].StartHour; math.Abs(first) > boundaryEpsilon {
		return fail(0, "day starts at %v, want 0", first)
	}
	if last := segments[len(segments)-1].EndHour; math.Abs(last-HourCount) > boundaryEpsilon {
		return fail(len(segments)-1, "day ends at %v, want 24", last)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// --- Warnings ---

type WarningKind int

const (
	WarnUnknownStatus WarningKind = iota
	WarnTotalsMismatch
	WarnTotalsSum
)

func (k WarningKind) String() string {
	switch k {
	case WarnUnknownStatus:
		return "unknown-status"
	case WarnTotalsMismatch:
		return "totals-mismatch"
	case WarnTotalsSum:
		return "totals-sum"
	default:
		return "unknown"
	}
}

// Warning is a recoverable problem found while rendering a day. The chart
// is still produced.
type Warning struct {
	Kind         WarningKind
	Day          int
	SegmentIndex int // -1 when not tied to a segment
	Status       DutyStatus
	Supplied     float64 // totals warnings: value printed on the chart
	Computed     float64 // totals warnings: value derived from segments
	Message      string
}

func (w Warning) String() string {
	return fmt.Sprintf("day %d: %s: %s", w.Day, w.Kind, w.Message)
}

func unknownStatusWarning(day, index int, status DutyStatus) Warning {
	return Warning{
		Kind:         WarnUnknownStatus,
		Day:          day,
		SegmentIndex: index,
		Status:       status,
		Message: fmt.Sprintf("segment %d has unrecognized status %q, drawn in the %s lane",
			index, string(status), DutyStatuses[fallbackLane].RowLabel()),
	}
}

// SegmentHours sums segment durations by the lane each segment is drawn in,
// so an unrecognized status counts toward the fallback lane.
func SegmentHours(segments []DutySegment) [LaneCount]float64 {
	var hours [LaneCount]float64
	for _, seg := range segments {
		lane, _ := seg.Status.Lane()
		hours[lane] += seg.Duration()
	}
	return hours
}

// ReconcileTotals compares the supplied totals with the segment sums and
// with 24. It never changes what is printed; discrepancies become warnings
// for upstream correction.
func ReconcileTotals(sheet LogSheet) []Warning {
	var warnings []Warning
	computed := SegmentHours(sheet.Segments)
	for lane, status := range DutyStatuses {
		supplied := sheet.Totals.Hours(status)
		if math.Abs(supplied-computed[lane]) > totalsEpsilon {
			warnings = append(warnings, Warning{
				Kind:         WarnTotalsMismatch,
				Day:          sheet.DayNumber,
				SegmentIndex: -1,
				Status:       status,
				Supplied:     supplied,
				Computed:     computed[lane],
				Message: fmt.Sprintf("%s total is %s but segments add up to %s",
					status.RowLabel(), FormatHours(supplied), FormatHours(computed[lane])),
			})
		}
	}
	if sum := sheet.Totals.Sum(); math.Abs(sum-HourCount) > totalsEpsilon {
		warnings = append(warnings, Warning{
			Kind:         WarnTotalsSum,
			Day:          sheet.DayNumber,
			SegmentIndex: -1,
			Supplied:     sum,
			Computed:     HourCount,
			Message:      fmt.Sprintf("totals add up to %s, want 24", FormatHours(sum)),
		})
	}
	return warnings
}
