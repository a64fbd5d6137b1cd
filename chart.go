package main

// --- Chart Primitives ---
// A Chart is the format-independent description of one day's log grid.
// Encoders (SVG, HTML, raster) only read it.

type StrokeKind int

const (
	StrokeHourMajor StrokeKind = iota // hours 0, 6, 12, 18, 24
	StrokeHourMinor
	StrokeLane
	StrokeQuarter
	StrokeTrace
	StrokeConnector
)

func (k StrokeKind) String() string {
	switch k {
	case StrokeHourMajor:
		return "hour-major"
	case StrokeHourMinor:
		return "hour-minor"
	case StrokeLane:
		return "lane"
	case StrokeQuarter:
		return "quarter"
	case StrokeTrace:
		return "trace"
	case StrokeConnector:
		return "connector"
	default:
		return "unknown"
	}
}

// Stroke is a straight line from (X1,Y1) to (X2,Y2).
type Stroke struct {
	Kind           StrokeKind
	X1, Y1, X2, Y2 float64
	Color          string
	Width          float64
	Dash           string     // SVG dash array, empty for solid
	Status         DutyStatus // trace and connector strokes only
	Round          bool       // round caps and joins
}

type LabelKind int

const (
	LabelRow LabelKind = iota
	LabelHour
	LabelTotal
	LabelTotalsHeader
	LabelGrandTotal
)

type TextAnchor string

const (
	AnchorStart  TextAnchor = "start"
	AnchorMiddle TextAnchor = "middle"
	AnchorEnd    TextAnchor = "end"
)

// Label is a single line of text anchored at (X,Y).
type Label struct {
	Kind   LabelKind
	X, Y   float64
	Text   string
	Anchor TextAnchor
	Middle bool // vertically centered on Y instead of sitting on the baseline
	Size   float64
	Bold   bool
	Color  string
	Status DutyStatus // row and total labels only
}

// Rect is the grid background.
type Rect struct {
	X, Y, W, H float64
	Radius     float64
	Fill       string
}

// RemarkRow is one formatted remark line: time, location, activity.
type RemarkRow struct {
	Time     string
	Location string
	Activity string
}

// Chart is the rendered artifact for one day.
type Chart struct {
	DayNumber  int
	Date       string
	TotalMiles float64

	Width, Height float64
	FontFamily    string
	Background    Rect

	Grid     []Stroke // hour lines, lane lines, quarter lines
	Trace    []Stroke // horizontal traces and connectors in segment order
	Labels   []Label  // row and hour labels, then the totals column
	Remarks  []RemarkRow
	Warnings []Warning
}

// Connectors returns the transition strokes of the trace.
func (c *Chart) Connectors() []Stroke {
	var out []Stroke
	for _, s := range c.Trace {
		if s.Kind == StrokeConnector {
			out = append(out, s)
		}
	}
	return out
}

// LabelsOf returns the labels of the given kind in emission order.
func (c *Chart) LabelsOf(kind LabelKind) []Label {
	var out []Label
	for _, l := range c.Labels {
		if l.Kind == kind {
			out = append(out, l)
		}
	}
	return out
}
