package main

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

// GenerateSVG serializes a chart as a standalone SVG document.
func GenerateSVG(chart *Chart) (string, error) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, chart); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteSVG writes the chart to w. Layers are drawn back to front:
// background, grid, labels (axis and totals), duty trace.
func WriteSVG(w io.Writer, chart *Chart) error {
	if chart == nil {
		return fmt.Errorf("no chart to encode")
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	width, height := int(math.Ceil(chart.Width)), int(math.Ceil(chart.Height))
	canvas.Startview(width, height, 0, 0, width, height)
	canvas.Title(fmt.Sprintf("Driver's Daily Log - Day %d - %s", chart.DayNumber, chart.Date))

	bg := chart.Background
	canvas.Path(rectPath(bg), attr("fill", bg.Fill))

	canvas.Group(`class="grid"`)
	for _, s := range chart.Grid {
		drawStroke(canvas, s)
	}
	canvas.Gend()

	canvas.Group(`class="labels"`, attr("font-family", chart.FontFamily))
	for _, l := range chart.Labels {
		drawLabel(canvas, l)
	}
	canvas.Gend()

	canvas.Group(`class="trace"`, `fill="none"`)
	for _, s := range chart.Trace {
		drawStroke(canvas, s)
	}
	canvas.Gend()

	canvas.End()
	return ew.err
}

// drawStroke emits a stroke as a path so coordinates keep full precision.
func drawStroke(canvas *svg.SVG, s Stroke) {
	d := fmt.Sprintf("M %s %s L %s %s", num(s.X1), num(s.Y1), num(s.X2), num(s.Y2))
	attrs := []string{
		attr("stroke", s.Color),
		attr("stroke-width", num(s.Width)),
	}
	if s.Dash != "" {
		attrs = append(attrs, attr("stroke-dasharray", s.Dash))
	}
	if s.Round {
		attrs = append(attrs, `stroke-linecap="round"`, `stroke-linejoin="round"`)
	}
	if s.Kind == StrokeTrace || s.Kind == StrokeConnector {
		attrs = append(attrs, attr("class", s.Kind.String()+" "+string(s.Status)))
	}
	canvas.Path(d, attrs...)
}

func drawLabel(canvas *svg.SVG, l Label) {
	attrs := []string{
		attr("font-size", num(l.Size)),
		attr("fill", l.Color),
	}
	if l.Anchor != "" && l.Anchor != AnchorStart {
		attrs = append(attrs, attr("text-anchor", string(l.Anchor)))
	}
	if l.Middle {
		attrs = append(attrs, `dominant-baseline="middle"`)
	}
	if l.Bold {
		attrs = append(attrs, `font-weight="bold"`)
	}

	// svgo places text on integer coordinates; fractional anchors go
	// through a translate so the position is exact.
	if x, y := l.X, l.Y; x == math.Trunc(x) && y == math.Trunc(y) {
		canvas.Text(int(x), int(y), l.Text, attrs...)
		return
	}
	canvas.Group(fmt.Sprintf(`transform="translate(%s,%s)"`, num(l.X), num(l.Y)))
	canvas.Text(0, 0, l.Text, attrs...)
	canvas.Gend()
}

// rectPath outlines a rounded rectangle with float coordinates.
func rectPath(r Rect) string {
	rad := math.Min(r.Radius, math.Min(r.W, r.H)/2)
	if rad <= 0 {
		return fmt.Sprintf("M %s %s H %s V %s H %s Z",
			num(r.X), num(r.Y), num(r.X+r.W), num(r.Y+r.H), num(r.X))
	}
	arc := fmt.Sprintf("A %s %s 0 0 1", num(rad), num(rad))
	return fmt.Sprintf("M %s %s H %s %s %s %s V %s %s %s %s H %s %s %s %s V %s %s %s %s Z",
		num(r.X+rad), num(r.Y),
		num(r.X+r.W-rad), arc, num(r.X+r.W), num(r.Y+rad),
		num(r.Y+r.H-rad), arc, num(r.X+r.W-rad), num(r.Y+r.H),
		num(r.X+rad), arc, num(r.X), num(r.Y+r.H-rad),
		num(r.Y+rad), arc, num(r.X+rad), num(r.Y),
	)
}

// num formats a coordinate with the shortest exact representation so equal
// charts encode to identical bytes.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func attr(name, value string) string {
	return name + `="` + escapeXML(value) + `"`
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
