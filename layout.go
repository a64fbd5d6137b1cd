package main

import (
	"fmt"
	"math"
)

// Fixed shape of the federal log grid. Lane order is DutyStatuses.
const (
	LaneCount = 4
	HourCount = 24
)

// GridConfig is the geometry and palette of one chart. Two renderers given
// the same GridConfig and the same LogSheet produce the same Chart.
type GridConfig struct {
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
	LaneHeight   float64
	HourWidth    float64

	FontFamily      string
	Background      string
	GridMajorColor  string
	GridMinorColor  string
	LabelColor      string
	MutedColor      string
	TotalColor      string
	GrandTotalColor string
	TraceWidth      float64
}

// DefaultGridConfig returns the standard paper-log geometry.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		MarginLeft:   60,
		MarginRight:  50,
		MarginTop:    40,
		MarginBottom: 30,
		LaneHeight:   40,
		HourWidth:    32,

		FontFamily:      "monospace",
		Background:      "#152428",
		GridMajorColor:  "#3d5a64",
		GridMinorColor:  "#2d4a54",
		LabelColor:      "#94a3b8",
		MutedColor:      "#64748b",
		TotalColor:      "#ffffff",
		GrandTotalColor: "#2dd4bf",
		TraceWidth:      3,
	}
}

// Validate rejects geometry that cannot produce a drawable grid.
func (c GridConfig) Validate() error {
	margins := []struct {
		name  string
		value float64
	}{
		{"margin_left", c.MarginLeft},
		{"margin_right", c.MarginRight},
		{"margin_top", c.MarginTop},
		{"margin_bottom", c.MarginBottom},
	}
	for _, m := range margins {
		if math.IsNaN(m.value) || math.IsInf(m.value, 0) || m.value < 0 {
			return fmt.Errorf("layout.%s must be a finite value >= 0, got %v", m.name, m.value)
		}
	}
	if !(c.LaneHeight > 0) || math.IsInf(c.LaneHeight, 0) {
		return fmt.Errorf("layout.lane_height must be a finite value > 0, got %v", c.LaneHeight)
	}
	if !(c.HourWidth > 0) || math.IsInf(c.HourWidth, 0) {
		return fmt.Errorf("layout.hour_width must be a finite value > 0, got %v", c.HourWidth)
	}
	if !(c.TraceWidth > 0) || math.IsInf(c.TraceWidth, 0) {
		return fmt.Errorf("style.trace_width must be a finite value > 0, got %v", c.TraceWidth)
	}
	return nil
}

// GridLayout maps hours and statuses to chart coordinates.
type GridLayout struct {
	cfg GridConfig
}

func NewGridLayout(cfg GridConfig) GridLayout {
	return GridLayout{cfg: cfg}
}

func (l GridLayout) Config() GridConfig { return l.cfg }

// HourToX is strictly increasing in hour; HourToX(0) is the left margin.
func (l GridLayout) HourToX(hour float64) float64 {
	return l.cfg.MarginLeft + hour*l.cfg.HourWidth
}

// LaneIndexToY returns the vertical center of lane i.
func (l GridLayout) LaneIndexToY(i int) float64 {
	return l.cfg.MarginTop + float64(i)*l.cfg.LaneHeight + l.cfg.LaneHeight/2
}

// LaneToY returns the lane center for status. Unknown statuses map to the
// fallback lane; ok reports whether the status was recognized.
func (l GridLayout) LaneToY(status DutyStatus) (y float64, ok bool) {
	lane, ok := status.Lane()
	return l.LaneIndexToY(lane), ok
}

// LaneTop is the y of the boundary line above lane i (i == LaneCount is the bottom edge).
func (l GridLayout) LaneTop(i int) float64 {
	return l.cfg.MarginTop + float64(i)*l.cfg.LaneHeight
}

func (l GridLayout) GridWidth() float64  { return l.cfg.HourWidth * HourCount }
func (l GridLayout) GridHeight() float64 { return l.cfg.LaneHeight * LaneCount }
func (l GridLayout) GridLeft() float64   { return l.cfg.MarginLeft }
func (l GridLayout) GridTop() float64    { return l.cfg.MarginTop }
func (l GridLayout) GridRight() float64  { return l.cfg.MarginLeft + l.GridWidth() }
func (l GridLayout) GridBottom() float64 { return l.cfg.MarginTop + l.GridHeight() }

// Width and Height are the full chart size including margins.
func (l GridLayout) Width() float64 {
	return l.cfg.MarginLeft + l.GridWidth() + l.cfg.MarginRight
}

func (l GridLayout) Height() float64 {
	return l.cfg.MarginTop + l.GridHeight() + l.cfg.MarginBottom
}
