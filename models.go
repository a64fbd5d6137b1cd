package main

// --- Duty Status ---

// DutyStatus is the driver's legal work state. The wire values are the
// planning service's snake_case strings; any other value is kept verbatim so
// it can be reported, and is drawn with the fallback lane and color.
type DutyStatus string

const (
	OffDuty DutyStatus = "off_duty"
	Sleeper DutyStatus = "sleeper"
	Driving DutyStatus = "driving"
	OnDuty  DutyStatus = "on_duty"
)

// DutyStatuses lists the four statuses in lane order, top to bottom.
var DutyStatuses = [LaneCount]DutyStatus{OffDuty, Sleeper, Driving, OnDuty}

// Fallback drawing for a status outside the enumeration: OFF DUTY row, slate color.
const (
	fallbackLane  = 0
	fallbackColor = "#64748b"
)

// Lane returns the lane index of s, 0 at the top. ok is false for an
// unrecognized status, in which case the fallback lane is returned.
func (s DutyStatus) Lane() (lane int, ok bool) {
	switch s {
	case OffDuty:
		return 0, true
	case Sleeper:
		return 1, true
	case Driving:
		return 2, true
	case OnDuty:
		return 3, true
	default:
		return fallbackLane, false
	}
}

// Valid reports whether s is one of the four known statuses.
func (s DutyStatus) Valid() bool {
	_, ok := s.Lane()
	return ok
}

// Color is the trace color for s.
func (s DutyStatus) Color() string {
	switch s {
	case OffDuty:
		return "#22c55e"
	case Sleeper:
		return "#fbbf24"
	case Driving:
		return "#2dd4bf"
	case OnDuty:
		return "#f87171"
	default:
		return fallbackColor
	}
}

// RowLabel is the text printed left of the lane.
func (s DutyStatus) RowLabel() string {
	switch s {
	case OffDuty:
		return "OFF DUTY"
	case Sleeper:
		return "SLEEPER"
	case Driving:
		return "DRIVING"
	case OnDuty:
		return "ON DUTY"
	default:
		return "UNKNOWN"
	}
}

// LegendLabel is the longer name used by the HTML legend.
func (s DutyStatus) LegendLabel() string {
	switch s {
	case OffDuty:
		return "Off Duty"
	case Sleeper:
		return "Sleeper Berth"
	case Driving:
		return "Driving"
	case OnDuty:
		return "On Duty (Not Driving)"
	default:
		return "Unknown"
	}
}

// --- Data Structs ---

// DutySegment is one contiguous interval of a day carrying a single status.
type DutySegment struct {
	Status    DutyStatus `json:"status"`
	StartHour float64    `json:"start_hour"`
	EndHour   float64    `json:"end_hour"`
	Location  string     `json:"location"`
	Notes     string     `json:"notes"`
}

// Duration returns the segment length in hours.
func (s DutySegment) Duration() float64 {
	return s.EndHour - s.StartHour
}

// LogSheetTotals holds the upstream per-status hour totals for one day.
type LogSheetTotals struct {
	OffDuty float64 `json:"off_duty"`
	Sleeper float64 `json:"sleeper"`
	Driving float64 `json:"driving"`
	OnDuty  float64 `json:"on_duty"`
}

// Hours returns the supplied total for status. Unknown statuses have no total.
func (t LogSheetTotals) Hours(status DutyStatus) float64 {
	switch status {
	case OffDuty:
		return t.OffDuty
	case Sleeper:
		return t.Sleeper
	case Driving:
		return t.Driving
	case OnDuty:
		return t.OnDuty
	default:
		return 0
	}
}

// Sum is the total of all four statuses, nominally 24.
func (t LogSheetTotals) Sum() float64 {
	return t.OffDuty + t.Sleeper + t.Driving + t.OnDuty
}

type Remark struct {
	Time     string `json:"time"`
	Location string `json:"location"`
	Activity string `json:"activity"`
}

// LogSheet is one calendar day as produced by the trip-planning service.
// The renderer only reads it.
type LogSheet struct {
	Date       string         `json:"date"`
	DayNumber  int            `json:"day_number"`
	TotalMiles float64        `json:"total_miles"`
	Segments   []DutySegment  `json:"segments"`
	Totals     LogSheetTotals `json:"totals"`
	Remarks    []Remark       `json:"remarks"`
}

// TripSummary is the planning service's trip-level summary.
type TripSummary struct {
	TotalDistanceMiles float64 `json:"total_distance_miles"`
	TotalDurationHours float64 `json:"total_duration_hours"`
	TotalDays          int     `json:"total_days"`
	FuelStops          int     `json:"fuel_stops"`
	RestBreaks         int     `json:"rest_breaks"`
	RestStops          int     `json:"rest_stops"`
	CycleHoursAfter    float64 `json:"cycle_hours_after"`
}

// TripPlan is the subset of the planning service response this tool reads.
// Route geometry and stops are ignored.
type TripPlan struct {
	LogSheets []LogSheet   `json:"log_sheets"`
	Summary   *TripSummary `json:"summary,omitempty"`
}

// --- Template Structs ---

// Template is the optional chart template file. Unset fields fall back to
// the standard log geometry and palette.
type Template struct {
	Layout LayoutOptions `yaml:"layout" json:"layout"`
	Style  StyleOptions  `yaml:"style" json:"style"`
	Header HeaderOptions `yaml:"header" json:"header"`
}

type LayoutOptions struct {
	MarginLeft   *float64 `yaml:"margin_left" json:"margin_left"`
	MarginRight  *float64 `yaml:"margin_right" json:"margin_right"`
	MarginTop    *float64 `yaml:"margin_top" json:"margin_top"`
	MarginBottom *float64 `yaml:"margin_bottom" json:"margin_bottom"`
	LaneHeight   *float64 `yaml:"lane_height" json:"lane_height"`
	HourWidth    *float64 `yaml:"hour_width" json:"hour_width"`
}

type StyleOptions struct {
	FontFamily      string   `yaml:"font_family" json:"font_family"`
	Background      string   `yaml:"background" json:"background"`
	GridMajorColor  string   `yaml:"grid_major_color" json:"grid_major_color"`
	GridMinorColor  string   `yaml:"grid_minor_color" json:"grid_minor_color"`
	LabelColor      string   `yaml:"label_color" json:"label_color"`
	MutedColor      string   `yaml:"muted_color" json:"muted_color"`
	TotalColor      string   `yaml:"total_color" json:"total_color"`
	GrandTotalColor string   `yaml:"grand_total_color" json:"grand_total_color"`
	TraceWidth      *float64 `yaml:"trace_width" json:"trace_width"`
}

// HeaderOptions fills the HTML info bar fields the planning service does not supply.
type HeaderOptions struct {
	Truck   string `yaml:"truck" json:"truck"`
	Carrier string `yaml:"carrier" json:"carrier"`
}
