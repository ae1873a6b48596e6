// Package timegrid renders a day's timed events onto a fixed vertical time
// axis: one hour-label column plus one full-height column per event, divided
// into constant-height step cells.
package timegrid

import (
	"fmt"
	"strconv"
	"strings"
)

// Defaults applied by New when the corresponding Config field is unset.
const (
	DefaultStepMinutes    = 1
	DefaultMinuteHeightPx = 1
	DefaultActiveColor    = "bg-info"

	minutesPerHour = 60
)

// TimeOfDay is a wall-clock time within a day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTimeOfDay validates hour and minute.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %02d:%02d", hour, minute)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ParseTimeOfDay parses "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}
	return NewTimeOfDay(hour, minute)
}

// minutes is the offset from midnight, the scale cells are compared on.
func (t TimeOfDay) minutes() int {
	return t.Hour*minutesPerHour + t.Minute
}

// Before reports whether t is earlier than o.
func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.minutes() < o.minutes()
}

// String renders as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Event is the shape the renderer needs: a within-day interval and display
// text. Callers map their own records onto it; the renderer never mutates or
// stores events. End is exclusive; an event with End <= Start simply covers
// no cells.
type Event struct {
	Start TimeOfDay
	End   TimeOfDay
	Text  string
}

// Cell is one step slot of an event column.
type Cell struct {
	HeightPx     int
	HourBoundary bool   // minute == 0, drawn with a separator line
	Active       bool   // the event covers this slot
	Tooltip      string // set on the first active cell only
}

// HourLabel is one entry of the left-hand hour column.
type HourLabel struct {
	Hour     int
	HeightPx int
}

// Column is one event's full-height strip of cells.
type Column struct {
	Cells []Cell
}

// Grid is the rendered time axis ready for template embedding.
type Grid struct {
	HourLabels    []HourLabel
	Columns       []Column
	TotalHeightPx int
	ActiveColor   string
}

// Config holds the per-axis settings, fixed for the axis lifetime.
type Config struct {
	// Hours is the ordered list of hour labels. It need not be contiguous
	// or start at zero: 6..23 followed by 0..5 shows a day starting at
	// 06:00. Nil means 0..23.
	Hours []int
	// StepMinutes is the sub-division granularity. Smaller steps mean
	// finer coloring and more cells at the same total height.
	StepMinutes int
	// MinuteHeightPx is the pixel height of one minute.
	MinuteHeightPx int
	// ActiveColor is the CSS class token applied to covered cells.
	ActiveColor string
}

// Axis renders day schedules. Configuration is immutable after New, so one
// axis may serve concurrent renders.
type Axis struct {
	hours        []int
	step         int
	minuteHeight int
	color        string
}

// New creates an Axis, filling unset config fields with defaults.
func New(cfg Config) *Axis {
	a := &Axis{
		hours:        cfg.Hours,
		step:         cfg.StepMinutes,
		minuteHeight: cfg.MinuteHeightPx,
		color:        cfg.ActiveColor,
	}
	if a.hours == nil {
		a.hours = make([]int, 24)
		for i := range a.hours {
			a.hours[i] = i
		}
	}
	if a.step <= 0 {
		a.step = DefaultStepMinutes
	}
	if a.minuteHeight <= 0 {
		a.minuteHeight = DefaultMinuteHeightPx
	}
	if a.color == "" {
		a.color = DefaultActiveColor
	}
	return a
}

// Hours returns a copy of the configured hour sequence.
func (a *Axis) Hours() []int {
	out := make([]int, len(a.hours))
	copy(out, a.hours)
	return out
}

// HourHeightPx is the height of one hour label.
func (a *Axis) HourHeightPx() int {
	return a.minuteHeight * minutesPerHour
}

// TotalHeightPx is the fixed height of the label column and of every event
// column, independent of step size and activity.
func (a *Axis) TotalHeightPx() int {
	return a.HourHeightPx() * len(a.hours)
}

// Render lays the events out on the axis. Each event gets its own column
// covering the full hour range; a cell is active when the event interval
// covers its start instant (half-open, so the cell at End stays blank). The
// first active cell of a column carries the event text as tooltip so a
// multi-cell event produces a single tooltip widget.
func (a *Axis) Render(events []Event) Grid {
	grid := Grid{
		HourLabels:    make([]HourLabel, 0, len(a.hours)),
		Columns:       make([]Column, 0, len(events)),
		TotalHeightPx: a.TotalHeightPx(),
		ActiveColor:   a.color,
	}

	for _, hour := range a.hours {
		grid.HourLabels = append(grid.HourLabels, HourLabel{Hour: hour, HeightPx: a.HourHeightPx()})
	}

	cellsPerHour := (minutesPerHour + a.step - 1) / a.step
	for _, ev := range events {
		col := Column{Cells: make([]Cell, 0, cellsPerHour*len(a.hours))}
		start, end := ev.Start.minutes(), ev.End.minutes()
		tooltipPlaced := false

		for _, hour := range a.hours {
			for minute := 0; minute < minutesPerHour; minute += a.step {
				// The last cell of an hour may span less than a full
				// step, keeping every column at the fixed total height.
				span := a.step
				if minute+span > minutesPerHour {
					span = minutesPerHour - minute
				}
				now := hour*minutesPerHour + minute
				cell := Cell{
					HeightPx:     a.minuteHeight * span,
					HourBoundary: minute == 0,
					Active:       start <= now && now < end,
				}
				if cell.Active && !tooltipPlaced {
					cell.Tooltip = ev.Text
					tooltipPlaced = true
				}
				col.Cells = append(col.Cells, cell)
			}
		}
		grid.Columns = append(grid.Columns, col)
	}

	return grid
}
