package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrWeekIndexOutOfRange is returned by WeekRow for indexes outside
// [1, number of weeks in the month]. Out-of-range access fails loudly
// instead of clamping to the nearest valid row.
var ErrWeekIndexOutOfRange = errors.New("week index out of range")

// DayCell is one day slot of a month grid.
type DayCell struct {
	Date Date
	// InMonth is false for leading/trailing cells that pad the grid to
	// whole weeks. Such cells render blank and non-clickable.
	InMonth bool
	// Count is the number of schedules on the day, for the badge.
	Count int
}

// WeekRow is one grid row: exactly seven consecutive days starting on the
// configured first weekday.
type WeekRow [7]DayCell

// MonthGrid is a whole month laid out in week rows, with the adjacent-month
// anchors used for prev/next navigation.
type MonthGrid struct {
	Anchor    Date
	Weeks     []WeekRow
	PrevMonth Date
	NextMonth Date
}

// Grid builds month and week layouts. The first-weekday offset is fixed per
// instance, so concurrent renders from distinct instances need no
// coordination.
type Grid struct {
	firstWeekday int // 0 = Monday .. 6 = Sunday
}

// NewGrid creates a Grid starting its rows on the given weekday offset,
// where 0 is Monday and 6 is Sunday.
func NewGrid(firstWeekday int) (*Grid, error) {
	if firstWeekday < 0 || firstWeekday > 6 {
		return nil, fmt.Errorf("first weekday must be in 0..6, got %d", firstWeekday)
	}
	return &Grid{firstWeekday: firstWeekday}, nil
}

// mondayIndex maps time.Weekday (Sunday=0) to the Monday-based 0..6 scale
// the grid rotates on.
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// MonthGrid lays out the month containing anchor as whole week rows. Rows
// run from the week containing the 1st through the week containing the last
// day of the month; days outside the month fill the edges with
// InMonth=false. counts maps day-of-month (1..31) to schedule count and may
// be nil.
func (g *Grid) MonthGrid(anchor Date, counts map[int]int) MonthGrid {
	first := Date{Year: anchor.Year, Month: anchor.Month, Day: 1}
	last := Date{Year: anchor.Year, Month: anchor.Month, Day: DaysIn(anchor.Year, anchor.Month)}

	lead := (mondayIndex(first.Weekday()) - g.firstWeekday + 7) % 7
	tail := (g.firstWeekday + 6 - mondayIndex(last.Weekday()) + 7) % 7

	day := first.AddDays(-lead)
	total := lead + last.Day + tail

	grid := MonthGrid{
		Anchor:    anchor,
		Weeks:     make([]WeekRow, 0, total/7),
		PrevMonth: anchor.PrevMonth(),
		NextMonth: anchor.NextMonth(),
	}

	var row WeekRow
	for i := 0; i < total; i++ {
		cell := DayCell{Date: day, InMonth: day.Month == anchor.Month && day.Year == anchor.Year}
		if cell.InMonth {
			cell.Count = counts[day.Day]
		}
		row[i%7] = cell
		if i%7 == 6 {
			grid.Weeks = append(grid.Weeks, row)
		}
		day = day.AddDays(1)
	}
	return grid
}

// WeekRow returns the 1-based week-th row of the anchor month's grid, or
// ErrWeekIndexOutOfRange.
func (g *Grid) WeekRow(anchor Date, week int) (WeekRow, error) {
	weeks := g.MonthGrid(anchor, nil).Weeks
	if week < 1 || week > len(weeks) {
		return WeekRow{}, fmt.Errorf("%w: %d of %d", ErrWeekIndexOutOfRange, week, len(weeks))
	}
	return weeks[week-1], nil
}

// WeekCount returns how many rows the anchor month's grid has (4 to 6).
func (g *Grid) WeekCount(anchor Date) int {
	return len(g.MonthGrid(anchor, nil).Weeks)
}

// Header rotates Monday-first weekday display names to the grid's first
// weekday, so the header row lines up with every cell column.
func (g *Grid) Header(names [7]string) [7]string {
	var out [7]string
	for i := 0; i < 7; i++ {
		out[i] = names[(g.firstWeekday+i)%7]
	}
	return out
}

// PrevWeekAnchor is the first day of the row shifted one week back. It may
// land in the previous month; week navigation crosses month boundaries on
// purpose.
func PrevWeekAnchor(row WeekRow) Date {
	return row[0].Date.AddDays(-7)
}

// NextWeekAnchor is the first day of the row shifted one week forward.
func NextWeekAnchor(row WeekRow) Date {
	return row[0].Date.AddDays(7)
}
