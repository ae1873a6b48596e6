package schedule

import (
	"time"

	"schedcal/pkg/calendar"
	"schedcal/pkg/timegrid"
)

// --- Schedule Domain Model ---

// Schedule is a free-text note attached to a calendar day, optionally with a
// start/end time within that day.
type Schedule struct {
	ID        string
	Memo      string
	Date      calendar.Date
	Start     *timegrid.TimeOfDay
	End       *timegrid.TimeOfDay
	CreatedAt time.Time
}

// Timed reports whether the schedule carries a time range.
func (s Schedule) Timed() bool {
	return s.Start != nil && s.End != nil
}

// --- UseCase Inputs ---

type CreateScheduleInput struct {
	Date  calendar.Date
	Memo  string
	Start *timegrid.TimeOfDay
	End   *timegrid.TimeOfDay
}

type ListByDayInput struct {
	Date calendar.Date
	// TimedOnly restricts the listing to schedules with a time range,
	// for the time-axis page.
	TimedOnly bool
}

// --- UseCase Outputs ---

type CreateScheduleOutput struct {
	Schedule Schedule
}

type ListByDayOutput struct {
	Schedules []Schedule
}
