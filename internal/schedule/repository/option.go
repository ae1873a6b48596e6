package repository

import (
	"schedcal/pkg/calendar"
	"schedcal/pkg/timegrid"
)

// CreateScheduleOptions holds parameters for storing a new schedule.
type CreateScheduleOptions struct {
	Memo  string
	Date  calendar.Date
	Start *timegrid.TimeOfDay
	End   *timegrid.TimeOfDay
}

// ListSchedulesOptions holds filter parameters for listing schedules of one
// day. Results are ordered untimed-first, then by start time.
type ListSchedulesOptions struct {
	Date      calendar.Date
	TimedOnly bool
}
