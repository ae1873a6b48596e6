package usecase

import (
	"time"

	"schedcal/pkg/gcalendar"
)

func gcalendarCreateRequest(calendarID, memo string, start, end time.Time, timezone string) gcalendar.CreateEventRequest {
	return gcalendar.CreateEventRequest{
		CalendarID: calendarID,
		Summary:    memo,
		StartTime:  start,
		EndTime:    end,
		Timezone:   timezone,
	}
}
