package http

import (
	"fmt"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/gin-gonic/gin"

	"schedcal/internal/schedule"
)

// ExportICS serves the month's schedules as an iCalendar feed. Timed
// schedules become timed VEVENTs in the configured timezone, untimed ones
// become all-day events.
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	anchor, err := h.processMonthParams(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	schedules, err := h.uc.ListByMonth(ctx, anchor.Year, anchor.Month)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListByMonth: %v", err)
		h.renderError(c, h.mapError(err))
		return
	}

	body := h.buildMonthICS(schedules)
	filename := fmt.Sprintf("schedules-%04d-%02d.ics", anchor.Year, int(anchor.Month))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

func (h *handler) buildMonthICS(schedules []schedule.Schedule) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//schedcal//schedule export//EN")

	for _, s := range schedules {
		e := cal.AddEvent(s.ID)
		e.SetCreatedTime(s.CreatedAt)
		e.SetDtStampTime(s.CreatedAt)
		e.SetSummary(s.Memo)

		d := s.Date
		if s.Timed() {
			start := time.Date(d.Year, d.Month, d.Day, s.Start.Hour, s.Start.Minute, 0, 0, h.view.Location)
			end := time.Date(d.Year, d.Month, d.Day, s.End.Hour, s.End.Minute, 0, 0, h.view.Location)
			e.SetStartAt(start)
			e.SetEndAt(end)
		} else {
			e.SetAllDayStartAt(d.Time())
			e.SetAllDayEndAt(d.AddDays(1).Time())
		}
	}

	return cal.Serialize()
}
