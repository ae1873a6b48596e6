package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"schedcal/internal/schedule"
	"schedcal/pkg/calendar"
	"schedcal/pkg/response"
	"schedcal/pkg/timegrid"
)

var (
	errBadYearMonth = response.NewHTTPError(404, "no such month")
	errBadDay       = response.NewHTTPError(404, "no such day")
	errBadWeek      = response.NewHTTPError(404, "no such week")
)

// processMonthParams resolves :year/:month into the first day of that month.
func (h *handler) processMonthParams(c *gin.Context) (calendar.Date, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return calendar.Date{}, errBadYearMonth
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return calendar.Date{}, errBadYearMonth
	}

	anchor, err := calendar.NewDate(year, time.Month(month), 1)
	if err != nil {
		return calendar.Date{}, errBadYearMonth
	}
	return anchor, nil
}

// processDayParams resolves :year/:month/:day into a concrete date.
func (h *handler) processDayParams(c *gin.Context) (calendar.Date, error) {
	anchor, err := h.processMonthParams(c)
	if err != nil {
		return calendar.Date{}, err
	}
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		return calendar.Date{}, errBadDay
	}

	date, err := calendar.NewDate(anchor.Year, anchor.Month, day)
	if err != nil {
		return calendar.Date{}, errBadDay
	}
	return date, nil
}

// processWeekParam resolves the 1-based :week index.
func (h *handler) processWeekParam(c *gin.Context) (int, error) {
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil || week < 1 {
		return 0, errBadWeek
	}
	return week, nil
}

// --- Form DTO (popup create) ---

type createForm struct {
	Memo  string `form:"memo"  binding:"required,max=1000"`
	Start string `form:"start"`
	End   string `form:"end"`
}

func (h *handler) processCreateForm(c *gin.Context) (createForm, error) {
	var form createForm
	if err := c.ShouldBind(&form); err != nil {
		return form, response.NewHTTPError(400, "memo is required and at most 1000 characters")
	}
	return form, nil
}

// toInput parses the optional HH:MM fields. Empty strings mean an untimed
// note; a lone start or end is passed through so the use case rejects it.
func (f createForm) toInput(date calendar.Date) (schedule.CreateScheduleInput, error) {
	input := schedule.CreateScheduleInput{
		Date: date,
		Memo: f.Memo,
	}

	if f.Start != "" {
		start, err := timegrid.ParseTimeOfDay(f.Start)
		if err != nil {
			return input, response.NewHTTPError(400, "start must be HH:MM")
		}
		input.Start = &start
	}
	if f.End != "" {
		end, err := timegrid.ParseTimeOfDay(f.End)
		if err != nil {
			return input, response.NewHTTPError(400, "end must be HH:MM")
		}
		input.End = &end
	}
	return input, nil
}

// --- JSON API DTOs ---

type createReq struct {
	Year  int    `json:"year"  binding:"required"`
	Month int    `json:"month" binding:"required,min=1,max=12"`
	Day   int    `json:"day"   binding:"required,min=1,max=31"`
	Memo  string `json:"memo"  binding:"required,max=1000"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, response.NewHTTPError(400, err.Error())
	}
	return req, nil
}

func (r createReq) toInput() (schedule.CreateScheduleInput, error) {
	date, err := calendar.NewDate(r.Year, time.Month(r.Month), r.Day)
	if err != nil {
		return schedule.CreateScheduleInput{}, response.NewHTTPError(400, "invalid date")
	}
	form := createForm{Memo: r.Memo, Start: r.Start, End: r.End}
	return form.toInput(date)
}

type listReq struct {
	Year      int  `form:"year"  binding:"required"`
	Month     int  `form:"month" binding:"required,min=1,max=12"`
	Day       int  `form:"day"   binding:"required,min=1,max=31"`
	TimedOnly bool `form:"timed_only"`
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, response.NewHTTPError(400, err.Error())
	}
	return req, nil
}

func (r listReq) toInput() (schedule.ListByDayInput, error) {
	date, err := calendar.NewDate(r.Year, time.Month(r.Month), r.Day)
	if err != nil {
		return schedule.ListByDayInput{}, response.NewHTTPError(400, "invalid date")
	}
	return schedule.ListByDayInput{Date: date, TimedOnly: r.TimedOnly}, nil
}
