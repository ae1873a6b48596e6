package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schedcal/internal/schedule"
	"schedcal/pkg/calendar"
	"schedcal/pkg/response"
)

// --- HTML pages ---

// MonthPage renders the simple month grid. Without :year/:month params it
// shows the current month.
func (h *handler) MonthPage(c *gin.Context) {
	h.renderMonth(c, baseCalendar)
}

// TimetableMonthPage renders the month grid of the timetable family.
func (h *handler) TimetableMonthPage(c *gin.Context) {
	h.renderMonth(c, baseTimetable)
}

func (h *handler) renderMonth(c *gin.Context, base string) {
	ctx := c.Request.Context()

	anchor := calendar.Date{Year: h.today().Year, Month: h.today().Month, Day: 1}
	if c.Param("year") != "" {
		var err error
		anchor, err = h.processMonthParams(c)
		if err != nil {
			h.renderError(c, err)
			return
		}
	}

	counts, err := h.uc.CountByMonth(ctx, anchor.Year, anchor.Month)
	if err != nil {
		h.l.Errorf(ctx, "uc.CountByMonth: %v", err)
		h.renderError(c, h.mapError(err))
		return
	}

	grid := h.view.Grid.MonthGrid(anchor, counts)
	c.HTML(http.StatusOK, "month.html", h.newMonthVM(base, grid))
}

// WeekPage renders a single week row of the simple family.
func (h *handler) WeekPage(c *gin.Context) {
	h.renderWeek(c, baseCalendar)
}

// TimetableWeekPage renders a single week row of the timetable family.
func (h *handler) TimetableWeekPage(c *gin.Context) {
	h.renderWeek(c, baseTimetable)
}

func (h *handler) renderWeek(c *gin.Context, base string) {
	ctx := c.Request.Context()

	anchor, err := h.processMonthParams(c)
	if err != nil {
		h.renderError(c, err)
		return
	}
	week, err := h.processWeekParam(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	counts, err := h.uc.CountByMonth(ctx, anchor.Year, anchor.Month)
	if err != nil {
		h.l.Errorf(ctx, "uc.CountByMonth: %v", err)
		h.renderError(c, h.mapError(err))
		return
	}

	// Counts only decorate in-month cells, so the row is rebuilt from the
	// decorated grid rather than a bare WeekRow call.
	grid := h.view.Grid.MonthGrid(anchor, counts)
	if week > len(grid.Weeks) {
		h.renderError(c, errBadWeek)
		return
	}

	c.HTML(http.StatusOK, "week.html", h.newWeekVM(base, anchor, week, grid.Weeks[week-1]))
}

// DayPage renders the simple day page: the day's schedule list.
func (h *handler) DayPage(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.processDayParams(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	out, err := h.uc.ListByDay(ctx, schedule.ListByDayInput{Date: date})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListByDay: %v", err)
		h.renderError(c, h.mapError(err))
		return
	}

	c.HTML(http.StatusOK, "day.html", h.newDayVM(baseCalendar, date, out.Schedules))
}

// TimetableDayPage renders the day page with the time axis: the schedule
// list plus one column per timed schedule.
func (h *handler) TimetableDayPage(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.processDayParams(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	out, err := h.uc.ListByDay(ctx, schedule.ListByDayInput{Date: date})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListByDay: %v", err)
		h.renderError(c, h.mapError(err))
		return
	}

	vm := h.newDayVM(baseTimetable, date, out.Schedules)
	vm.Grid = h.view.Axis.Render(timegridEvents(out.Schedules))
	c.HTML(http.StatusOK, "timetable_day.html", vm)
}

// NewSchedulePage renders the popup create form.
func (h *handler) NewSchedulePage(c *gin.Context) {
	date, err := h.processDayParams(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	base := baseCalendar
	if isTimetablePath(c) {
		base = baseTimetable
	}
	c.HTML(http.StatusOK, "schedule_new.html", h.newFormVM(base, date, createForm{}, ""))
}

// CreateFromForm handles the popup form POST. Success renders a page that
// closes the popup and reloads the opener; validation errors re-render the
// form with a message.
func (h *handler) CreateFromForm(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.processDayParams(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	base := baseCalendar
	if isTimetablePath(c) {
		base = baseTimetable
	}

	form, err := h.processCreateForm(c)
	if err != nil {
		h.rerenderForm(c, base, date, form, err)
		return
	}
	input, err := form.toInput(date)
	if err != nil {
		h.rerenderForm(c, base, date, form, err)
		return
	}

	if _, err := h.uc.Create(ctx, input); err != nil {
		switch err {
		case schedule.ErrInvalidTimeRange, schedule.ErrIncompleteTimeRange:
			h.rerenderForm(c, base, date, form, err)
		default:
			h.l.Errorf(ctx, "uc.Create: %v", err)
			h.renderError(c, h.mapError(err))
		}
		return
	}

	c.HTML(http.StatusOK, "close.html", nil)
}

func (h *handler) rerenderForm(c *gin.Context, base string, date calendar.Date, form createForm, err error) {
	c.HTML(http.StatusBadRequest, "schedule_new.html", h.newFormVM(base, date, form, err.Error()))
}

func isTimetablePath(c *gin.Context) bool {
	return len(c.FullPath()) >= len(baseTimetable) && c.FullPath()[:len(baseTimetable)] == baseTimetable
}

// --- JSON API ---

// APIList returns one day's schedules as JSON.
func (h *handler) APIList(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.ListByDay(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListByDay: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// APICreate creates a schedule from a JSON body.
func (h *handler) APICreate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(out))
}

// APIDelete removes a schedule by id.
func (h *handler) APIDelete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, response.NewHTTPError(400, "id is required"))
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
