package http

import (
	"fmt"
	"time"

	"schedcal/internal/schedule"
	"schedcal/pkg/calendar"
	"schedcal/pkg/timegrid"
)

// Page families share handlers; the base path picks the family.
const (
	baseCalendar  = "/calendar"
	baseTimetable = "/timetable"
)

// --- URL builders ---

func monthURL(base string, d calendar.Date) string {
	return fmt.Sprintf("%s/%d/%d", base, d.Year, int(d.Month))
}

func weekURL(base string, d calendar.Date, week int) string {
	return fmt.Sprintf("%s/week/%d", monthURL(base, d), week)
}

func dayURL(base string, d calendar.Date) string {
	return fmt.Sprintf("%s/%d/%d/%d", base, d.Year, int(d.Month), d.Day)
}

func newScheduleURL(base string, d calendar.Date) string {
	return dayURL(base, d) + "/new"
}

// weekRef locates the grid row containing d within d's own month, so week
// links stay valid when navigation crosses a month boundary.
func (h *handler) weekRef(d calendar.Date) (calendar.Date, int) {
	anchor := calendar.Date{Year: d.Year, Month: d.Month, Day: 1}
	grid := h.view.Grid.MonthGrid(anchor, nil)
	for i, row := range grid.Weeks {
		for _, cell := range row {
			if cell.Date == d {
				return anchor, i + 1
			}
		}
	}
	return anchor, 1
}

// --- HTML view models ---

type dayCellVM struct {
	Day     int
	InMonth bool
	Today   bool
	Count   int
	URL     string
}

type weekRowVM struct {
	Cells   [7]dayCellVM
	WeekURL string
}

type monthVM struct {
	Title     string
	Header    [7]string
	Weeks     []weekRowVM
	PrevURL   string
	NextURL   string
	TodayURL  string
	ExportURL string
	SwitchURL string
	Timetable bool
}

func (h *handler) monthTitle(d calendar.Date) string {
	return fmt.Sprintf("%s %d", h.view.MonthNames[int(d.Month)-1], d.Year)
}

// newDayCellVM leaves out-of-month cells blank: no day number, no count,
// no link.
func (h *handler) newDayCellVM(base string, cell calendar.DayCell, today calendar.Date) dayCellVM {
	if !cell.InMonth {
		return dayCellVM{}
	}
	return dayCellVM{
		Day:     cell.Date.Day,
		InMonth: true,
		Today:   cell.Date == today,
		Count:   cell.Count,
		URL:     dayURL(base, cell.Date),
	}
}

func (h *handler) newMonthVM(base string, grid calendar.MonthGrid) monthVM {
	today := h.today()

	vm := monthVM{
		Title:     h.monthTitle(grid.Anchor),
		Header:    h.view.Grid.Header(h.view.WeekdayNames),
		PrevURL:   monthURL(base, grid.PrevMonth),
		NextURL:   monthURL(base, grid.NextMonth),
		TodayURL:  monthURL(base, today),
		ExportURL: monthURL(baseCalendar, grid.Anchor) + "/export.ics",
		Timetable: base == baseTimetable,
	}
	if vm.Timetable {
		vm.SwitchURL = monthURL(baseCalendar, grid.Anchor)
	} else {
		vm.SwitchURL = monthURL(baseTimetable, grid.Anchor)
	}

	for i, row := range grid.Weeks {
		wr := weekRowVM{WeekURL: weekURL(base, grid.Anchor, i+1)}
		for j, cell := range row {
			wr.Cells[j] = h.newDayCellVM(base, cell, today)
		}
		vm.Weeks = append(vm.Weeks, wr)
	}
	return vm
}

type weekVM struct {
	Title     string
	Header    [7]string
	Cells     [7]dayCellVM
	PrevURL   string
	NextURL   string
	MonthURL  string
	SwitchURL string
	Timetable bool
}

func (h *handler) newWeekVM(base string, anchor calendar.Date, week int, row calendar.WeekRow) weekVM {
	today := h.today()

	prevAnchor, prevWeek := h.weekRef(calendar.PrevWeekAnchor(row))
	nextAnchor, nextWeek := h.weekRef(calendar.NextWeekAnchor(row))

	vm := weekVM{
		Title:     fmt.Sprintf("%s, week of %s", h.monthTitle(anchor), row[0].Date),
		Header:    h.view.Grid.Header(h.view.WeekdayNames),
		PrevURL:   weekURL(base, prevAnchor, prevWeek),
		NextURL:   weekURL(base, nextAnchor, nextWeek),
		MonthURL:  monthURL(base, anchor),
		Timetable: base == baseTimetable,
	}
	if vm.Timetable {
		vm.SwitchURL = weekURL(baseCalendar, anchor, week)
	} else {
		vm.SwitchURL = weekURL(baseTimetable, anchor, week)
	}

	for j, cell := range row {
		vm.Cells[j] = h.newDayCellVM(base, cell, today)
	}
	return vm
}

type scheduleVM struct {
	ID        string
	Memo      string
	TimeRange string
}

func newScheduleVM(s schedule.Schedule) scheduleVM {
	vm := scheduleVM{
		ID:   s.ID,
		Memo: s.Memo,
	}
	if s.Timed() {
		vm.TimeRange = fmt.Sprintf("%s - %s", s.Start, s.End)
	}
	return vm
}

type dayVM struct {
	Title     string
	Date      calendar.Date
	Schedules []scheduleVM
	NewURL    string
	MonthURL  string
	Timetable bool

	// Time axis, only populated on the timetable day page.
	Grid timegrid.Grid
}

func (h *handler) newDayVM(base string, date calendar.Date, schedules []schedule.Schedule) dayVM {
	vm := dayVM{
		Title:     fmt.Sprintf("%s %d, %d", h.view.MonthNames[int(date.Month)-1], date.Day, date.Year),
		Date:      date,
		NewURL:    newScheduleURL(base, date),
		MonthURL:  monthURL(base, calendar.Date{Year: date.Year, Month: date.Month, Day: 1}),
		Timetable: base == baseTimetable,
	}
	for _, s := range schedules {
		vm.Schedules = append(vm.Schedules, newScheduleVM(s))
	}
	return vm
}

func timegridEvents(schedules []schedule.Schedule) []timegrid.Event {
	var events []timegrid.Event
	for _, s := range schedules {
		if !s.Timed() {
			continue
		}
		events = append(events, timegrid.Event{
			Start: *s.Start,
			End:   *s.End,
			Text:  s.Memo,
		})
	}
	return events
}

type formVM struct {
	Title  string
	Action string
	Error  string
	Memo   string
	Start  string
	End    string
}

func (h *handler) newFormVM(base string, date calendar.Date, form createForm, errMsg string) formVM {
	return formVM{
		Title:  fmt.Sprintf("New schedule on %s", date),
		Action: dayURL(base, date),
		Error:  errMsg,
		Memo:   form.Memo,
		Start:  form.Start,
		End:    form.End,
	}
}

// --- JSON API DTOs ---

type scheduleResp struct {
	ID        string    `json:"id"`
	Memo      string    `json:"memo"`
	Date      string    `json:"date"`
	Start     string    `json:"start,omitempty"`
	End       string    `json:"end,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newScheduleResp(s schedule.Schedule) scheduleResp {
	resp := scheduleResp{
		ID:        s.ID,
		Memo:      s.Memo,
		Date:      s.Date.String(),
		CreatedAt: s.CreatedAt,
	}
	if s.Timed() {
		resp.Start = s.Start.String()
		resp.End = s.End.String()
	}
	return resp
}

type createResp struct {
	Schedule scheduleResp `json:"schedule"`
}

func (h *handler) newCreateResp(out schedule.CreateScheduleOutput) createResp {
	return createResp{Schedule: newScheduleResp(out.Schedule)}
}

type listResp struct {
	Schedules []scheduleResp `json:"schedules"`
}

func (h *handler) newListResp(out schedule.ListByDayOutput) listResp {
	schedules := make([]scheduleResp, len(out.Schedules))
	for i, s := range out.Schedules {
		schedules[i] = newScheduleResp(s)
	}
	return listResp{Schedules: schedules}
}
