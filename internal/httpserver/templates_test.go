package httpserver

import (
	"bytes"
	"html/template"
	"strings"
	"testing"
)

type tplCell struct {
	Day     int
	InMonth bool
	Today   bool
	Count   int
	URL     string
}

type tplWeek struct {
	WeekURL string
	Cells   []tplCell
}

func pageTemplates(t *testing.T) *template.Template {
	t.Helper()
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		t.Fatalf("ParseFS: %v", err)
	}
	return tmpl
}

func render(t *testing.T, tmpl *template.Template, name string, data any) string {
	t.Helper()
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		t.Fatalf("ExecuteTemplate(%s): %v", name, err)
	}
	return buf.String()
}

// Leading and trailing pad cells of a month must render blank: no day
// number, no link, no badge. Only in-month cells are clickable.
func TestMonthTemplateBlanksPadCells(t *testing.T) {
	tmpl := pageTemplates(t)

	data := struct {
		Title                                           string
		Header                                          []string
		Weeks                                           []tplWeek
		PrevURL, NextURL, TodayURL, ExportURL, SwitchURL string
		Timetable                                       bool
	}{
		Title:  "July 2010",
		Header: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Weeks: []tplWeek{{
			WeekURL: "/calendar/2010/7/week/1",
			Cells: []tplCell{
				// pad cell carrying a URL on purpose: the template must
				// not render it
				{Day: 28, InMonth: false, URL: "/calendar/2010/6/28"},
				{Day: 1, InMonth: true, Count: 2, URL: "/calendar/2010/7/1"},
			},
		}},
	}

	out := render(t, tmpl, "month.html", data)

	if strings.Contains(out, "2010/6/28") {
		t.Errorf("pad cell rendered a day link:\n%s", out)
	}
	if strings.Contains(out, ">28<") {
		t.Errorf("pad cell rendered its day number:\n%s", out)
	}
	if !strings.Contains(out, `<a href="/calendar/2010/7/1">1</a>`) {
		t.Errorf("in-month cell lost its day link:\n%s", out)
	}
	if !strings.Contains(out, ">2</span>") {
		t.Errorf("in-month cell lost its count badge:\n%s", out)
	}
}

func TestWeekTemplateBlanksPadCells(t *testing.T) {
	tmpl := pageTemplates(t)

	data := struct {
		Title                                  string
		Header                                 []string
		Cells                                  []tplCell
		PrevURL, NextURL, MonthURL, SwitchURL string
		Timetable                              bool
	}{
		Title:  "July 2010, week of 2010-06-28",
		Header: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Cells: []tplCell{
			{Day: 28, InMonth: false, URL: "/calendar/2010/6/28"},
			{Day: 1, InMonth: true, URL: "/calendar/2010/7/1"},
		},
	}

	out := render(t, tmpl, "week.html", data)

	if strings.Contains(out, "2010/6/28") || strings.Contains(out, ">28<") {
		t.Errorf("pad cell must render blank:\n%s", out)
	}
	if !strings.Contains(out, `<a href="/calendar/2010/7/1">1</a>`) {
		t.Errorf("in-month cell lost its day link:\n%s", out)
	}
}
