package http

import (
	"github.com/gin-gonic/gin"

	"schedcal/internal/middleware"
)

// RegisterPages maps the HTML calendar pages. Mutating routes go through
// the rate limiter; read-only pages do not.
func RegisterPages(r *gin.Engine, h *handler, mw middleware.Middleware) {
	r.GET("/", h.MonthPage)

	cal := r.Group(baseCalendar)
	{
		cal.GET("/:year/:month", h.MonthPage)
		cal.GET("/:year/:month/export.ics", h.ExportICS)
		cal.GET("/:year/:month/week/:week", h.WeekPage)
		cal.GET("/:year/:month/:day", h.DayPage)
		cal.GET("/:year/:month/:day/new", h.NewSchedulePage)
		cal.POST("/:year/:month/:day", mw.RateLimit(), h.CreateFromForm)
	}

	tt := r.Group(baseTimetable)
	{
		tt.GET("/:year/:month", h.TimetableMonthPage)
		tt.GET("/:year/:month/week/:week", h.TimetableWeekPage)
		tt.GET("/:year/:month/:day", h.TimetableDayPage)
		tt.GET("/:year/:month/:day/new", h.NewSchedulePage)
		tt.POST("/:year/:month/:day", mw.RateLimit(), h.CreateFromForm)
	}
}

// RegisterRoutes maps the JSON API under the given group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	schedules := rg.Group("/schedules")
	{
		schedules.GET("", h.APIList)
		schedules.POST("", mw.RateLimit(), h.APICreate)
		schedules.DELETE("/:id", mw.RateLimit(), h.APIDelete)
	}
}
