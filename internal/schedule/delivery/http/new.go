package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"schedcal/internal/schedule"
	"schedcal/pkg/calendar"
	"schedcal/pkg/log"
	"schedcal/pkg/timegrid"
)

// Handler is the public interface for the schedule HTTP delivery layer.
// It serves both the HTML calendar pages and the JSON API.
type Handler interface {
	MonthPage(c *gin.Context)
	WeekPage(c *gin.Context)
	DayPage(c *gin.Context)
	TimetableMonthPage(c *gin.Context)
	TimetableWeekPage(c *gin.Context)
	TimetableDayPage(c *gin.Context)
	NewSchedulePage(c *gin.Context)
	CreateFromForm(c *gin.Context)
	ExportICS(c *gin.Context)

	APIList(c *gin.Context)
	APICreate(c *gin.Context)
	APIDelete(c *gin.Context)
}

// ViewConfig carries the rendering knobs shared by all calendar pages.
type ViewConfig struct {
	Grid *calendar.Grid
	Axis *timegrid.Axis

	// WeekdayNames are Monday-first; the grid rotates them to the
	// configured first weekday.
	WeekdayNames [7]string
	// MonthNames are January-first.
	MonthNames [12]string

	// Location resolves "today" for highlighting and default pages.
	Location *time.Location
}

type handler struct {
	l    log.Logger
	uc   schedule.UseCase
	view ViewConfig
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase, view ViewConfig) *handler {
	return &handler{
		l:    l,
		uc:   uc,
		view: view,
	}
}

func (h *handler) today() calendar.Date {
	return calendar.DateOf(time.Now().In(h.view.Location))
}
