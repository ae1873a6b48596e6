package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"schedcal/internal/middleware"
	scheduleHTTP "schedcal/internal/schedule/delivery/http"
	scheduleRepo "schedcal/internal/schedule/repository/file"
	scheduleUC "schedcal/internal/schedule/usecase"
	"schedcal/pkg/calendar"
	"schedcal/pkg/timegrid"
)

// setupScheduleDomain initializes the schedule domain and registers both
// its HTML pages and its JSON API routes.
func (srv *HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo, err := scheduleRepo.New(srv.storagePath, srv.l)
	if err != nil {
		return fmt.Errorf("open schedule store: %w", err)
	}

	// 2. UseCase
	var mirror scheduleUC.CalendarMirror
	if srv.mirror != nil {
		mirror = srv.mirror
	}
	uc := scheduleUC.New(srv.l, repo, mirror, srv.mirrorCalendarID, srv.calendarCfg.Timezone)

	// 3. HTTP Handler
	view, err := srv.viewConfig()
	if err != nil {
		return err
	}
	h := scheduleHTTP.New(srv.l, uc, view)

	// 4. Routes
	scheduleHTTP.RegisterPages(srv.gin, h, mw)
	scheduleHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Schedule domain registered")
	return nil
}

// viewConfig assembles the shared page rendering config from the calendar
// and time grid settings.
func (srv *HTTPServer) viewConfig() (scheduleHTTP.ViewConfig, error) {
	grid, err := calendar.NewGrid(srv.calendarCfg.FirstWeekday)
	if err != nil {
		return scheduleHTTP.ViewConfig{}, err
	}

	// The axis shows a full day starting at the configured hour, wrapping
	// past midnight.
	hours := make([]int, 24)
	for i := range hours {
		hours[i] = (srv.timeGridCfg.HoursStart + i) % 24
	}
	axis := timegrid.New(timegrid.Config{
		Hours:          hours,
		StepMinutes:    srv.timeGridCfg.StepMinutes,
		MinuteHeightPx: srv.timeGridCfg.MinuteHeightPx,
		ActiveColor:    srv.timeGridCfg.ActiveColor,
	})

	view := scheduleHTTP.ViewConfig{
		Grid:     grid,
		Axis:     axis,
		Location: srv.location,
	}
	copy(view.WeekdayNames[:], srv.calendarCfg.WeekdayNames)
	copy(view.MonthNames[:], srv.calendarCfg.MonthNames)
	return view, nil
}
