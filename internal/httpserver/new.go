package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"schedcal/config"
	"schedcal/pkg/gcalendar"
	"schedcal/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	rateLimitPerMin int

	// Schedule domain
	storagePath string
	calendarCfg config.CalendarConfig
	timeGridCfg config.TimeGridConfig
	location    *time.Location

	// Optional Google Calendar mirror
	mirror           *gcalendar.Client
	mirrorCalendarID string
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	RateLimitPerMin int

	StoragePath string
	Calendar    config.CalendarConfig
	TimeGrid    config.TimeGridConfig

	// Mirror may be nil; timed schedules are then not mirrored.
	Mirror           *gcalendar.Client
	MirrorCalendarID string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	location, err := time.LoadLocation(cfg.Calendar.Timezone)
	if err != nil {
		return nil, err
	}

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		rateLimitPerMin:  cfg.RateLimitPerMin,
		storagePath:      cfg.StoragePath,
		calendarCfg:      cfg.Calendar,
		timeGridCfg:      cfg.TimeGrid,
		location:         location,
		mirror:           cfg.Mirror,
		mirrorCalendarID: cfg.MirrorCalendarID,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.storagePath == "" {
		return errors.New("storage path is required")
	}
	return nil
}
