package usecase

import (
	"context"

	"schedcal/internal/schedule/repository"
	"schedcal/pkg/gcalendar"
	"schedcal/pkg/log"
)

// CalendarMirror is the slice of the Google Calendar client the use case
// needs; nil disables mirroring.
type CalendarMirror interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// implUseCase is the private implementation of schedule.UseCase.
type implUseCase struct {
	l    log.Logger
	repo repository.Repository

	mirror           CalendarMirror
	mirrorCalendarID string
	timezone         string
}

// New creates a new schedule UseCase implementation. mirror may be nil.
func New(l log.Logger, repo repository.Repository, mirror CalendarMirror, mirrorCalendarID, timezone string) *implUseCase {
	return &implUseCase{
		l:                l,
		repo:             repo,
		mirror:           mirror,
		mirrorCalendarID: mirrorCalendarID,
		timezone:         timezone,
	}
}
