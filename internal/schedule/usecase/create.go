package usecase

import (
	"context"
	"time"

	"schedcal/internal/schedule"
	repo "schedcal/internal/schedule/repository"
)

// Create stores a new schedule after validating its time range. Timed
// schedules are mirrored to Google Calendar best-effort when a mirror is
// configured; a mirror failure never fails the create.
func (uc *implUseCase) Create(ctx context.Context, input schedule.CreateScheduleInput) (schedule.CreateScheduleOutput, error) {
	if (input.Start == nil) != (input.End == nil) {
		return schedule.CreateScheduleOutput{}, schedule.ErrIncompleteTimeRange
	}
	if input.Start != nil && !input.Start.Before(*input.End) {
		return schedule.CreateScheduleOutput{}, schedule.ErrInvalidTimeRange
	}

	created, err := uc.repo.CreateSchedule(ctx, repo.CreateScheduleOptions{
		Memo:  input.Memo,
		Date:  input.Date,
		Start: input.Start,
		End:   input.End,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateSchedule: %v", err)
		return schedule.CreateScheduleOutput{}, err
	}

	if created.Timed() && uc.mirror != nil {
		uc.mirrorCreate(ctx, created)
	}

	return schedule.CreateScheduleOutput{Schedule: created}, nil
}

func (uc *implUseCase) mirrorCreate(ctx context.Context, s schedule.Schedule) {
	loc, err := time.LoadLocation(uc.timezone)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create mirror: invalid timezone %q: %v", uc.timezone, err)
		return
	}

	start := time.Date(s.Date.Year, s.Date.Month, s.Date.Day, s.Start.Hour, s.Start.Minute, 0, 0, loc)
	end := time.Date(s.Date.Year, s.Date.Month, s.Date.Day, s.End.Hour, s.End.Minute, 0, 0, loc)

	if _, err := uc.mirror.CreateEvent(ctx, gcalendarCreateRequest(uc.mirrorCalendarID, s.Memo, start, end, uc.timezone)); err != nil {
		uc.l.Warnf(ctx, "uc.Create mirror: %v", err)
		return
	}
	uc.l.Infof(ctx, "schedule %s mirrored to Google Calendar", s.ID)
}
