package usecase

import (
	"context"
	"time"

	"schedcal/internal/schedule"
	repo "schedcal/internal/schedule/repository"
)

// ListByDay returns one day's schedules, untimed notes first, timed ones in
// start-time order.
func (uc *implUseCase) ListByDay(ctx context.Context, input schedule.ListByDayInput) (schedule.ListByDayOutput, error) {
	schedules, err := uc.repo.ListSchedules(ctx, repo.ListSchedulesOptions{
		Date:      input.Date,
		TimedOnly: input.TimedOnly,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByDay ListSchedules: %v", err)
		return schedule.ListByDayOutput{}, err
	}

	return schedule.ListByDayOutput{Schedules: schedules}, nil
}

// ListByMonth returns every schedule of one calendar month in day order.
func (uc *implUseCase) ListByMonth(ctx context.Context, year int, month time.Month) ([]schedule.Schedule, error) {
	schedules, err := uc.repo.ListMonthSchedules(ctx, year, month)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByMonth ListMonthSchedules: %v", err)
		return nil, err
	}
	return schedules, nil
}

// CountByMonth returns the day-of-month → count map for badge rendering.
func (uc *implUseCase) CountByMonth(ctx context.Context, year int, month time.Month) (map[int]int, error) {
	counts, err := uc.repo.CountByDay(ctx, year, month)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CountByMonth CountByDay: %v", err)
		return nil, err
	}
	return counts, nil
}
