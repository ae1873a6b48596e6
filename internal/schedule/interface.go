package schedule

import (
	"context"
	"time"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateScheduleInput) (CreateScheduleOutput, error)
	ListByDay(ctx context.Context, input ListByDayInput) (ListByDayOutput, error)
	// ListByMonth returns the whole month in day order, for the ICS feed.
	ListByMonth(ctx context.Context, year int, month time.Month) ([]Schedule, error)
	// CountByMonth returns day-of-month → schedule count for badge
	// rendering; days without schedules are absent.
	CountByMonth(ctx context.Context, year int, month time.Month) (map[int]int, error)
	Delete(ctx context.Context, id string) error
}
