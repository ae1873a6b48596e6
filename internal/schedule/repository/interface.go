package repository

import (
	"context"
	"time"

	"schedcal/internal/schedule"
)

// Repository defines all data access methods for the Schedule entity.
type Repository interface {
	CreateSchedule(ctx context.Context, opt CreateScheduleOptions) (schedule.Schedule, error)
	// GetOneSchedule returns the zero value (ID == "") when the id is
	// unknown; not-found is not an error at this layer.
	GetOneSchedule(ctx context.Context, id string) (schedule.Schedule, error)
	ListSchedules(ctx context.Context, opt ListSchedulesOptions) ([]schedule.Schedule, error)
	// ListMonthSchedules returns every schedule of one calendar month in
	// day order, for feed exports.
	ListMonthSchedules(ctx context.Context, year int, month time.Month) ([]schedule.Schedule, error)
	CountByDay(ctx context.Context, year int, month time.Month) (map[int]int, error)
	DeleteSchedule(ctx context.Context, id string) error
}
