package usecase

import (
	"context"

	"schedcal/internal/schedule"
)

// Delete removes a schedule by id.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneSchedule(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneSchedule: %v", err)
		return err
	}
	if existing.ID == "" {
		return schedule.ErrScheduleNotFound
	}

	if err := uc.repo.DeleteSchedule(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteSchedule: %v", err)
		return err
	}
	return nil
}
