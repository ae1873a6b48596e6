package file_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"schedcal/internal/schedule/repository"
	"schedcal/internal/schedule/repository/file"
	"schedcal/pkg/calendar"
	"schedcal/pkg/log"
	"schedcal/pkg/timegrid"
)

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error", Mode: "debug"})
}

func mustDate(t *testing.T, year int, month time.Month, day int) calendar.Date {
	t.Helper()
	d, err := calendar.NewDate(year, month, day)
	if err != nil {
		t.Fatalf("NewDate: %v", err)
	}
	return d
}

func tod(hour, minute int) *timegrid.TimeOfDay {
	return &timegrid.TimeOfDay{Hour: hour, Minute: minute}
}

func newStore(t *testing.T) repository.Repository {
	t.Helper()
	repo, err := file.New(filepath.Join(t.TempDir(), "schedules.json"), testLogger())
	if err != nil {
		t.Fatalf("file.New: %v", err)
	}
	return repo
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newStore(t)
	date := mustDate(t, 2010, time.July, 10)

	created, err := repo.CreateSchedule(ctx, repository.CreateScheduleOptions{
		Memo: "dentist", Date: date, Start: tod(7, 0), End: tod(7, 30),
	})
	if err != nil {
		t.Fatalf("CreateSchedule: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("created schedule has no id")
	}
	if !created.Timed() {
		t.Errorf("created schedule should be timed")
	}

	got, err := repo.GetOneSchedule(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetOneSchedule: %v", err)
	}
	if got.ID != created.ID || got.Memo != "dentist" || got.Date != date {
		t.Errorf("GetOneSchedule = %+v, want created entity", got)
	}
	if got.Start == nil || got.Start.Hour != 7 || got.End.Minute != 30 {
		t.Errorf("time range not restored: %v-%v", got.Start, got.End)
	}

	missing, err := repo.GetOneSchedule(ctx, "no-such-id")
	if err != nil {
		t.Fatalf("GetOneSchedule missing: %v", err)
	}
	if missing.ID != "" {
		t.Errorf("expected zero value for unknown id, got %+v", missing)
	}
}

func TestListSchedulesOrdering(t *testing.T) {
	ctx := context.Background()
	repo := newStore(t)
	date := mustDate(t, 2010, time.July, 10)

	for _, opt := range []repository.CreateScheduleOptions{
		{Memo: "late", Date: date, Start: tod(20, 0), End: tod(21, 0)},
		{Memo: "note", Date: date},
		{Memo: "early", Date: date, Start: tod(8, 0), End: tod(9, 0)},
	} {
		if _, err := repo.CreateSchedule(ctx, opt); err != nil {
			t.Fatalf("CreateSchedule: %v", err)
		}
	}

	list, err := repo.ListSchedules(ctx, repository.ListSchedulesOptions{Date: date})
	if err != nil {
		t.Fatalf("ListSchedules: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	wantOrder := []string{"note", "early", "late"}
	for i, want := range wantOrder {
		if list[i].Memo != want {
			t.Errorf("position %d = %q, want %q", i, list[i].Memo, want)
		}
	}

	timed, err := repo.ListSchedules(ctx, repository.ListSchedulesOptions{Date: date, TimedOnly: true})
	if err != nil {
		t.Fatalf("ListSchedules timed: %v", err)
	}
	if len(timed) != 2 || timed[0].Memo != "early" {
		t.Errorf("timed listing = %v", timed)
	}

	other, err := repo.ListSchedules(ctx, repository.ListSchedulesOptions{Date: mustDate(t, 2010, time.July, 11)})
	if err != nil {
		t.Fatalf("ListSchedules other day: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("other day should be empty, got %d", len(other))
	}
}

func TestCountByDay(t *testing.T) {
	ctx := context.Background()
	repo := newStore(t)

	days := []calendar.Date{
		mustDate(t, 2010, time.July, 10),
		mustDate(t, 2010, time.July, 10),
		mustDate(t, 2010, time.July, 10),
		mustDate(t, 2010, time.July, 1),
		mustDate(t, 2010, time.June, 10), // different month, same day number
	}
	for _, d := range days {
		if _, err := repo.CreateSchedule(ctx, repository.CreateScheduleOptions{Memo: "x", Date: d}); err != nil {
			t.Fatalf("CreateSchedule: %v", err)
		}
	}

	counts, err := repo.CountByDay(ctx, 2010, time.July)
	if err != nil {
		t.Fatalf("CountByDay: %v", err)
	}
	if counts[10] != 3 || counts[1] != 1 {
		t.Errorf("counts = %v, want {1:1, 10:3}", counts)
	}
	if _, ok := counts[2]; ok {
		t.Errorf("day without schedules must be absent from counts")
	}
}

func TestListMonthSchedules(t *testing.T) {
	ctx := context.Background()
	repo := newStore(t)

	seed := []repository.CreateScheduleOptions{
		{Memo: "mid", Date: mustDate(t, 2010, time.July, 15)},
		{Memo: "first", Date: mustDate(t, 2010, time.July, 1)},
		{Memo: "timed", Date: mustDate(t, 2010, time.July, 1), Start: tod(9, 0), End: tod(10, 0)},
		{Memo: "other month", Date: mustDate(t, 2010, time.August, 1)},
	}
	for _, opt := range seed {
		if _, err := repo.CreateSchedule(ctx, opt); err != nil {
			t.Fatalf("CreateSchedule: %v", err)
		}
	}

	out, err := repo.ListMonthSchedules(ctx, 2010, time.July)
	if err != nil {
		t.Fatalf("ListMonthSchedules: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d schedules, want 3", len(out))
	}
	wantOrder := []string{"first", "timed", "mid"}
	for i, want := range wantOrder {
		if out[i].Memo != want {
			t.Errorf("out[%d].Memo = %q, want %q", i, out[i].Memo, want)
		}
	}
}

func TestDeleteSchedule(t *testing.T) {
	ctx := context.Background()
	repo := newStore(t)
	date := mustDate(t, 2010, time.July, 10)

	created, err := repo.CreateSchedule(ctx, repository.CreateScheduleOptions{Memo: "x", Date: date})
	if err != nil {
		t.Fatalf("CreateSchedule: %v", err)
	}

	if err := repo.DeleteSchedule(ctx, created.ID); err != nil {
		t.Fatalf("DeleteSchedule: %v", err)
	}
	got, _ := repo.GetOneSchedule(ctx, created.ID)
	if got.ID != "" {
		t.Errorf("schedule still present after delete")
	}

	// unknown id is a no-op
	if err := repo.DeleteSchedule(ctx, "no-such-id"); err != nil {
		t.Errorf("DeleteSchedule unknown id: %v", err)
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "schedules.json")

	repo, err := file.New(path, testLogger())
	if err != nil {
		t.Fatalf("file.New: %v", err)
	}
	date := mustDate(t, 2010, time.July, 10)
	created, err := repo.CreateSchedule(ctx, repository.CreateScheduleOptions{
		Memo: "persisted", Date: date, Start: tod(7, 0), End: tod(8, 0),
	})
	if err != nil {
		t.Fatalf("CreateSchedule: %v", err)
	}

	reopened, err := file.New(path, testLogger())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := reopened.GetOneSchedule(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetOneSchedule after reopen: %v", err)
	}
	if got.Memo != "persisted" || !got.Timed() {
		t.Errorf("reopened entity = %+v", got)
	}
}
