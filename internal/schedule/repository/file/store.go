// Package file implements the schedule Repository on a single JSON document,
// written atomically via a temp file. A store-wide RWMutex is the only
// coordination; request handlers never touch the file directly.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"schedcal/internal/schedule"
	"schedcal/internal/schedule/repository"
	"schedcal/pkg/calendar"
	"schedcal/pkg/log"
	"schedcal/pkg/timegrid"
)

const (
	tmpSuffix       = ".tmp"
	filePermissions = 0644

	dayKeyFormat = "%04d-%02d-%02d"
)

// record is the on-disk shape of one schedule.
type record struct {
	ID        string    `json:"id"`
	Memo      string    `json:"memo"`
	Start     string    `json:"start,omitempty"`
	End       string    `json:"end,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// document is the whole store: schedules bucketed by ISO day key.
type document struct {
	Days map[string][]record `json:"days"`
}

type implRepository struct {
	path string
	l    log.Logger

	mu  sync.RWMutex
	doc document
}

// New opens (or initializes) the JSON store at path.
func New(path string, l log.Logger) (repository.Repository, error) {
	r := &implRepository{
		path: path,
		l:    l,
		doc:  document{Days: map[string][]record{}},
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}
	if err := json.Unmarshal(data, &r.doc); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}
	if r.doc.Days == nil {
		r.doc.Days = map[string][]record{}
	}
	return r, nil
}

func dayKey(d calendar.Date) string {
	return fmt.Sprintf(dayKeyFormat, d.Year, int(d.Month), d.Day)
}

// persistLocked writes the document atomically. Caller must hold mu.
func (r *implRepository) persistLocked(ctx context.Context) error {
	data, err := json.MarshalIndent(r.doc, "", "  ")
	if err != nil {
		r.l.Errorf(ctx, "schedule/repository/file marshal: %v", err)
		return repository.ErrFailedToPersist
	}

	tmp := r.path + tmpSuffix
	if err := os.WriteFile(tmp, data, filePermissions); err != nil {
		r.l.Errorf(ctx, "schedule/repository/file write: %v", err)
		return repository.ErrFailedToPersist
	}
	if err := os.Rename(tmp, r.path); err != nil {
		r.l.Errorf(ctx, "schedule/repository/file rename: %v", err)
		return repository.ErrFailedToPersist
	}
	return nil
}

// CreateSchedule stores a new schedule and returns the created entity.
func (r *implRepository) CreateSchedule(ctx context.Context, opt repository.CreateScheduleOptions) (schedule.Schedule, error) {
	rec := record{
		ID:        uuid.NewString(),
		Memo:      opt.Memo,
		CreatedAt: time.Now().UTC(),
	}
	if opt.Start != nil && opt.End != nil {
		rec.Start = opt.Start.String()
		rec.End = opt.End.String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := dayKey(opt.Date)
	r.doc.Days[key] = append(r.doc.Days[key], rec)
	if err := r.persistLocked(ctx); err != nil {
		// roll the in-memory state back so memory matches disk
		recs := r.doc.Days[key]
		r.doc.Days[key] = recs[:len(recs)-1]
		return schedule.Schedule{}, err
	}

	return r.toEntity(ctx, key, rec), nil
}

// GetOneSchedule scans for the id. Zero value when not found, no error.
func (r *implRepository) GetOneSchedule(ctx context.Context, id string) (schedule.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for key, recs := range r.doc.Days {
		for _, rec := range recs {
			if rec.ID == id {
				return r.toEntity(ctx, key, rec), nil
			}
		}
	}
	return schedule.Schedule{}, nil
}

// ListSchedules returns one day's schedules, untimed first, then by start.
func (r *implRepository) ListSchedules(ctx context.Context, opt repository.ListSchedulesOptions) ([]schedule.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := dayKey(opt.Date)
	var out []schedule.Schedule
	for _, rec := range r.doc.Days[key] {
		s := r.toEntity(ctx, key, rec)
		if opt.TimedOnly && !s.Timed() {
			continue
		}
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case !a.Timed() && b.Timed():
			return true
		case a.Timed() && !b.Timed():
			return false
		case a.Timed() && b.Timed():
			return a.Start.Before(*b.Start)
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	})
	return out, nil
}

// ListMonthSchedules returns the whole month in day order, untimed first
// within each day.
func (r *implRepository) ListMonthSchedules(ctx context.Context, year int, month time.Month) ([]schedule.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))
	var out []schedule.Schedule
	for key, recs := range r.doc.Days {
		if len(key) != len(prefix)+2 || key[:len(prefix)] != prefix {
			continue
		}
		for _, rec := range recs {
			out = append(out, r.toEntity(ctx, key, rec))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Date != b.Date {
			return a.Date.Day < b.Date.Day
		}
		switch {
		case !a.Timed() && b.Timed():
			return true
		case a.Timed() && !b.Timed():
			return false
		case a.Timed() && b.Timed():
			return a.Start.Before(*b.Start)
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	})
	return out, nil
}

// CountByDay aggregates day-of-month → schedule count for one month.
func (r *implRepository) CountByDay(ctx context.Context, year int, month time.Month) (map[int]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))
	counts := map[int]int{}
	for key, recs := range r.doc.Days {
		if len(key) != len(prefix)+2 || key[:len(prefix)] != prefix {
			continue
		}
		day, err := strconv.Atoi(key[len(prefix):])
		if err != nil {
			r.l.Warnf(ctx, "schedule/repository/file: skipping malformed day key %q", key)
			continue
		}
		counts[day] += len(recs)
	}
	return counts, nil
}

// DeleteSchedule removes the schedule by id. Unknown ids are a no-op;
// existence checks belong to the use case.
func (r *implRepository) DeleteSchedule(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, recs := range r.doc.Days {
		for i, rec := range recs {
			if rec.ID != id {
				continue
			}
			r.doc.Days[key] = append(recs[:i:i], recs[i+1:]...)
			if len(r.doc.Days[key]) == 0 {
				delete(r.doc.Days, key)
			}
			if err := r.persistLocked(ctx); err != nil {
				r.doc.Days[key] = recs
				return err
			}
			return nil
		}
	}
	return nil
}

// toEntity converts a stored record back to the domain entity. Malformed
// time strings degrade to an untimed schedule rather than failing the page.
func (r *implRepository) toEntity(ctx context.Context, key string, rec record) schedule.Schedule {
	s := schedule.Schedule{
		ID:        rec.ID,
		Memo:      rec.Memo,
		CreatedAt: rec.CreatedAt,
	}

	var year, month, day int
	if _, err := fmt.Sscanf(key, "%d-%d-%d", &year, &month, &day); err == nil {
		if d, derr := calendar.NewDate(year, time.Month(month), day); derr == nil {
			s.Date = d
		}
	}

	if rec.Start != "" && rec.End != "" {
		start, serr := timegrid.ParseTimeOfDay(rec.Start)
		end, eerr := timegrid.ParseTimeOfDay(rec.End)
		if serr != nil || eerr != nil {
			r.l.Warnf(ctx, "schedule/repository/file: malformed time range on %s: %q-%q", rec.ID, rec.Start, rec.End)
			return s
		}
		s.Start, s.End = &start, &end
	}
	return s
}
