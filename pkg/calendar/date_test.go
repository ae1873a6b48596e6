package calendar_test

import (
	"testing"
	"time"

	"schedcal/pkg/calendar"
)

func mustDate(t *testing.T, year int, month time.Month, day int) calendar.Date {
	t.Helper()
	d, err := calendar.NewDate(year, month, day)
	if err != nil {
		t.Fatalf("NewDate(%d, %d, %d): %v", year, month, day, err)
	}
	return d
}

func TestNewDate(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		day     int
		wantErr bool
	}{
		{name: "Normal day", year: 2010, month: time.July, day: 10},
		{name: "Leap day", year: 2020, month: time.February, day: 29},
		{name: "Leap day on non-leap year", year: 2021, month: time.February, day: 29, wantErr: true},
		{name: "Day 31 in 30-day month", year: 2021, month: time.April, day: 31, wantErr: true},
		{name: "Day zero", year: 2021, month: time.April, day: 0, wantErr: true},
		{name: "Month out of range", year: 2021, month: 13, day: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calendar.NewDate(tt.year, tt.month, tt.day)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewDate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name  string
		date  calendar.Date
		delta int
		want  calendar.Date
	}{
		{
			name:  "Forward one month",
			date:  mustDate(t, 2010, time.July, 10),
			delta: 1,
			want:  mustDate(t, 2010, time.August, 10),
		},
		{
			name:  "Back one month",
			date:  mustDate(t, 2010, time.July, 10),
			delta: -1,
			want:  mustDate(t, 2010, time.June, 10),
		},
		{
			name:  "Clamp Jan 31 to Feb 28",
			date:  mustDate(t, 2021, time.January, 31),
			delta: 1,
			want:  mustDate(t, 2021, time.February, 28),
		},
		{
			name:  "Clamp Jan 31 to Feb 29 on leap year",
			date:  mustDate(t, 2020, time.January, 31),
			delta: 1,
			want:  mustDate(t, 2020, time.February, 29),
		},
		{
			name:  "Across year end forward",
			date:  mustDate(t, 2020, time.December, 15),
			delta: 1,
			want:  mustDate(t, 2021, time.January, 15),
		},
		{
			name:  "Across year end backward",
			date:  mustDate(t, 2020, time.January, 15),
			delta: -1,
			want:  mustDate(t, 2019, time.December, 15),
		},
		{
			name:  "Many months backward",
			date:  mustDate(t, 2020, time.January, 31),
			delta: -13,
			want:  mustDate(t, 2018, time.December, 31),
		},
		{
			name:  "Exactly twelve months backward",
			date:  mustDate(t, 2020, time.January, 15),
			delta: -12,
			want:  mustDate(t, 2019, time.January, 15),
		},
		{
			name:  "Clamp backward into 30-day month",
			date:  mustDate(t, 2021, time.May, 31),
			delta: -1,
			want:  mustDate(t, 2021, time.April, 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calendar.AddMonths(tt.date, tt.delta)
			if got != tt.want {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", tt.date, tt.delta, got, tt.want)
			}
		})
	}
}

// The round trip restores the original date unless clamping occurred; with
// clamping it may land on an earlier day but never a different month.
func TestAddMonthsRoundTrip(t *testing.T) {
	exact := mustDate(t, 2010, time.July, 10)
	if got := calendar.AddMonths(calendar.AddMonths(exact, 5), -5); got != exact {
		t.Errorf("round trip without clamp = %v, want %v", got, exact)
	}

	clamped := mustDate(t, 2021, time.January, 31)
	forward := calendar.AddMonths(clamped, 1) // Feb 28
	back := calendar.AddMonths(forward, -1)
	if back.Month != time.January || back.Year != 2021 {
		t.Fatalf("round trip with clamp landed in %v, want January 2021", back)
	}
	if back.Day != 28 {
		t.Errorf("round trip with clamp day = %d, want 28", back.Day)
	}
}

func TestDateAddDays(t *testing.T) {
	d := mustDate(t, 2010, time.June, 28)
	if got := d.AddDays(7); got != mustDate(t, 2010, time.July, 5) {
		t.Errorf("AddDays(7) = %v, want 2010-07-05", got)
	}
	if got := d.AddDays(-1); got != mustDate(t, 2010, time.June, 27) {
		t.Errorf("AddDays(-1) = %v, want 2010-06-27", got)
	}
}

func TestDateString(t *testing.T) {
	if got := mustDate(t, 2010, time.July, 4).String(); got != "2010-07-04" {
		t.Errorf("String() = %q, want %q", got, "2010-07-04")
	}
}

func TestDaysIn(t *testing.T) {
	if got := calendar.DaysIn(2020, time.February); got != 29 {
		t.Errorf("DaysIn(2020, Feb) = %d, want 29", got)
	}
	if got := calendar.DaysIn(2021, time.February); got != 28 {
		t.Errorf("DaysIn(2021, Feb) = %d, want 28", got)
	}
	if got := calendar.DaysIn(2021, time.December); got != 31 {
		t.Errorf("DaysIn(2021, Dec) = %d, want 31", got)
	}
}
