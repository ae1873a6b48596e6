package calendar

import (
	"fmt"
	"time"
)

// Date is a civil (year, month, day) value with no time-of-day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date and rejects combinations that do not name a real
// civil date (e.g. Feb 30). It never normalizes: day 31 in a 30-day month is
// an error, not the 1st of the next month.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("invalid month %d", int(month))
	}
	if day < 1 || day > DaysIn(year, month) {
		return Date{}, fmt.Errorf("invalid day %d for %d-%02d", day, year, int(month))
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// DateOf truncates a time.Time to its civil date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// day 0 of the next month normalizes to the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Time returns midnight UTC of the date. Used only for arithmetic;
// callers owning a timezone convert themselves.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of week.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// AddMonths adds delta months (signed) to d, clamping the day-of-month to
// the last valid day of the target month: Jan 31 + 1 month is Feb 28/29,
// never Mar 2. time.AddDate would roll over, which is exactly the behavior
// month navigation must not have.
func AddMonths(d Date, delta int) Date {
	month := int(d.Month) - 1 + delta
	year := d.Year + month/12
	month %= 12
	if month < 0 {
		// integer division truncates toward zero, so negative
		// offsets need one more year step back
		month += 12
		year--
	}
	m := time.Month(month + 1)
	day := d.Day
	if last := DaysIn(year, m); day > last {
		day = last
	}
	return Date{Year: year, Month: m, Day: day}
}

// PrevMonth returns the anchor one month earlier, day clamped.
func (d Date) PrevMonth() Date { return AddMonths(d, -1) }

// NextMonth returns the anchor one month later, day clamped.
func (d Date) NextMonth() Date { return AddMonths(d, 1) }
