package model

import "time"

// BirthdayWindow is an inclusive [start, end] range of calendar days that
// is compared by (month, day) only, so the stored birth year never matters.
// A raw date-range comparison against the birthday column would also compare
// the year and exclude anyone born before the window.
type BirthdayWindow struct {
	StartMonth int
	StartDay   int
	EndMonth   int
	EndDay     int
}

// NewBirthdayWindow builds the window covering today plus the given number
// of days, both ends inclusive. The end may fall in the next month or, at
// the end of December, in the next year.
func NewBirthdayWindow(today time.Time, days int) BirthdayWindow {
	end := today.AddDate(0, 0, days)
	return BirthdayWindow{
		StartMonth: int(today.Month()),
		StartDay:   today.Day(),
		EndMonth:   int(end.Month()),
		EndDay:     end.Day(),
	}
}

// SameMonth reports whether the window starts and ends in one month.
func (w BirthdayWindow) SameMonth() bool {
	return w.StartMonth == w.EndMonth
}

// Matches reports whether a birthday with the given month and day falls
// inside the window. A window spanning two months matches the tail of the
// first month or the head of the second; that same rule covers the
// December to January wrap. Feb 29 birthdays match only when Feb 29 is
// literally inside the window.
func (w BirthdayWindow) Matches(month, day int) bool {
	if w.SameMonth() {
		return month == w.StartMonth && day >= w.StartDay && day <= w.EndDay
	}
	return (month == w.StartMonth && day >= w.StartDay) ||
		(month == w.EndMonth && day <= w.EndDay)
}
