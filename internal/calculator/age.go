package calculator

import "time"

// Age returns the age in fractional years at now:
// whole years + remaining months/12 + remaining days/365.
func Age(birthdate, now time.Time) float64 {
	years, months, days := elapsed(birthdate, now)
	return float64(years) + float64(months)/12.0 + float64(days)/365.0
}

// elapsed splits the calendar distance between two dates into years, months
// and days. A month is counted once the same day-of-month is reached, clamped
// to the last day of shorter months.
func elapsed(from, to time.Time) (years, months, days int) {
	from, to = dateOf(from), dateOf(to)
	if to.Before(from) {
		y, m, d := elapsed(to, from)
		return -y, -m, -d
	}

	total := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	anchor := addMonths(from, total)
	if anchor.After(to) {
		total--
		anchor = addMonths(from, total)
	}
	days = int(to.Sub(anchor).Hours() / 24)
	return total / 12, total % 12, days
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func addMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	day := t.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
