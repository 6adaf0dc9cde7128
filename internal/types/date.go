package types

import "time"

// AddClampedDate adds the given years, months and days to a time, clamping
// the day-of-month to the last valid day of the target month. Plain
// time.AddDate would roll Jan 31 + 1 month over into March; repayment due
// dates must land inside the intended month instead.
func AddClampedDate(t time.Time, years, months, days int) time.Time {
	y, m, d := t.Date()
	h, min, sec := t.Clock()

	newY := y + years
	newM := time.Month(int(m) + months)

	// If we move beyond December, it adjusts correctly,
	// for example adding 2 months to November will land on January next year.
	for newM > 12 {
		newM -= 12
		newY++
	}
	for newM < 1 {
		newM += 12
		newY--
	}

	// Find the last valid day of the new month
	firstOfNextMonth := time.Date(newY, newM+1, 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfNextMonth.Add(-24 * time.Hour).Day()

	newD := d + days
	if newD > lastDay {
		// Clamp to last valid day
		newD = lastDay
	}

	return time.Date(newY, newM, newD, h, min, sec, t.Nanosecond(), t.Location())
}

// DaysBetween counts whole calendar days from start to end, day boundaries
// taken in the timezone of start. Negative when end precedes start. Counting
// walks day by day so DST transitions do not skew the result.
func DaysBetween(start, end time.Time) int {
	loc := start.Location()
	if end.Before(start) {
		return -DaysBetween(end.In(loc), start)
	}

	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	endInLoc := end.In(loc)
	endDay := time.Date(endInLoc.Year(), endInLoc.Month(), endInLoc.Day(), 0, 0, 0, 0, loc)

	days := 0
	current := startDay
	for current.Before(endDay) {
		days++
		// Add 24 hours, then normalize to midnight to handle DST
		next := current.Add(24 * time.Hour)
		current = time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, loc)
	}

	return days
}
