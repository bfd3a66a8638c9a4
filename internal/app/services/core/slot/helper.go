package slot

import (
	"strconv"
	"strings"
	"time"
)

// ParseClock parses "HH:MM", "H:MM" or "HH.MM" into a Clock.
func ParseClock(s string) (Clock, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", ":")
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return Clock{}, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 24 || m < 0 || m > 59 {
		return Clock{}, false
	}
	if h == 24 && m != 0 {
		return Clock{}, false
	}
	return Clock{H: h, M: m}, true
}

// ISOWeekday returns 1 for Monday through 7 for Sunday.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func atClock(day time.Time, c Clock, loc *time.Location) time.Time {
	d := day.In(loc)
	y, mo, dd := d.Date()
	return time.Date(y, mo, dd, c.H, c.M, 0, 0, loc)
}

func truncateToMinute(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, t.Hour(), t.Minute(), 0, 0, t.Location())
}

func startOfHour(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, t.Hour(), 0, 0, 0, t.Location())
}

func startOfDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}

// roundUpToBucket moves t to the nearest bucket boundary at or after it. Buckets
// are minutes 0, D, 2D, ... of the hour; past the last bucket it moves to the next hour.
func roundUpToBucket(t time.Time, slotMinutes int) time.Time {
	t = truncateToMinute(t)
	minute := t.Minute()
	if minute == 0 || (slotMinutes < 60 && minute%slotMinutes == 0) {
		return t
	}
	next := 60
	if slotMinutes < 60 {
		next = (minute/slotMinutes + 1) * slotMinutes
		if next > 60 {
			next = 60
		}
	}
	return startOfHour(t).Add(time.Duration(next) * time.Minute)
}

// roundDownToBucket moves t to the nearest bucket boundary at or before it.
func roundDownToBucket(t time.Time, slotMinutes int) time.Time {
	t = truncateToMinute(t)
	if slotMinutes >= 60 {
		return startOfHour(t)
	}
	return startOfHour(t).Add(time.Duration((t.Minute()/slotMinutes)*slotMinutes) * time.Minute)
}

// overlapsExclusion reports whether a slot shares any minute with the exclusion.
// Endpoints that only touch do not overlap, so back-to-back commitments keep
// the adjacent slot.
func overlapsExclusion(start, end time.Time, ex ExclusionInterval) bool {
	exStart := truncateToMinute(ex.Start)
	exEnd := truncateToMinute(ex.End)
	if !exEnd.After(exStart) {
		return false
	}
	start = truncateToMinute(start)
	end = truncateToMinute(end)
	if start.Equal(exStart) && end.Equal(exEnd) {
		return true
	}
	return start.Before(exEnd) && exStart.Before(end)
}

func isExcluded(start, end time.Time, exclusions []ExclusionInterval) bool {
	for _, ex := range exclusions {
		if overlapsExclusion(start, end, ex) {
			return true
		}
	}
	return false
}

// calendarDaysBetween counts the date changes between a and b in loc.
func calendarDaysBetween(a, b time.Time, loc *time.Location) int {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// exclusionsForDay keeps the exclusions that touch the calendar day of day in loc.
func exclusionsForDay(exclusions []ExclusionInterval, day time.Time, loc *time.Location) []ExclusionInterval {
	dayStart := startOfDay(day.In(loc))
	y, mo, d := dayStart.Date()
	dayEnd := time.Date(y, mo, d+1, 0, 0, 0, 0, loc)

	var out []ExclusionInterval
	for _, ex := range exclusions {
		if ex.Start.Before(dayEnd) && ex.End.After(dayStart) {
			out = append(out, ex)
			continue
		}
		if sameDate(ex.Start, dayStart, loc) {
			out = append(out, ex)
		}
	}
	return out
}

func sameDate(a, b time.Time, loc *time.Location) bool {
	return a.In(loc).Format("2006-01-02") == b.In(loc).Format("2006-01-02")
}
