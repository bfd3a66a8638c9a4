package availability

import (
	"meeting-scheduler-service/internal/app/models"
	"meeting-scheduler-service/internal/app/services/core/slot"
	"meeting-scheduler-service/internal/pkg/constvars"
	"meeting-scheduler-service/internal/pkg/dto/requests"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

type timeslotKey struct {
	startTime string
	endTime   string
	monthDay  string
}

func keyOf(ts requests.CanonicalTimeslot) timeslotKey {
	return timeslotKey{startTime: ts.StartTime, endTime: ts.EndTime, monthDay: ts.MonthDay}
}

func canonicalTimeslot(start, end time.Time, loc *time.Location) requests.CanonicalTimeslot {
	start = start.In(loc)
	end = end.In(loc)
	return requests.CanonicalTimeslot{
		DayOfWeek: strings.ToUpper(start.Weekday().String()),
		StartTime: start.Format(constvars.TimeslotClockLayout),
		EndTime:   end.Format(constvars.TimeslotClockLayout),
		MonthDay:  start.Format(constvars.TimeslotMonthDayLayout),
		Date:      start.Format(constvars.TimeslotDateLayout),
	}
}

// ToCanonicalTimeslots shapes available slots into catalog records in loc.
// An empty input yields an empty, non-nil list.
func ToCanonicalTimeslots(slots []slot.AvailableSlot, loc *time.Location) []requests.CanonicalTimeslot {
	timeslots := make([]requests.CanonicalTimeslot, 0, len(slots))
	for _, s := range slots {
		timeslots = append(timeslots, canonicalTimeslot(s.Start, s.End, loc))
	}
	return timeslots
}

// FilterCandidates keeps, in catalog order, the catalog entries whose
// (startTime, endTime, monthDay) matches an available timeslot.
func FilterCandidates(catalog, available []requests.CanonicalTimeslot) []requests.CanonicalTimeslot {
	free := make(map[timeslotKey]struct{}, len(available))
	for _, ts := range available {
		free[keyOf(ts)] = struct{}{}
	}

	candidates := make([]requests.CanonicalTimeslot, 0, len(catalog))
	for _, ts := range catalog {
		if _, ok := free[keyOf(ts)]; ok {
			candidates = append(candidates, ts)
		}
	}
	return candidates
}

// BuildTimeslotCatalog enumerates every slotMinutes-long timeslot that fits
// inside each calendar day the window touches in loc, one per starting minute.
// The generator anchors its grid on the work-hour start or on a bucket
// boundary of the window start, and either may fall on any minute, so the
// catalog carries every minute offset and the intersection with a
// participant's free slots is decided by availability alone.
func BuildTimeslotCatalog(hostID string, windowStart, windowEnd time.Time, loc *time.Location, slotMinutes int) []requests.CanonicalTimeslot {
	if slotMinutes <= 0 || slotMinutes > minutesPerDay || !windowEnd.After(windowStart) {
		return []requests.CanonicalTimeslot{}
	}
	y, mo, d := windowStart.In(loc).Date()
	ey, emo, ed := windowEnd.In(loc).Date()
	days := int(time.Date(ey, emo, ed, 0, 0, 0, 0, time.UTC).Sub(time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)).Hours()/24) + 1

	perDay := minutesPerDay - slotMinutes + 1
	catalog := make([]requests.CanonicalTimeslot, 0, days*perDay)
	for i := 0; i < days; i++ {
		for m := 0; m < perDay; m++ {
			from := time.Date(y, mo, d+i, 0, m, 0, 0, loc)
			to := time.Date(y, mo, d+i, 0, m+slotMinutes, 0, 0, loc)
			ts := canonicalTimeslot(from, to, loc)
			ts.HostID = hostID
			catalog = append(catalog, ts)
		}
	}
	return catalog
}

// ToWorkHourPreference converts a stored preference document. A weekday needs
// both a start and an end entry to override the default hours.
func ToWorkHourPreference(preference *models.UserPreference) slot.WorkHourPreference {
	workHours := slot.WorkHourPreference{}
	if preference == nil {
		return workHours
	}

	starts := make(map[int]models.DayTime, len(preference.StartTimes))
	for _, st := range preference.StartTimes {
		starts[st.Day] = st
	}
	for _, et := range preference.EndTimes {
		st, ok := starts[et.Day]
		if !ok || et.Day < 1 || et.Day > 7 {
			continue
		}
		workHours[et.Day] = slot.WorkHours{
			Start: slot.Clock{H: st.Hour, M: st.Minutes},
			End:   slot.Clock{H: et.Hour, M: et.Minutes},
		}
	}
	return workHours
}

func toExclusions(events []requests.CommittedEvent) []slot.ExclusionInterval {
	exclusions := make([]slot.ExclusionInterval, 0, len(events))
	for _, event := range events {
		exclusions = append(exclusions, slot.ExclusionInterval{Start: event.Start, End: event.End})
	}
	return exclusions
}
