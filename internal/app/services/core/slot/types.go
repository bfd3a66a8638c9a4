package slot

import (
	"meeting-scheduler-service/internal/pkg/constvars"
	"time"
)

// Clock holds a local wall time (hour and minute).
type Clock struct {
	H int
	M int
}

func (c Clock) minutesOfDay() int {
	return c.H*60 + c.M
}

// WorkHours defines an inclusive start and exclusive end wall-clock window for a single day.
type WorkHours struct {
	Start Clock
	End   Clock
}

// WorkHourPreference maps an ISO weekday (1 = Monday, 7 = Sunday) to its working hours.
// Weekdays without an entry fall back to DefaultWorkHours.
type WorkHourPreference map[int]WorkHours

// DefaultWorkHours is 08:00 to 20:00.
func DefaultWorkHours() WorkHours {
	return WorkHours{
		Start: Clock{H: constvars.DefaultWorkStartHour, M: constvars.DefaultWorkStartMinute},
		End:   Clock{H: constvars.DefaultWorkEndHour, M: constvars.DefaultWorkEndMinute},
	}
}

// ForISOWeekday returns the working hours for the given ISO weekday.
func (p WorkHourPreference) ForISOWeekday(isoWeekday int) WorkHours {
	if hours, ok := p[isoWeekday]; ok {
		return hours
	}
	return DefaultWorkHours()
}

// ExclusionInterval is an immovable commitment.
type ExclusionInterval struct {
	Start time.Time
	End   time.Time
}

// AvailableSlot is a free slot whose length equals the requested granularity.
type AvailableSlot struct {
	ID    string
	Start time.Time
	End   time.Time
}

// DayRequest holds the inputs for generating the slots of one calendar day.
type DayRequest struct {
	SlotMinutes int
	// Day anchors the calendar day. On the first day of a window it is the window start.
	Day        time.Time
	Location   *time.Location
	Preference WorkHourPreference
	Exclusions []ExclusionInterval
	IsFirstDay bool
	IsLastDay  bool
	// Boundary is the window end, applied when IsLastDay is set.
	Boundary *time.Time
}

// WindowRequest holds the inputs for generating slots across a multi-day window.
type WindowRequest struct {
	Start       time.Time
	End         time.Time
	SlotMinutes int
	Preference  WorkHourPreference
	Location    *time.Location
	Exclusions  []ExclusionInterval
}
