package requests

import "time"

type CommittedEvent struct {
	Start time.Time `json:"start" validate:"required"`
	End   time.Time `json:"end" validate:"required,gtfield=Start"`
}

type GenerateAvailability struct {
	UserID              string           `json:"userId" validate:"required"`
	WindowStart         time.Time        `json:"windowStart" validate:"required"`
	WindowEnd           time.Time        `json:"windowEnd" validate:"required,gtfield=WindowStart"`
	Timezone            string           `json:"timezone" validate:"required,timezone"`
	SlotDurationMinutes int              `json:"slotDurationMinutes" validate:"omitempty,slot_minutes"`
	CommittedEvents     []CommittedEvent `json:"committedEvents" validate:"dive"`
}

type FilterCandidateTimeslots struct {
	GenerateAvailability
	Catalog []CanonicalTimeslot `json:"catalog" validate:"required,dive"`
}

// CanonicalTimeslot is one entry of the solver's enumerated timeslot catalog.
type CanonicalTimeslot struct {
	HostID    string `json:"hostId,omitempty"`
	DayOfWeek string `json:"dayOfWeek,omitempty"`
	StartTime string `json:"startTime" validate:"required,clock"`
	EndTime   string `json:"endTime" validate:"required,clock"`
	MonthDay  string `json:"monthDay" validate:"required,month_day"`
	Date      string `json:"date,omitempty"`
}
