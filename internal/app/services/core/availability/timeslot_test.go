package availability

import (
	"meeting-scheduler-service/internal/app/models"
	"meeting-scheduler-service/internal/app/services/core/slot"
	"meeting-scheduler-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterCandidates(t *testing.T) {
	catalog := []requests.CanonicalTimeslot{
		{DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "09:30", MonthDay: "--01-08"},
		{DayOfWeek: "MONDAY", StartTime: "09:30", EndTime: "10:00", MonthDay: "--01-08"},
		{DayOfWeek: "TUESDAY", StartTime: "09:00", EndTime: "09:30", MonthDay: "--01-09"},
	}

	t.Run("keeps catalog order and shape", func(t *testing.T) {
		available := []requests.CanonicalTimeslot{
			{StartTime: "09:00", EndTime: "09:30", MonthDay: "--01-09"},
			{StartTime: "09:00", EndTime: "09:30", MonthDay: "--01-08"},
			{StartTime: "09:00", EndTime: "09:30", MonthDay: "--01-08"},
		}
		assert.Equal(t, []requests.CanonicalTimeslot{catalog[0], catalog[2]}, FilterCandidates(catalog, available))
	})

	t.Run("never invents entries", func(t *testing.T) {
		available := []requests.CanonicalTimeslot{{StartTime: "11:00", EndTime: "11:30", MonthDay: "--01-08"}}
		assert.Empty(t, FilterCandidates(catalog, available))
	})

	t.Run("empty availability yields empty list", func(t *testing.T) {
		result := FilterCandidates(catalog, nil)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestToCanonicalTimeslots(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	slots := []slot.AvailableSlot{{
		Start: time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 8, 8, 30, 0, 0, time.UTC),
	}}

	timeslots := ToCanonicalTimeslots(slots, berlin)
	require.Len(t, timeslots, 1)
	assert.Equal(t, "09:00", timeslots[0].StartTime)
	assert.Equal(t, "09:30", timeslots[0].EndTime)
	assert.Equal(t, "--01-08", timeslots[0].MonthDay)
	assert.Equal(t, "MONDAY", timeslots[0].DayOfWeek)

	assert.NotNil(t, ToCanonicalTimeslots(nil, berlin))
}

func TestBuildTimeslotCatalog(t *testing.T) {
	start := time.Date(2024, 1, 8, 14, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 10, 11, 0, 0, 0, time.UTC)

	catalog := BuildTimeslotCatalog("h1", start, end, time.UTC, 60)
	require.Len(t, catalog, 3*(24*60-60+1))

	assert.Equal(t, requests.CanonicalTimeslot{
		HostID:    "h1",
		DayOfWeek: "MONDAY",
		StartTime: "00:00",
		EndTime:   "01:00",
		MonthDay:  "--01-08",
		Date:      "2024-01-08",
	}, catalog[0])
	assert.Equal(t, "00:01", catalog[1].StartTime)
	last := catalog[len(catalog)-1]
	assert.Equal(t, "23:00", last.StartTime)
	assert.Equal(t, "00:00", last.EndTime)
	assert.Equal(t, "WEDNESDAY", last.DayOfWeek)

	assert.Len(t, BuildTimeslotCatalog("h1", start, start.Add(time.Hour), time.UTC, 45), 24*60-45+1)
	assert.Empty(t, BuildTimeslotCatalog("h1", end, start, time.UTC, 30))
	assert.Empty(t, BuildTimeslotCatalog("h1", start, end, time.UTC, 24*60+1))
}

func TestBuildTimeslotCatalog_CoversGeneratedSlots(t *testing.T) {
	windowStart := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	lateMonday := slot.WorkHourPreference{1: {Start: slot.Clock{H: 8, M: 15}, End: slot.Clock{H: 12}}}

	cases := []struct {
		name        string
		start       time.Time
		slotMinutes int
		preference  slot.WorkHourPreference
		wantSlots   int
	}{
		{name: "30 minutes default hours", start: windowStart, slotMinutes: 30, wantSlots: 24},
		{name: "45 minutes default hours", start: windowStart, slotMinutes: 45, wantSlots: 16},
		{name: "90 minutes default hours", start: windowStart, slotMinutes: 90, wantSlots: 8},
		{name: "30 minutes from an 08:15 start", start: windowStart, slotMinutes: 30, preference: lateMonday, wantSlots: 7},
		{name: "45 minutes from a mid-hour window start", start: windowStart.Add(9*time.Hour + 50*time.Minute), slotMinutes: 45, wantSlots: 13},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slots := slot.GenerateWindowSlots(slot.WindowRequest{
				Start:       tc.start,
				End:         windowEnd,
				SlotMinutes: tc.slotMinutes,
				Preference:  tc.preference,
				Location:    time.UTC,
			})
			require.Len(t, slots, tc.wantSlots)

			available := ToCanonicalTimeslots(slots, time.UTC)
			catalog := BuildTimeslotCatalog("h1", tc.start, windowEnd, time.UTC, tc.slotMinutes)
			candidates := FilterCandidates(catalog, available)

			require.Len(t, candidates, len(available))
			for i, candidate := range candidates {
				assert.Equal(t, available[i].StartTime, candidate.StartTime)
				assert.Equal(t, available[i].EndTime, candidate.EndTime)
				assert.Equal(t, available[i].MonthDay, candidate.MonthDay)
			}
		})
	}
}

func TestToWorkHourPreference(t *testing.T) {
	preference := &models.UserPreference{
		StartTimes: []models.DayTime{{Day: 1, Hour: 9}, {Day: 2, Hour: 7, Minutes: 30}, {Day: 9, Hour: 1}},
		EndTimes:   []models.DayTime{{Day: 1, Hour: 17}, {Day: 3, Hour: 15}, {Day: 9, Hour: 2}},
	}

	workHours := ToWorkHourPreference(preference)
	assert.Equal(t, slot.WorkHourPreference{
		1: {Start: slot.Clock{H: 9}, End: slot.Clock{H: 17}},
	}, workHours)
	assert.Equal(t, slot.DefaultWorkHours(), workHours.ForISOWeekday(2))
	assert.Empty(t, ToWorkHourPreference(nil))
}
