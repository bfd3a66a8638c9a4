package callback

import (
	"meeting-scheduler-service/internal/pkg/constvars"
	"meeting-scheduler-service/internal/pkg/dto/requests"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventPartLabel(t *testing.T) {
	cases := []struct {
		name string
		part requests.CallbackEventPart
		want string
	}{
		{"summary first", requests.CallbackEventPart{ID: "p", Event: &requests.CallbackEvent{ID: "e", Summary: "S", Title: "T"}}, "S"},
		{"title when summary blank", requests.CallbackEventPart{ID: "p", Event: &requests.CallbackEvent{ID: "e", Summary: "  ", Title: "T"}}, "T"},
		{"event id", requests.CallbackEventPart{ID: "p", Event: &requests.CallbackEvent{ID: "e"}}, "e"},
		{"part id without event", requests.CallbackEventPart{ID: "p"}, "p"},
		{"placeholder", requests.CallbackEventPart{}, constvars.SummaryUnnamedEventPartLabel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			part := tc.part
			assert.Equal(t, tc.want, eventPartLabel(&part))
		})
	}
}

func TestScheduledTimeInfo(t *testing.T) {
	assert.Equal(t, "from 09:00 to 09:30 on --01-08 (MONDAY)",
		scheduledTimeInfo(&requests.CallbackTimeslot{StartTime: "09:00", EndTime: "09:30", MonthDay: "--01-08", DayOfWeek: "MONDAY"}))
	assert.Equal(t, "from 09:00 to 09:30 on --01-08",
		scheduledTimeInfo(&requests.CallbackTimeslot{StartTime: "09:00", EndTime: "09:30", MonthDay: "--01-08"}))
	assert.Equal(t, "from 09:00 to 09:30 MONDAY",
		scheduledTimeInfo(&requests.CallbackTimeslot{StartTime: "09:00", EndTime: "09:30", DayOfWeek: "MONDAY"}))
	assert.Equal(t, constvars.SummaryUnspecifiedTime,
		scheduledTimeInfo(&requests.CallbackTimeslot{StartTime: "09:00"}))
}

func TestComposeSummary(t *testing.T) {
	t.Run("no parts", func(t *testing.T) {
		msg := composeSummary("", &requests.SchedulerCallback{EventPartList: []*requests.CallbackEventPart{}})
		assert.Equal(t, "Update for your scheduling request:\n"+constvars.SummaryNoEventsProcessed, msg)
	})

	t.Run("only null parts", func(t *testing.T) {
		msg := composeSummary("", &requests.SchedulerCallback{EventPartList: []*requests.CallbackEventPart{nil, nil}})
		assert.Equal(t, "Update for your scheduling request:\n"+constvars.SummaryOutcomesUnclear, msg)
	})

	t.Run("full report", func(t *testing.T) {
		solution := &requests.SchedulerCallback{
			EventPartList: []*requests.CallbackEventPart{
				{ID: "p1", Timeslot: &requests.CallbackTimeslot{StartTime: "10:00", EndTime: "11:00"}},
				{ID: "p2"},
			},
			Score: "-1soft",
		}
		want := "Update for your scheduling request (\"standup\"):\n" +
			"\nSuccessfully scheduled items:\n" +
			"- 'p1' scheduled from 10:00 to 11:00\n" +
			"\nItems that could not be scheduled:\n" +
			"- 'p2' could not be scheduled.\n" +
			"\nOverall schedule score: -1soft"
		assert.Equal(t, want, composeSummary("standup", solution))
	})
}

func TestCallbackScore_Unmarshal(t *testing.T) {
	cases := map[string]requests.CallbackScore{
		`{"score":"0hard/-3soft"}`: "0hard/-3soft",
		`{"score":-12.5}`:          "-12.5",
		`{"score":null}`:           "",
		`{}`:                       "",
	}
	for body, want := range cases {
		var solution requests.SchedulerCallback
		require.NoError(t, json.Unmarshal([]byte(body), &solution), body)
		assert.Equal(t, want, solution.Score, body)
	}
}
