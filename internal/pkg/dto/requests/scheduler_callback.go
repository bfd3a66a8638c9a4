package requests

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
)

// SchedulerCallback is the solution the solver posts back for a fileKey.
type SchedulerCallback struct {
	FileKey       string               `json:"fileKey" validate:"required"`
	HostID        string               `json:"hostId" validate:"required"`
	EventPartList []*CallbackEventPart `json:"eventPartList" validate:"required"`
	Score         CallbackScore        `json:"score"`
}

type CallbackEventPart struct {
	ID       string            `json:"id,omitempty"`
	GroupID  string            `json:"groupId,omitempty"`
	EventID  string            `json:"eventId,omitempty"`
	Event    *CallbackEvent    `json:"event,omitempty"`
	Timeslot *CallbackTimeslot `json:"timeslot,omitempty"`
}

type CallbackEvent struct {
	ID      string `json:"id,omitempty"`
	Summary string `json:"summary,omitempty"`
	Title   string `json:"title,omitempty"`
}

type CallbackTimeslot struct {
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	MonthDay  string `json:"monthDay,omitempty"`
	DayOfWeek string `json:"dayOfWeek,omitempty"`
}

// CallbackScore accepts the solver score as a string, a number or null.
type CallbackScore string

func (s *CallbackScore) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = CallbackScore(strings.TrimSpace(str))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = CallbackScore(num.String())
	return nil
}
