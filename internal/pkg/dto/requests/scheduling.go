package requests

import (
	"time"

	"github.com/goccy/go-json"
)

type SchedulingParticipant struct {
	UserID          string           `json:"userId" validate:"required"`
	CommittedEvents []CommittedEvent `json:"committedEvents" validate:"dive"`
}

type SubmitSchedulingJob struct {
	HostID              string                  `json:"hostId" validate:"required"`
	UserID              string                  `json:"userId" validate:"required"`
	OriginalQuery       string                  `json:"originalQuery"`
	WindowStart         time.Time               `json:"windowStart" validate:"required"`
	WindowEnd           time.Time               `json:"windowEnd" validate:"required,gtfield=WindowStart"`
	Timezone            string                  `json:"timezone" validate:"required,timezone"`
	SlotDurationMinutes int                     `json:"slotDurationMinutes" validate:"omitempty,slot_minutes"`
	Participants        []SchedulingParticipant `json:"participants" validate:"required,min=1,dive"`
	Catalog             []CanonicalTimeslot     `json:"catalog" validate:"dive"`
	UserList            []json.RawMessage       `json:"userList"`
	EventParts          []json.RawMessage       `json:"eventParts"`
}

// PostTableRequestBody is the problem submitted to the solver.
type PostTableRequestBody struct {
	SingletonID string              `json:"singletonId"`
	HostID      string              `json:"hostId"`
	Timeslots   []CanonicalTimeslot `json:"timeslots"`
	UserList    []json.RawMessage   `json:"userList"`
	EventParts  []json.RawMessage   `json:"eventParts"`
	FileKey     string              `json:"fileKey"`
	Delay       int                 `json:"delay"`
	CallBackURL string              `json:"callBackUrl"`
}
