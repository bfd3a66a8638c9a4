package responses

import (
	"meeting-scheduler-service/internal/pkg/dto/requests"
	"time"
)

type AvailableSlot struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type Availability struct {
	Slots     []AvailableSlot              `json:"slots"`
	Timeslots []requests.CanonicalTimeslot `json:"timeslots"`
}

type CandidateTimeslots struct {
	Timeslots []requests.CanonicalTimeslot `json:"timeslots"`
}

type SchedulingJob struct {
	SingletonID   string `json:"singletonId"`
	FileKey       string `json:"fileKey"`
	TimeslotCount int    `json:"timeslotCount"`
}
