package models

import "time"

// PendingRequest is the context stored at submission time and consumed by the
// solver callback. FileKey doubles as the job token.
type PendingRequest struct {
	FileKey       string    `json:"fileKey"`
	UserID        string    `json:"userId"`
	HostID        string    `json:"hostId"`
	SingletonID   string    `json:"singletonId"`
	OriginalQuery string    `json:"originalQuery,omitempty"`
	SubmittedAt   time.Time `json:"submittedAt"`
}
