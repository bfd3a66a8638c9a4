package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	GetAvailabilitySuccessMessage       = "availability generated successfully"
	GetCandidateTimeslotsSuccessMessage = "candidate timeslots filtered successfully"
	SubmitSchedulingJobSuccessMessage   = "Your scheduling request has been submitted. You will be notified when it's complete."
)
