package model

// Status is the terminal status of a processed submission.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is the outcome reported for one submission.
type Result struct {
	Status   Status `json:"status"`
	Message  string `json:"message"`
	Platform string `json:"platform,omitempty"`
}

// State is the two-state gate controlling whether new submissions are accepted.
type State string

const (
	StateIdle State = "idle"
	StateBusy State = "busy"
)

// Stats holds the lifetime counters of the service.
type Stats struct {
	Accepted  uint64 `json:"accepted"`
	Rejected  uint64 `json:"rejected"`
	Succeeded uint64 `json:"succeeded"`
	Failed    uint64 `json:"failed"`
}
