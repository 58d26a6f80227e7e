package entities

import "time"

// ProfilingPreferences is the outcome of the guided profiling walk: the
// chosen answer per question id, plus bookkeeping about the last attempt.

type ProfilingPreferences struct {
	Answers              map[string]string `json:"answers"`
	Profiled             bool              `json:"profiled"`
	LastProfilingAttempt time.Time         `json:"lastProfilingAttempt"`
}

// Customer is the contact record an engagement points at.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Preferences is a nested document keyed by preference family ("profiling"
// being the one this service writes). The profiling flow updates only its own
// key so sibling preference families survive untouched.

type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Pincode string `json:"pincode,omitempty"`

	Preferences map[string]interface{} `json:"preferences,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
