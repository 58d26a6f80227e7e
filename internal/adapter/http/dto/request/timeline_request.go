package request

import "time"

// StaffNoteRequest appends a staff response to a quotation's audit trail.
type StaffNoteRequest struct {
	Note       string     `json:"note" binding:"required"`
	FollowUpOn *time.Time `json:"follow_up_on"`
}

// AlertRequest appends a system billing event (reminder tier, promise,
// payment outcome) to a quotation's payment timeline.
type AlertRequest struct {
	Type    string `json:"type" binding:"required"`
	Message string `json:"message"`
}
