package request

// SubmitProfileRequest carries the answers collected by the profiling
// wizard, keyed by question id. Partial submissions are accepted.
type SubmitProfileRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}
