package response

import "retail_console/internal/usecase"

type ProfilingQuestionResponse struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

func FromProfilingQuestions(questions []usecase.ProfilingQuestion) []ProfilingQuestionResponse {
	out := make([]ProfilingQuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, ProfilingQuestionResponse{
			ID:      q.ID,
			Prompt:  q.Prompt,
			Options: q.Options,
		})
	}
	return out
}
