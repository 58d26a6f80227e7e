package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"retail_console/internal/domain/entities"
	"retail_console/internal/usecase/interfaces"
)

var (
	ErrProfilingFinished  = errors.New("profiling already finished")
	ErrInvalidAnswer      = errors.New("answer is not one of the offered options")
	ErrIncompleteProfile  = errors.New("profile is missing answers")
	ErrUnknownQuestion    = errors.New("unknown profiling question")
	ErrProfilingNotLinked = errors.New("engagement has no customer")
)

// ProfilingQuestion is one step of the guided customer-preference walk. The
// list is fixed and strictly ordered; every question offers an enumerated set
// of answers.

type ProfilingQuestion struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

var ProfilingQuestions = []ProfilingQuestion{
	{ID: "purpose", Prompt: "What is the purchase for?", Options: []string{"Gift", "Personal", "Investment", "Wedding"}},
	{ID: "budget", Prompt: "What budget range are you considering?", Options: []string{"Under 25k", "25k-50k", "50k-1L", "Above 1L"}},
	{ID: "metal", Prompt: "Which metal do you prefer?", Options: []string{"Gold", "Silver", "Platinum", "Diamond-set"}},
	{ID: "occasion", Prompt: "When do you need it by?", Options: []string{"This week", "This month", "No rush"}},
}

// ProfilingState is the wizard's explicit finite state: a cursor into the
// question list plus the answers accumulated so far. Transitions are pure;
// there is no backward navigation and nothing is persisted before the walk
// finishes.

type ProfilingState struct {
	QuestionIndex int               `json:"question_index"`
	Answers       map[string]string `json:"answers"`
}

func NewProfilingState() ProfilingState {
	return ProfilingState{Answers: map[string]string{}}
}

func (s ProfilingState) Done() bool {
	return s.QuestionIndex >= len(ProfilingQuestions)
}

func (s ProfilingState) Current() (ProfilingQuestion, bool) {
	if s.Done() {
		return ProfilingQuestion{}, false
	}
	return ProfilingQuestions[s.QuestionIndex], true
}

// Select records the answer for the current question and advances the cursor.
// The input state is not mutated.
func (s ProfilingState) Select(answer string) (ProfilingState, error) {
	q, ok := s.Current()
	if !ok {
		return s, ErrProfilingFinished
	}
	valid := false
	for _, opt := range q.Options {
		if opt == answer {
			valid = true
			break
		}
	}
	if !valid {
		return s, fmt.Errorf("%w: %q for question %s", ErrInvalidAnswer, answer, q.ID)
	}

	next := ProfilingState{
		QuestionIndex: s.QuestionIndex + 1,
		Answers:       make(map[string]string, len(s.Answers)+1),
	}
	for k, v := range s.Answers {
		next.Answers[k] = v
	}
	next.Answers[q.ID] = answer
	return next, nil
}

// IProfilingUseCase persists a finished profiling walk: the answers are
// merged under the customer's profiling preferences and the profiling stage
// is completed through the workflow engine, in that order.

type IProfilingUseCase interface {
	Questions() []ProfilingQuestion
	SubmitProfile(ctx context.Context, engagementID string, answers map[string]string, actorID string) (entities.Engagement, error)
}

type ProfilingUseCase struct {
	workflow  IWorkflowUseCase
	customers interfaces.ICustomerRepository
}

var _ IProfilingUseCase = (*ProfilingUseCase)(nil)

func NewProfilingUseCase(workflow IWorkflowUseCase, customers interfaces.ICustomerRepository) *ProfilingUseCase {
	return &ProfilingUseCase{workflow: workflow, customers: customers}
}

func (u *ProfilingUseCase) Questions() []ProfilingQuestion {
	return ProfilingQuestions
}

func (u *ProfilingUseCase) SubmitProfile(ctx context.Context, engagementID string, answers map[string]string, actorID string) (entities.Engagement, error) {
	engagementID = strings.TrimSpace(engagementID)
	if engagementID == "" {
		return entities.Engagement{}, ErrInvalidEngagementID
	}
	if err := validateAnswers(answers); err != nil {
		return entities.Engagement{}, err
	}

	engagement, err := u.workflow.GetEngagement(ctx, engagementID)
	if err != nil {
		return entities.Engagement{}, err
	}
	if engagement.CustomerID == "" {
		return entities.Engagement{}, ErrProfilingNotLinked
	}

	prefs := entities.ProfilingPreferences{
		Answers:              answers,
		Profiled:             true,
		LastProfilingAttempt: time.Now().UTC(),
	}
	customer, err := u.customers.MergeProfilingPreferences(ctx, engagement.CustomerID, prefs)
	if err != nil {
		log.Printf("[profiling][usecase] preference merge failed engagement_id=%s customer_id=%s err=%v", engagementID, engagement.CustomerID, err)
		return entities.Engagement{}, err
	}
	if customer.ID == "" {
		return entities.Engagement{}, ErrCustomerNotFound
	}
	log.Printf("[profiling][usecase] preferences merged engagement_id=%s customer_id=%s answers=%d", engagementID, customer.ID, len(answers))

	detail := &entities.StageDetail{Answers: answers}
	return u.workflow.Advance(ctx, engagementID, entities.StageProfiling, entities.StageStatusCompleted, detail, actorID)
}

// validateAnswers checks each submitted answer against the options of its
// question. Completeness is the wizard's job (it only offers valid options
// and only submits at the last question), so a partial map is accepted here;
// an answer outside the enumerated options or for a question that does not
// exist is not.
func validateAnswers(answers map[string]string) error {
	if len(answers) == 0 {
		return ErrIncompleteProfile
	}
	byID := make(map[string]ProfilingQuestion, len(ProfilingQuestions))
	for _, q := range ProfilingQuestions {
		byID[q.ID] = q
	}
	for id, answer := range answers {
		q, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
		}
		valid := false
		for _, opt := range q.Options {
			if opt == answer {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("%w: %q for question %s", ErrInvalidAnswer, answer, q.ID)
		}
	}
	return nil
}
