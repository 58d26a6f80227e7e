package notify

import (
	"log"
	"sync"
	"time"

	"retail_console/internal/usecase/interfaces"
)

const defaultDismissAfter = 5 * time.Second

// Notification is a transient operator-facing message, shown until it is
// dismissed or its deadline lapses.
type Notification struct {
	Message   string    `json:"message"`
	Level     string    `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

// Queue collects notifications emitted by the workflow and drops each one
// after a fixed interval. Safe for concurrent use.

type Queue struct {
	mu           sync.Mutex
	pending      []Notification
	dismissAfter time.Duration
}

var _ interfaces.INotifier = (*Queue)(nil)

func NewQueue() *Queue {
	return &Queue{dismissAfter: defaultDismissAfter}
}

// Notify implements interfaces.INotifier.
func (q *Queue) Notify(message, level string) {
	n := Notification{Message: message, Level: level, CreatedAt: time.Now().UTC()}
	log.Printf("[notify][queue] push level=%s message=%q", level, message)

	q.mu.Lock()
	q.pending = append(q.pending, n)
	q.mu.Unlock()

	time.AfterFunc(q.dismissAfter, func() {
		q.dismiss(n)
	})
}

// Pending returns a snapshot of the notifications still on screen.
func (q *Queue) Pending() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Notification, len(q.pending))
	copy(out, q.pending)
	return out
}

func (q *Queue) dismiss(n Notification) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, p := range q.pending {
		if p == n {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}
