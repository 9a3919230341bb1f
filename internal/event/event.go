package event

import (
	"fmt"
	"sync"
)

type Kind uint8

const (
	ButtonPressed Kind = iota + 1
	ButtonReleased
)

func (k Kind) String() string {
	switch k {
	case ButtonPressed:
		return "pressed"
	case ButtonReleased:
		return "released"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Event is a button edge tagged with the button index (0..5).
type Event struct {
	Kind   Kind
	Button int
}

func Pressed(button int) Event  { return Event{Kind: ButtonPressed, Button: button} }
func Released(button int) Event { return Event{Kind: ButtonReleased, Button: button} }

func (e Event) String() string { return fmt.Sprintf("button %d %s", e.Button, e.Kind) }

// Queue is an unbounded FIFO. Any number of goroutines may Post, a single
// consumer drains it once per tick.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

func NewQueue() *Queue { return &Queue{} }

func (q *Queue) Post(e Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// Drain returns all pending events in arrival order and empties the queue.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len returns the pending event count.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
