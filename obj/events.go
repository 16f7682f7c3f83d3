package obj

// EventKind identifies a side effect the game loop should carry out.
type EventKind string

const (
	EventItemSound EventKind = "item_sound"
	EventGoalSound EventKind = "goal_sound"
	EventStage     EventKind = "stage"
)

// Event is a fire-once notification from the core to the platform glue.
type Event struct {
	Kind EventKind
	Data any
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Clear drops pending events.
func (q *EventQueue) Clear() {
	if q == nil {
		return
	}
	q.items = nil
}
