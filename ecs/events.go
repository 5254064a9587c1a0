package ecs

// EventKind identifies world event types.
type EventKind string

const (
	EventOverlapBegin EventKind = "overlap_begin"
	EventOverlapEnd   EventKind = "overlap_end"
	EventLanded       EventKind = "landed"
)

// Event is emitted by systems for consumers later in the frame or on the
// next frame. Other is zero when the event has no second party.
type Event struct {
	Kind   EventKind
	Entity Entity
	Other  Entity
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

// Len reports queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
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
