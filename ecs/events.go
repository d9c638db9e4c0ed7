package ecs

// Event is a typed payload queued during a tick. Data is owned by whoever
// registered the Type.
type Event struct {
	Type string
	Data any
}

// EventQueue collects the events of the current tick in emission order. The
// world discards whatever is still queued when the tick ends.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain hands over the queued events and empties the queue.
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

// Emit queues an event of typ on w's queue. A nil world is ignored.
func Emit(w *World, typ string, data any) {
	if w == nil {
		return
	}
	w.events.Push(Event{Type: typ, Data: data})
}
