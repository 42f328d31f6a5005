package ecs

import "time"

// Event is something a system reported during a tick. At is the simulation
// time it was emitted.
type Event struct {
	Type string
	Data any
	At   time.Duration
}

// EventQueue collects events in emission order until the host drains them.
type EventQueue struct {
	items []Event
	clock *Clock
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Emit queues data stamped with the current simulation time.
func (q *EventQueue) Emit(typ string, data any) {
	if q == nil {
		return
	}
	evt := Event{Type: typ, Data: data}
	if q.clock != nil {
		evt.At = q.clock.Now()
	}
	q.items = append(q.items, evt)
}

// Drain hands over every queued event and empties the queue.
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

// Filter returns the events of one type in emission order.
func Filter(events []Event, typ string) []Event {
	var out []Event
	for _, e := range events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}
