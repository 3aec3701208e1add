package ecs

// EventType names a gameplay event raised by a system.
type EventType string

const (
	// EventTriggerEntered carries the trigger's event name in Data.
	EventTriggerEntered EventType = "trigger_entered"
	// EventAbilityGranted carries the granted ability name in Data.
	EventAbilityGranted EventType = "ability_granted"
)

// Event is raised for Entity. Data depends on Type.
type Event struct {
	Type   EventType
	Entity Entity
	Data   string
}

// EventQueue is a FIFO queue cleared at the start of every frame.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns the events of type t and keeps the rest queued.
func (q *EventQueue) Drain(t EventType) []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	var out []Event
	kept := q.items[:0]
	for _, evt := range q.items {
		if evt.Type == t {
			out = append(out, evt)
			continue
		}
		kept = append(kept, evt)
	}
	q.items = kept
	return out
}

// Peek returns the queued events without consuming them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return append([]Event(nil), q.items...)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}
