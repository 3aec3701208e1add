package character

type eventKind int

const (
	eventClimbFinished eventKind = iota + 1
)

// event is a message posted by a collaborator and consumed on the next tick.
type event struct {
	kind eventKind
	seq  uint64
}

// eventQueue is a simple FIFO queue.
type eventQueue struct {
	items []event
}

func (q *eventQueue) push(evt event) {
	q.items = append(q.items, evt)
}

func (q *eventQueue) drain() []event {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *eventQueue) flush() {
	q.items = nil
}
