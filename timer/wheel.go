package timer

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/milk9111/ledgeclimb/character"
)

// dueEpsilon absorbs float drift when summing frame deltas.
const dueEpsilon = 1e-9

type entry struct {
	due  float64
	fire func()
}

// Wheel is a simulation-time scheduler for one-shot callbacks. Callbacks run
// inside Advance, on the caller's goroutine, in the order they were scheduled
// when several come due on the same step.
type Wheel struct {
	now     float64
	next    character.TimerHandle
	pending *orderedmap.OrderedMap[character.TimerHandle, entry]
}

func NewWheel() *Wheel {
	return &Wheel{pending: orderedmap.NewOrderedMap[character.TimerHandle, entry]()}
}

// Now returns the simulated seconds elapsed since the wheel was created.
func (w *Wheel) Now() float64 {
	if w == nil {
		return 0
	}
	return w.now
}

// ScheduleOnce arms fire to run once delay seconds from now.
func (w *Wheel) ScheduleOnce(delay float64, fire func()) character.TimerHandle {
	if w == nil || fire == nil {
		return 0
	}
	if delay < 0 {
		delay = 0
	}
	w.next++
	w.pending.Set(w.next, entry{due: w.now + delay, fire: fire})
	return w.next
}

// Cancel disarms a pending callback. Unknown or already fired handles are
// ignored.
func (w *Wheel) Cancel(h character.TimerHandle) {
	if w == nil || h == 0 {
		return
	}
	w.pending.Delete(h)
}

// Pending reports whether h is still armed.
func (w *Wheel) Pending(h character.TimerHandle) bool {
	if w == nil {
		return false
	}
	_, ok := w.pending.Get(h)
	return ok
}

// Len returns the number of armed callbacks.
func (w *Wheel) Len() int {
	if w == nil {
		return 0
	}
	return w.pending.Len()
}

// Advance moves simulated time forward by dt and fires every callback that
// came due. Callbacks scheduled while firing wait for the next Advance.
func (w *Wheel) Advance(dt float64) {
	if w == nil {
		return
	}
	if dt > 0 {
		w.now += dt
	}

	var due []character.TimerHandle
	for el := w.pending.Front(); el != nil; el = el.Next() {
		if el.Value.due <= w.now+dueEpsilon {
			due = append(due, el.Key)
		}
	}

	for _, h := range due {
		e, ok := w.pending.Get(h)
		if !ok {
			// canceled by an earlier callback in this step
			continue
		}
		w.pending.Delete(h)
		e.fire()
	}
}
