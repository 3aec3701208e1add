package ecs

import (
	"errors"

	"github.com/milk9111/ledgeclimb/ecs/component"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
	ErrComponentTypeClash   = errors.New("ecs: component kind registered with another type")
)

// World owns entities, their components and the frame event queue.
type World struct {
	entities entityPool
	stores   map[component.ComponentID]store
	events   EventQueue
	delta    float64
	frame    uint64
}

func NewWorld() *World {
	return &World{stores: map[component.ComponentID]store{}}
}

func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes e and all of its components. It reports false for
// stale or unknown handles.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return w.entities.destroy(e)
}

func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

// Delta is the frame step in seconds set by the scheduler.
func (w *World) Delta() float64 {
	if w == nil {
		return 0
	}
	return w.delta
}

func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.frame
}

func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) (*sparseSet[T], error) {
	if !kind.Valid() {
		return nil, ErrInvalidComponentKind
	}
	if w.stores == nil {
		w.stores = map[component.ComponentID]store{}
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		if !create {
			return nil, nil
		}
		set := newSparseSet[T]()
		w.stores[kind.ID()] = set
		return set, nil
	}
	set, ok := s.(*sparseSet[T])
	if !ok {
		return nil, ErrComponentTypeClash
	}
	return set, nil
}

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return ErrEntityNotAlive
	}
	if value == nil {
		return ErrNilComponent
	}
	set, err := storeFor(w, kind, true)
	if err != nil {
		return err
	}
	set.set(e.id(), value)
	return nil
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	set, err := storeFor(w, kind, false)
	if err != nil || set == nil {
		return nil, false
	}
	return set.get(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	set, err := storeFor(w, kind, false)
	if err != nil || set == nil {
		return false
	}
	return set.remove(e.id())
}

// ForEach visits every live entity holding kind. Components may be mutated
// through the pointer. Adding or removing kind during the walk is not allowed.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	set, err := storeFor(w, kind, false)
	if err != nil || set == nil {
		return
	}
	for i := 0; i < len(set.dense); i++ {
		id := set.dense[i]
		fn(makeEntity(id, w.entities.gens[id]), set.values[i])
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	sb, err := storeFor(w, kb, false)
	if err != nil || sb == nil {
		return
	}
	ForEach(w, ka, func(e Entity, a *A) {
		if b, ok := sb.get(e.id()); ok {
			fn(e, a, b)
		}
	})
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	sc, err := storeFor(w, kc, false)
	if err != nil || sc == nil {
		return
	}
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		if c, ok := sc.get(e.id()); ok {
			fn(e, a, b, c)
		}
	})
}

// First returns any entity holding kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	var (
		found Entity
		value *T
	)
	ForEach(w, kind, func(e Entity, v *T) {
		if value == nil {
			found, value = e, v
		}
	})
	return found, value, value != nil
}

func Count[T any](w *World, kind component.ComponentKind[T]) int {
	if w == nil {
		return 0
	}
	set, err := storeFor(w, kind, false)
	if err != nil || set == nil {
		return 0
	}
	return set.size()
}
