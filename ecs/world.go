package ecs

import (
	"fmt"

	"github.com/milk9111/elemental/ecs/component"
)

// World owns entities, their components, the simulation clock, the event
// queue and the deferred action queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store
	events   EventQueue
	clock    Clock
	deferred DeferredQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	w := &World{stores: make(map[component.ComponentID]store)}
	w.events.clock = &w.clock
	return w
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity drops every component of e and invalidates the handle.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns the live entities in creation order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.live()
}

// Clock returns the world's simulation clock.
func (w *World) Clock() *Clock {
	if w == nil {
		return nil
	}
	return &w.clock
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Deferred returns the queue of actions scheduled for a later tick.
func (w *World) Deferred() *DeferredQueue {
	if w == nil {
		return nil
	}
	return &w.deferred
}

func setFor[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if w.stores == nil {
		if !create {
			return nil
		}
		w.stores = make(map[component.ComponentID]store)
	}
	if s, ok := w.stores[kind.ID()]; ok {
		set, _ := s.(*sparseSet[T])
		return set
	}
	if !create {
		return nil
	}
	set := &sparseSet[T]{}
	w.stores[kind.ID()] = set
	return set
}

// Add attaches or replaces the component of the given kind on e.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("%w: %s", component.ErrNilComponent, kind.Name())
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("%w: add %s to %v", component.ErrEntityNotAlive, kind.Name(), e)
	}
	setFor(w, kind, true).set(e.id(), value)
	return nil
}

// Get returns the component of the given kind on e.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	set := setFor(w, kind, false)
	if set == nil {
		return nil, false
	}
	return set.get(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	set := setFor(w, kind, false)
	if set == nil {
		return false
	}
	return set.remove(e.id())
}

// Count returns how many live entities carry the kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	if w == nil {
		return 0
	}
	set := setFor(w, kind, false)
	if set == nil {
		return 0
	}
	return set.len()
}
