package ecs

import "github.com/milk9111/elemental/ecs/component"

// Iteration follows entity creation order so every query is deterministic.
// Callbacks may destroy entities; those not yet visited are then skipped.

func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	a := setFor(w, kind, false)
	if a == nil {
		return
	}
	for _, e := range w.entities.live() {
		if !w.entities.isAlive(e) {
			continue
		}
		if v, ok := a.get(e.id()); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	a, b := setFor(w, ka, false), setFor(w, kb, false)
	if a == nil || b == nil {
		return
	}
	for _, e := range w.entities.live() {
		if !w.entities.isAlive(e) {
			continue
		}
		va, ok := a.get(e.id())
		if !ok {
			continue
		}
		if vb, ok := b.get(e.id()); ok {
			fn(e, va, vb)
		}
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	a, b, c := setFor(w, ka, false), setFor(w, kb, false), setFor(w, kc, false)
	if a == nil || b == nil || c == nil {
		return
	}
	for _, e := range w.entities.live() {
		if !w.entities.isAlive(e) {
			continue
		}
		va, ok := a.get(e.id())
		if !ok {
			continue
		}
		vb, ok := b.get(e.id())
		if !ok {
			continue
		}
		if vc, ok := c.get(e.id()); ok {
			fn(e, va, vb, vc)
		}
	}
}

// First returns the earliest-created entity carrying kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	if w == nil {
		return 0, nil, false
	}
	a := setFor(w, kind, false)
	if a == nil {
		return 0, nil, false
	}
	for _, e := range w.entities.order {
		if v, ok := a.get(e.id()); ok {
			return e, v, true
		}
	}
	return 0, nil, false
}
