package ecs

import "fmt"

// Entity is a generational handle. The low 32 bits hold the slot id, the
// high 32 bits the generation the slot had when the handle was issued.
type Entity uint64

type entityID uint32
type generation uint32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<32 | uint64(id))
}

func (e Entity) id() entityID           { return entityID(uint32(e)) }
func (e Entity) generation() generation { return generation(uint32(uint64(e) >> 32)) }

func (e Entity) String() string {
	return fmt.Sprintf("%d#%d", e.id(), e.generation())
}

// Valid reports whether e was issued by a world. It says nothing about
// whether the entity is still alive.
func (e Entity) Valid() bool {
	return e.id() != 0
}

// entityStore hands out handles, recycles slots under a new generation and
// keeps live entities in creation order so iteration is deterministic.
type entityStore struct {
	slots []slot
	free  []entityID
	order []Entity
}

type slot struct {
	gen   generation
	alive bool
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id, s.free = s.free[n-1], s.free[:n-1]
	} else {
		s.slots = append(s.slots, slot{})
		id = entityID(len(s.slots))
	}
	sl := &s.slots[id-1]
	sl.alive = true
	e := makeEntity(id, sl.gen)
	s.order = append(s.order, e)
	return e
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	sl := &s.slots[e.id()-1]
	sl.alive = false
	sl.gen++
	s.free = append(s.free, e.id())
	if i := s.indexOf(e); i >= 0 {
		s.order = append(s.order[:i], s.order[i+1:]...)
	}
	return true
}

func (s *entityStore) indexOf(e Entity) int {
	for i, o := range s.order {
		if o == e {
			return i
		}
	}
	return -1
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.slots) {
		return false
	}
	sl := s.slots[id-1]
	return sl.alive && sl.gen == e.generation()
}

// live copies the creation order so callers may destroy while iterating.
func (s *entityStore) live() []Entity {
	if len(s.order) == 0 {
		return nil
	}
	return append([]Entity(nil), s.order...)
}
