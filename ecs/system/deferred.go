package system

import "github.com/milk9111/elemental/ecs"

// DeferredSystem runs actions whose due time has been reached.
type DeferredSystem struct{}

func NewDeferredSystem() *DeferredSystem {
	return &DeferredSystem{}
}

func (s *DeferredSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, d := range w.Deferred().PopDue(w.Clock().Now()) {
		d.Run(w)
	}
}
