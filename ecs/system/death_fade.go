package system

import (
	"time"

	"github.com/milk9111/elemental/combat"
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
)

const DeathFadeDuration = 500 * time.Millisecond

// DeathFadeSystem shrinks dead actors and removes them once faded.
type DeathFadeSystem struct{}

func NewDeathFadeSystem() *DeathFadeSystem {
	return &DeathFadeSystem{}
}

func (s *DeathFadeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Clock().Now()

	ecs.ForEach2(w, component.ActorComponent.Kind(), component.DeathFadeComponent.Kind(), func(e ecs.Entity, a *component.Actor, fade *component.DeathFade) {
		fade.Progress = min(1, float64(now-fade.Since)/float64(DeathFadeDuration))
		if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			tr.Scale = 1 - fade.Progress
		}
		if fade.Progress < 1 {
			return
		}
		id := a.ID
		ecs.DestroyEntity(w, e)
		w.Events().Emit(combat.EventActorRemoved, combat.ActorRemoved{ActorID: id})
	})
}
