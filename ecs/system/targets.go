package system

import (
	"github.com/milk9111/elemental/combat"
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/geom"
)

// LiveTargets lists living actors in creation order.
func LiveTargets(w *ecs.World) []combat.Target {
	var out []combat.Target
	ecs.ForEach3(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), component.HealthComponent.Kind(),
		func(_ ecs.Entity, a *component.Actor, tr *component.Transform, h *component.Health) {
			if h.Dead {
				return
			}
			out = append(out, combat.Target{ID: a.ID, Position: tr.Position})
		})
	return out
}

// DamageArc hits every living actor inside the arc, shows a damage number
// for each and grants kill experience. It returns the number of kills.
func DamageArc(w *ecs.World, sink combat.Sink, origin, dir geom.Vec3, arc, rng, damage float64, source string) int {
	if sink == nil {
		return 0
	}
	kills := 0
	for _, t := range LiveTargets(w) {
		if !geom.InArc(origin, dir, arc, rng, t.Position) {
			continue
		}
		killed := sink.DamageActor(t.ID, damage)
		sink.DamageNumber(t.Position, damage, source)
		if killed {
			kills++
			sink.GrantXP(combat.KillXP)
		}
	}
	return kills
}

func findActor(w *ecs.World, id string) (ecs.Entity, *component.Actor, bool) {
	var (
		found ecs.Entity
		actor *component.Actor
	)
	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, a *component.Actor) {
		if actor == nil && a.ID == id {
			found, actor = e, a
		}
	})
	return found, actor, actor != nil
}

// playerAvatar returns the player's transform and marker, if spawned.
func playerAvatar(w *ecs.World) (ecs.Entity, *component.Transform, *component.Player, bool) {
	e, p, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return 0, nil, nil, false
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, nil, nil, false
	}
	return e, tr, p, true
}
