package entity

import (
	"fmt"

	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/geom"
	"github.com/milk9111/elemental/prefabs"
)

// NewEnemy creates a hostile actor from a roster entry. It starts idle at
// its spawn point with full health.
func NewEnemy(w *ecs.World, id string, spec prefabs.ActorSpec) (ecs.Entity, error) {
	if id == "" {
		return 0, fmt.Errorf("enemy: empty id")
	}
	pos := Vec3(spec.Position)
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.ActorComponent.Kind(), &component.Actor{
		ID:          id,
		Kind:        component.ActorKind(spec.Kind),
		AggroRange:  spec.AggroRange,
		AttackRange: spec.AttackRange,
		Spawn:       pos,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add actor: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		Position: pos,
		Facing:   geom.V(0, 0, 1),
		Scale:    1,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{
		Current: spec.Health,
		Max:     spec.Health,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.AIStateComponent.Kind(), &component.AIState{
		Current: component.StateIdle,
		Since:   w.Clock().Now(),
	}); err != nil {
		return 0, fmt.Errorf("enemy: add ai state: %w", err)
	}

	return entity, nil
}

func Vec3(v prefabs.Vec3Spec) geom.Vec3 {
	return geom.V(v.X, v.Y, v.Z)
}
