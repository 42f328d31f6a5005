package entity

import (
	"fmt"

	"github.com/milk9111/elemental/combat"
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
)

// NewProjectile materialises a spawn request, stamped with the current
// simulation time.
func NewProjectile(w *ecs.World, id string, req combat.SpawnRequest) (ecs.Entity, error) {
	if !req.Position.IsFinite() || !req.Velocity.IsFinite() {
		return 0, fmt.Errorf("projectile: non-finite spawn %+v", req)
	}
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.ProjectileComponent.Kind(), &component.Projectile{
		ID:          id,
		Owner:       req.Owner,
		Velocity:    req.Velocity,
		Damage:      req.Damage,
		Type:        req.Type,
		SpawnedAt:   w.Clock().Now(),
		MaxDistance: req.MaxDistance,
		Origin:      req.Position,
		Radius:      req.Radius,
		Color:       req.Color,
	}); err != nil {
		return 0, fmt.Errorf("projectile: add projectile: %w", err)
	}

	facing, _ := req.Velocity.Normalize()
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		Position: req.Position,
		Facing:   facing,
		Scale:    1,
	}); err != nil {
		return 0, fmt.Errorf("projectile: add transform: %w", err)
	}

	return entity, nil
}
