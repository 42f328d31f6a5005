package entity

import (
	"fmt"

	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/prefabs"
)

// NewPlayer creates the player's avatar. Its health lives in the
// progression state, not in a Health component.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	facing, _ := Vec3(spec.Facing).Normalize()
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		Position: Vec3(spec.Position),
		Facing:   facing,
		Scale:    1,
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &component.Player{}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, entity, component.IntentComponent.Kind(), &component.Intent{}); err != nil {
		return 0, fmt.Errorf("player: add intent: %w", err)
	}

	return entity, nil
}
