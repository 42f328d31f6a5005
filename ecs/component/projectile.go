package component

import (
	"time"

	"github.com/milk9111/elemental/combat"
	"github.com/milk9111/elemental/geom"
)

// Projectile moves in a straight line from Origin. Its position lives in
// the entity's Transform.
type Projectile struct {
	ID          string
	Owner       string
	Velocity    geom.Vec3
	Damage      float64
	Type        combat.ProjectileType
	SpawnedAt   time.Duration
	MaxDistance float64
	Origin      geom.Vec3
	Radius      float64
	Color       string
}

var ProjectileComponent = NewComponent[Projectile]("projectile")
