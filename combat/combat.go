// Package combat holds the contracts shared by the combat systems: who owns
// a projectile, what a spawn request carries, how damage leaves the core and
// which events a tick can produce.
package combat

import (
	"time"

	"github.com/milk9111/elemental/geom"
)

// PlayerOwner marks projectiles fired by the player. Any other owner is the
// identity of the actor that fired it.
const PlayerOwner = "player"

const (
	ProjectileTimeout = 3000 * time.Millisecond
	PlayerHitRadius   = 0.6
	EnemyHitRadius    = 0.7
	GroundLevel       = 0.5
	KillXP            = 50
)

type ProjectileType string

const (
	ProjectileFlame     ProjectileType = "flame"
	ProjectileThunder   ProjectileType = "thunder"
	ProjectileEnemyShot ProjectileType = "enemy_shot"
)

// SpawnRequest asks the projectile layer to create a projectile on this tick.
type SpawnRequest struct {
	Owner       string
	Position    geom.Vec3
	Velocity    geom.Vec3
	Damage      float64
	Type        ProjectileType
	MaxDistance float64
	Radius      float64
	Color       string
}

// Target is a frozen view of a live enemy handed to targeting code.
type Target struct {
	ID       string
	Position geom.Vec3
}

func TargetPosition(t Target) geom.Vec3 {
	return t.Position
}

//go:generate go tool mockgen -source=combat.go -destination=mocks/mock_sink.go -package=mocks

// Sink receives the damage side effects of combat code.
type Sink interface {
	// DamageActor applies damage to a live actor and reports whether this
	// hit killed it.
	DamageActor(id string, amount float64) bool
	DamagePlayer(amount float64)
	GrantXP(amount int)
	DamageNumber(pos geom.Vec3, amount float64, source string)
}
