package combat

import (
	"time"

	"github.com/milk9111/elemental/geom"
)

const (
	EventDamageNumber       = "damage_number"
	EventActorKilled        = "actor_killed"
	EventActorRemoved       = "actor_removed"
	EventActorState         = "actor_state"
	EventPlayerDamaged      = "player_damaged"
	EventExperienceGranted  = "experience_granted"
	EventLevelUp            = "level_up"
	EventProjectileSpawned  = "projectile_spawned"
	EventProjectileRemoved  = "projectile_removed"
	EventPlayerRepositioned = "player_repositioned"
	EventMovementRequested  = "movement_requested"
	EventAbilityCast        = "ability_cast"
)

type DamageNumber struct {
	Position geom.Vec3
	Amount   int
	Source   string
}

type ActorKilled struct {
	ActorID  string
	Position geom.Vec3
}

type ActorRemoved struct {
	ActorID string
}

type ActorStateChanged struct {
	ActorID string
	From    string
	To      string
}

type PlayerDamaged struct {
	Amount float64
	Health float64
}

type ExperienceGranted struct {
	Amount int
	Total  int
}

type LevelUp struct {
	Level    int
	Message  string
	Unlocked []string
}

type ProjectileSpawned struct {
	ID    string
	Owner string
	Type  ProjectileType
}

type RemovalReason string

const (
	RemovedTimeout RemovalReason = "timeout"
	RemovedRange   RemovalReason = "range"
	RemovedGround  RemovalReason = "ground"
	RemovedHit     RemovalReason = "hit"
)

type ProjectileRemoved struct {
	ID     string
	Reason RemovalReason
	Target string
}

type PlayerRepositioned struct {
	From geom.Vec3
	To   geom.Vec3
}

type MovementRequested struct {
	Kind      string
	Direction geom.Vec3
	Distance  float64
	Cooldown  time.Duration
}

type AbilityCast struct {
	ID   string
	Name string
}
