package component

import "github.com/milk9111/elemental/geom"

type ActorKind string

const (
	ActorMelee  ActorKind = "melee"
	ActorRanged ActorKind = "ranged"
)

// Actor is a hostile AI-driven combatant.
type Actor struct {
	ID          string
	Kind        ActorKind
	AggroRange  float64
	AttackRange float64
	// Spawn anchors the idle patrol circle.
	Spawn geom.Vec3
}

var ActorComponent = NewComponent[Actor]("actor")
