package component

import "github.com/milk9111/elemental/geom"

// Player marks the player's avatar. Velocity is the latest estimate used to
// lead shots at it.
type Player struct {
	Velocity geom.Vec3
}

var PlayerComponent = NewComponent[Player]("player")
