package sim

import (
	"github.com/milk9111/elemental/ability"
	"github.com/milk9111/elemental/geom"
	"github.com/milk9111/elemental/progression"
)

// Key names an action intent in the host's key-state map.
type Key string

const (
	KeyAttack   Key = "attack"
	KeyAbility1 Key = "ability1"
	KeyAbility2 Key = "ability2"
	KeyAbility3 Key = "ability3"
	KeyDash     Key = "dash"
	KeyAirDash  Key = "air_dash"
	KeySlide    Key = "slide"
)

var abilityKeys = []struct {
	key Key
	id  ability.ID
}{
	{KeyAbility1, ability.FlameCore},
	{KeyAbility2, ability.ShadowOrb},
	{KeyAbility3, ability.ThunderSeed},
}

var movementKeys = []struct {
	key Key
	m   progression.Movement
}{
	{KeyDash, progression.Dash},
	{KeyAirDash, progression.AirDash},
	{KeySlide, progression.Slide},
}

// Input is what the host hands the core each tick. Keys holds the held
// state; actions fire on the tick a key goes down.
type Input struct {
	Position geom.Vec3
	// Aim is the camera-forward direction used for casting and swinging.
	Aim geom.Vec3
	// Velocity overrides the estimate derived from successive positions.
	Velocity *geom.Vec3
	Keys     map[Key]bool
	Airborne bool
	Moving   bool
}
