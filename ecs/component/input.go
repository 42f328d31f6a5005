package component

import (
	"github.com/milk9111/elemental/ability"
	"github.com/milk9111/elemental/geom"
	"github.com/milk9111/elemental/progression"
)

// Intent is the player's edge-triggered input for one tick. The host fills
// it before the tick and the combat systems consume it.
type Intent struct {
	// Aim is the camera-forward cast direction.
	Aim geom.Vec3

	Attack bool
	Casts  []ability.ID
	Moves  []progression.Movement

	// Airborne and Moving describe the avatar's locomotion state, which
	// gates air dash and slide.
	Airborne bool
	Moving   bool
}

func (i *Intent) Clear() {
	aim := i.Aim
	*i = Intent{Aim: aim}
}

var IntentComponent = NewComponent[Intent]("intent")
