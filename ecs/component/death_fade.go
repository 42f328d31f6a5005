package component

import "time"

// DeathFade marks a dead actor that is fading out before removal.
type DeathFade struct {
	Since    time.Duration
	Progress float64
}

var DeathFadeComponent = NewComponent[DeathFade]("death_fade")
