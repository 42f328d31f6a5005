package progression

import "time"

// Movement is a traversal ability that costs energy and has its own
// cooldown. The core only gates it; the host performs the actual motion.
type Movement string

const (
	Dash    Movement = "dash"
	AirDash Movement = "air_dash"
	Slide   Movement = "slide"
)

type MovementSpec struct {
	Cost     float64
	Cooldown time.Duration
	Distance float64
}

var movements = map[Movement]MovementSpec{
	Dash:    {Cost: 20, Cooldown: 1500 * time.Millisecond, Distance: 8},
	AirDash: {Cost: 25, Cooldown: 2 * time.Second, Distance: 8},
	Slide:   {Cost: 15, Cooldown: time.Second},
}

func LookupMovement(m Movement) (MovementSpec, bool) {
	spec, ok := movements[m]
	return spec, ok
}

// MovementCooldown is the time left before m can be used again.
func (p *Player) MovementCooldown(m Movement) time.Duration {
	return p.cooldowns[m]
}

// TryMovement spends energy and starts the cooldown for m. It fails
// without side effects while m is cooling down or energy is short.
func (p *Player) TryMovement(m Movement) bool {
	spec, ok := movements[m]
	if !ok || p.cooldowns[m] > 0 {
		return false
	}
	if !p.ConsumeEnergy(spec.Cost) {
		return false
	}
	if p.cooldowns == nil {
		p.cooldowns = make(map[Movement]time.Duration)
	}
	p.cooldowns[m] = spec.Cooldown
	return true
}
