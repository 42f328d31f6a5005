package ability

import (
	"math"
	"time"
)

const (
	BasicAttackCooldown = 500 * time.Millisecond
	BasicAttackDamage   = 35.0
	BasicAttackRange    = 3.0
	BasicAttackArc      = 2 * math.Pi / 3
)

// Gate remembers when keyed actions last fired. Unlike the Ledger it needs
// strictly more than the cooldown to have passed.
type Gate struct {
	last map[string]time.Duration
}

// Ready records a trigger for key and returns true when key has never fired
// or more than cooldown has passed since it did.
func (g *Gate) Ready(key string, cooldown, now time.Duration) bool {
	if g == nil {
		return false
	}
	if g.last == nil {
		g.last = make(map[string]time.Duration)
	}
	if last, ok := g.last[key]; ok && now-last <= cooldown {
		return false
	}
	g.last[key] = now
	return true
}
