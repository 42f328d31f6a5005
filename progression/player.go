// Package progression tracks the player's combat resources and growth:
// health, energy, level, experience, unlocked abilities and the cooldowns
// of movement abilities.
package progression

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/milk9111/elemental/ability"
)

const (
	DefaultHealth   = 100.0
	DefaultEnergy   = 100.0
	DefaultXPToNext = 100
	EnergyRegen     = 10.0
)

// LevelUp describes one level gained.
type LevelUp struct {
	Level    int
	Unlocked []ability.ID
	Message  string
}

// Player is the player's combat state. The zero value is not usable; use New.
type Player struct {
	Health    float64
	MaxHealth float64
	Energy    float64
	MaxEnergy float64
	Level     int
	XP        int
	XPToNext  int
	Unlocked  []ability.ID

	cooldowns map[Movement]time.Duration
	curve     Curve
}

// New returns a level 1 player. A nil curve uses DefaultCurve.
func New(curve Curve) *Player {
	if curve == nil {
		curve = DefaultCurve{}
	}
	p := &Player{curve: curve}
	p.Reset()
	return p
}

// SetCurve swaps the level curve used for future level-ups. A nil curve
// uses DefaultCurve.
func (p *Player) SetCurve(curve Curve) {
	if curve == nil {
		curve = DefaultCurve{}
	}
	p.curve = curve
}

// Reset restores the starting state.
func (p *Player) Reset() {
	p.Health, p.MaxHealth = DefaultHealth, DefaultHealth
	p.Energy, p.MaxEnergy = DefaultEnergy, DefaultEnergy
	p.Level = 1
	p.XP = 0
	p.XPToNext = DefaultXPToNext
	p.Unlocked = nil
	p.cooldowns = make(map[Movement]time.Duration)
}

func (p *Player) Dead() bool {
	return p.Health <= 0
}

// TakeDamage lowers health, never below zero.
func (p *Player) TakeDamage(amount float64) {
	if amount <= 0 || math.IsNaN(amount) {
		return
	}
	p.Health = math.Max(0, p.Health-amount)
}

// ConsumeEnergy spends amount if the player has that much.
func (p *Player) ConsumeEnergy(amount float64) bool {
	if amount < 0 || p.Energy < amount {
		return false
	}
	p.Energy -= amount
	return true
}

// Regenerate restores energy for dt of elapsed time and counts movement
// cooldowns down.
func (p *Player) Regenerate(dt time.Duration) {
	if dt <= 0 {
		return
	}
	p.Energy = math.Min(p.MaxEnergy, p.Energy+EnergyRegen*dt.Seconds())
	for k, left := range p.cooldowns {
		p.cooldowns[k] = max(0, left-dt)
	}
}

// HasUnlocked reports whether id may be cast.
func (p *Player) HasUnlocked(id ability.ID) bool {
	return slices.Contains(p.Unlocked, id)
}

// Unlock adds id to the unlocked set once.
func (p *Player) Unlock(id ability.ID) bool {
	if _, ok := ability.Lookup(id); !ok || p.HasUnlocked(id) {
		return false
	}
	p.Unlocked = append(p.Unlocked, id)
	return true
}

// GainXP adds experience and applies every level-up it pays for.
func (p *Player) GainXP(amount int) []LevelUp {
	if amount <= 0 {
		return nil
	}
	p.XP += amount

	var ups []LevelUp
	for p.XPToNext > 0 && p.XP >= p.XPToNext {
		ups = append(ups, p.levelUp())
	}
	return ups
}

func (p *Player) levelUp() LevelUp {
	p.XP -= p.XPToNext
	p.Level++

	step := p.curve.Step(p.Level, p.XPToNext, p.MaxHealth)
	p.XPToNext = step.XPToNext
	p.MaxHealth = step.MaxHealth
	p.Health = p.MaxHealth

	up := LevelUp{
		Level:   p.Level,
		Message: fmt.Sprintf("Level Up! You are now level %d!", p.Level),
	}
	if step.Unlock != "" && p.Unlock(step.Unlock) {
		a, _ := ability.Lookup(step.Unlock)
		up.Unlocked = append(up.Unlocked, step.Unlock)
		up.Message += fmt.Sprintf(" Unlocked: %s!", a.Name)
	}
	return up
}
