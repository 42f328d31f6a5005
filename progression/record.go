package progression

import (
	"math"
	"time"

	"github.com/milk9111/elemental/ability"
)

// Record is the flat, persisted form of the player's progression.
type Record struct {
	Health            float64  `yaml:"health"`
	MaxHealth         float64  `yaml:"max_health"`
	Energy            float64  `yaml:"energy"`
	MaxEnergy         float64  `yaml:"max_energy"`
	Level             int      `yaml:"level"`
	XP                int      `yaml:"xp"`
	XPToNextLevel     int      `yaml:"xp_to_next_level"`
	UnlockedAbilities []string `yaml:"unlocked_abilities"`
	// SavedAt is wall-clock time, not simulation time.
	SavedAt time.Time `yaml:"saved_at"`
}

// Record snapshots the player. The caller stamps SavedAt.
func (p *Player) Record() Record {
	unlocked := make([]string, 0, len(p.Unlocked))
	for _, id := range p.Unlocked {
		unlocked = append(unlocked, string(id))
	}
	return Record{
		Health:            p.Health,
		MaxHealth:         p.MaxHealth,
		Energy:            p.Energy,
		MaxEnergy:         p.MaxEnergy,
		Level:             p.Level,
		XP:                p.XP,
		XPToNextLevel:     p.XPToNext,
		UnlockedAbilities: unlocked,
	}
}

// Restore replaces the player's progression with r. Values are clamped
// into range and unknown abilities dropped; an xp total above the
// threshold is kept as is and levels on the next gain.
func (p *Player) Restore(r Record) {
	p.MaxHealth = positive(r.MaxHealth, DefaultHealth)
	p.Health = clamp(r.Health, 0, p.MaxHealth)
	p.MaxEnergy = positive(r.MaxEnergy, DefaultEnergy)
	p.Energy = clamp(r.Energy, 0, p.MaxEnergy)
	p.Level = max(1, r.Level)
	p.XP = max(0, r.XP)
	p.XPToNext = r.XPToNextLevel
	if p.XPToNext <= 0 {
		p.XPToNext = DefaultXPToNext
	}
	p.Unlocked = nil
	for _, id := range r.UnlockedAbilities {
		p.Unlock(ability.ID(id))
	}
	p.cooldowns = make(map[Movement]time.Duration)
}

func positive(v, fallback float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return hi
	}
	return math.Max(lo, math.Min(hi, v))
}
