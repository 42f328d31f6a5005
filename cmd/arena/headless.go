package main

import (
	"log/slog"
	"time"

	"github.com/milk9111/elemental/combat"
	"github.com/milk9111/elemental/geom"
	"github.com/milk9111/elemental/sim"
)

const headlessStep = time.Second / 60

// runHeadless lets a stationary player fight the roster, swinging and
// casting at the nearest actor, and logs what happens.
func runHeadless(s *sim.Simulation, ticks int, logger *slog.Logger) {
	pos := s.Snapshot().Player.Position
	for i := 0; i < ticks; i++ {
		snap := s.Snapshot()
		in := sim.Input{
			Position: pos,
			Aim:      aimAtNearest(snap),
			Keys:     map[sim.Key]bool{},
		}
		// Alternate so every key gets a fresh press.
		if i%2 == 0 {
			in.Keys[sim.KeyAttack] = true
			for _, slot := range abilitySlots {
				if snap.Player.AbilityCooldowns[string(slot.id)] == 0 {
					in.Keys[slot.key] = true
				}
			}
		}

		for _, e := range s.Tick(headlessStep, in) {
			switch d := e.Data.(type) {
			case combat.PlayerRepositioned:
				pos = d.To
			case combat.MovementRequested:
				pos = pos.Add(d.Direction.Scale(d.Distance))
			case combat.ActorStateChanged:
				logger.Debug(e.Type, "actor", d.ActorID, "from", d.From, "to", d.To)
			default:
				logger.Info(e.Type, "data", e.Data)
			}
		}
		if s.Player().Dead() {
			logger.Info("player defeated", "tick", i)
			break
		}
	}

	p := s.Snapshot().Player
	logger.Info("headless run finished",
		"time", s.Now(),
		"level", p.Level,
		"xp", p.XP,
		"health", p.Health,
		"actors", len(s.Snapshot().Actors),
	)
}

func aimAtNearest(snap sim.Snapshot) geom.Vec3 {
	aim := snap.Player.Facing
	best := -1.0
	for _, a := range snap.Actors {
		if a.Dead {
			continue
		}
		d := a.Position.Dist(snap.Player.Position)
		if best >= 0 && d >= best {
			continue
		}
		if dir, ok := a.Position.Sub(snap.Player.Position).Planar().Normalize(); ok {
			aim, best = dir, d
		}
	}
	return aim
}
