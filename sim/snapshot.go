package sim

import (
	"time"

	"github.com/milk9111/elemental/ability"
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/geom"
	"github.com/milk9111/elemental/progression"
)

type ActorView struct {
	ID        string
	Kind      string
	State     string
	Position  geom.Vec3
	Facing    geom.Vec3
	Health    float64
	MaxHealth float64
	Dead      bool
	Scale     float64
}

type ProjectileView struct {
	ID       string
	Owner    string
	Type     string
	Color    string
	Position geom.Vec3
	Velocity geom.Vec3
	Radius   float64
}

type PlayerView struct {
	Position          geom.Vec3
	Facing            geom.Vec3
	Health            float64
	MaxHealth         float64
	Energy            float64
	MaxEnergy         float64
	Level             int
	XP                int
	XPToNext          int
	Unlocked          []string
	AbilityCooldowns  map[string]time.Duration
	MovementCooldowns map[string]time.Duration
}

// Snapshot is a frozen copy of the simulation for renderers and HUDs.
// Nothing in it aliases simulation state.
type Snapshot struct {
	Time        time.Duration
	Paused      bool
	Player      PlayerView
	Actors      []ActorView
	Projectiles []ProjectileView
}

func (s *Simulation) Snapshot() Snapshot {
	w := s.world
	now := w.Clock().Now()
	snap := Snapshot{Time: now, Paused: s.paused}

	if tr, ok := ecs.Get(w, s.avatar, component.TransformComponent.Kind()); ok {
		snap.Player.Position = tr.Position
		snap.Player.Facing = tr.Facing
	}
	p := s.player
	snap.Player.Health, snap.Player.MaxHealth = p.Health, p.MaxHealth
	snap.Player.Energy, snap.Player.MaxEnergy = p.Energy, p.MaxEnergy
	snap.Player.Level, snap.Player.XP, snap.Player.XPToNext = p.Level, p.XP, p.XPToNext
	for _, id := range p.Unlocked {
		snap.Player.Unlocked = append(snap.Player.Unlocked, string(id))
	}
	snap.Player.AbilityCooldowns = make(map[string]time.Duration)
	for _, a := range ability.All() {
		snap.Player.AbilityCooldowns[string(a.ID)] = s.ledger.Remaining(a.ID, now)
	}
	snap.Player.MovementCooldowns = make(map[string]time.Duration)
	for _, m := range []progression.Movement{progression.Dash, progression.AirDash, progression.Slide} {
		snap.Player.MovementCooldowns[string(m)] = p.MovementCooldown(m)
	}

	ecs.ForEach3(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), component.HealthComponent.Kind(),
		func(e ecs.Entity, a *component.Actor, tr *component.Transform, h *component.Health) {
			view := ActorView{
				ID:        a.ID,
				Kind:      string(a.Kind),
				Position:  tr.Position,
				Facing:    tr.Facing,
				Health:    h.Current,
				MaxHealth: h.Max,
				Dead:      h.Dead,
				Scale:     tr.Scale,
			}
			if st, ok := ecs.Get(w, e, component.AIStateComponent.Kind()); ok {
				view.State = string(st.Current)
			}
			snap.Actors = append(snap.Actors, view)
		})

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, p *component.Projectile, tr *component.Transform) {
			snap.Projectiles = append(snap.Projectiles, ProjectileView{
				ID:       p.ID,
				Owner:    p.Owner,
				Type:     string(p.Type),
				Color:    p.Color,
				Position: tr.Position,
				Velocity: p.Velocity,
				Radius:   p.Radius,
			})
		})

	return snap
}
