package system

import (
	"math"
	"time"

	"github.com/milk9111/elemental/combat"
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/geom"
)

const (
	WindupDuration  = 800 * time.Millisecond
	AttackDuration  = 300 * time.Millisecond
	RecoverDuration = 500 * time.Millisecond

	PatrolRadius = 5.0
	PatrolSpeed  = 3.0
	ChaseSpeed   = 4.0
	// LeashFactor scales aggro range into the distance at which a chase is
	// abandoned.
	LeashFactor = 1.5

	ShotLead     = 0.3
	ShotSpeed    = 10.0
	ShotDamage   = 15.0
	ShotRange    = 20.0
	ShotRadius   = 0.4
	ShotColor    = "#ff0000"
	MeleeDamage  = 20.0
	MeleeReach   = 3.0
	shotHeight   = 0.5
	windupPulses = 4
	windupSwell  = 0.2
)

// AISystem runs the idle, chasing, windup, attack, recover state machine
// of every living actor against the player's current position.
type AISystem struct {
	sink    combat.Sink
	spawner *ProjectileSpawner
}

func NewAISystem(sink combat.Sink, spawner *ProjectileSpawner) *AISystem {
	return &AISystem{sink: sink, spawner: spawner}
}

type aiFrame struct {
	w         *ecs.World
	now       time.Duration
	dt        float64
	elapsed   float64
	playerPos geom.Vec3
	playerVel geom.Vec3
}

func (s *AISystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, ptr, player, ok := playerAvatar(w)
	if !ok {
		return
	}
	f := aiFrame{
		w:         w,
		now:       w.Clock().Now(),
		dt:        w.Clock().DeltaSeconds(),
		elapsed:   w.Clock().Seconds(),
		playerPos: ptr.Position,
		playerVel: player.Velocity,
	}

	ecs.ForEach3(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), component.AIStateComponent.Kind(),
		func(e ecs.Entity, a *component.Actor, tr *component.Transform, st *component.AIState) {
			if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); !ok || h.Dead {
				return
			}
			s.step(f, a, tr, st)
		})
}

func (s *AISystem) step(f aiFrame, a *component.Actor, tr *component.Transform, st *component.AIState) {
	dist := tr.Position.Dist(f.playerPos)
	inState := f.now - st.Since

	switch st.Current {
	case component.StateIdle:
		t := f.elapsed
		target := geom.V(
			a.Spawn.X+math.Sin(t)*PatrolRadius,
			a.Spawn.Y,
			a.Spawn.Z+math.Cos(t)*PatrolRadius,
		)
		if dir, ok := geom.PlanarDirection(tr.Position, target); ok {
			tr.Facing = dir
		}
		tr.Position = geom.StepPlanar(tr.Position, target, PatrolSpeed*f.dt)
		if dist < a.AggroRange {
			s.enter(f, a, st, component.StateChasing)
		}

	case component.StateChasing:
		if dist > a.AttackRange {
			tr.Position = geom.StepPlanar(tr.Position, f.playerPos, ChaseSpeed*f.dt)
		}
		facePlayer(tr, f.playerPos)
		switch {
		case dist > a.AggroRange*LeashFactor:
			s.enter(f, a, st, component.StateIdle)
		case dist <= a.AttackRange:
			s.enter(f, a, st, component.StateWindup)
		}

	case component.StateWindup:
		progress := float64(inState) / float64(WindupDuration)
		tr.Scale = 1 + math.Sin(progress*math.Pi*windupPulses)*windupSwell
		facePlayer(tr, f.playerPos)
		if inState >= WindupDuration {
			s.enter(f, a, st, component.StateAttack)
		}

	case component.StateAttack:
		if !st.Fired {
			st.Fired = true
			s.attack(f, a, tr)
		}
		if inState >= AttackDuration {
			tr.Scale = 1
			s.enter(f, a, st, component.StateRecover)
		}

	case component.StateRecover:
		if inState >= RecoverDuration {
			if dist <= a.AggroRange {
				s.enter(f, a, st, component.StateChasing)
			} else {
				s.enter(f, a, st, component.StateIdle)
			}
		}

	default:
		s.enter(f, a, st, component.StateIdle)
	}
}

func (s *AISystem) enter(f aiFrame, a *component.Actor, st *component.AIState, next component.StateID) {
	prev := st.Current
	st.Current = next
	st.Since = f.now
	st.Fired = false
	f.w.Events().Emit(combat.EventActorState, combat.ActorStateChanged{ActorID: a.ID, From: string(prev), To: string(next)})
}

func (s *AISystem) attack(f aiFrame, a *component.Actor, tr *component.Transform) {
	switch a.Kind {
	case component.ActorRanged:
		if s.spawner == nil {
			return
		}
		aim := geom.PredictPosition(f.playerPos, f.playerVel, ShotLead)
		dir, ok := aim.Sub(tr.Position).Normalize()
		if !ok {
			return
		}
		s.spawner.Spawn(f.w, combat.SpawnRequest{
			Owner:       a.ID,
			Position:    tr.Position.Add(geom.V(0, shotHeight, 0)),
			Velocity:    dir.Scale(ShotSpeed),
			Damage:      ShotDamage,
			Type:        combat.ProjectileEnemyShot,
			MaxDistance: ShotRange,
			Radius:      ShotRadius,
			Color:       ShotColor,
		})
	default:
		if s.sink != nil && tr.Position.Dist(f.playerPos) < MeleeReach {
			s.sink.DamagePlayer(MeleeDamage)
		}
	}
}

func facePlayer(tr *component.Transform, player geom.Vec3) {
	if dir, ok := player.Sub(tr.Position).Normalize(); ok {
		tr.Facing = dir
	}
}
