package system

import (
	"log/slog"
	"time"

	"github.com/milk9111/elemental/ability"
	"github.com/milk9111/elemental/combat"
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/geom"
	"github.com/milk9111/elemental/progression"
)

const basicAttackKey = "basic_attack"

// AbilitySystem consumes the player's intent for the tick: the basic melee
// swing, elemental ability casts and movement abilities.
type AbilitySystem struct {
	player  *progression.Player
	ledger  *ability.Ledger
	sink    combat.Sink
	spawner *ProjectileSpawner
	gate    ability.Gate
	logger  *slog.Logger
}

func NewAbilitySystem(player *progression.Player, ledger *ability.Ledger, sink combat.Sink, spawner *ProjectileSpawner, logger *slog.Logger) *AbilitySystem {
	if ledger == nil {
		ledger = ability.NewLedger()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AbilitySystem{
		player:  player,
		ledger:  ledger,
		sink:    sink,
		spawner: spawner,
		logger:  logger,
	}
}

func (s *AbilitySystem) Ledger() *ability.Ledger {
	return s.ledger
}

func (s *AbilitySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	e, tr, _, ok := playerAvatar(w)
	if !ok {
		return
	}
	intent, ok := ecs.Get(w, e, component.IntentComponent.Kind())
	if !ok {
		return
	}
	defer intent.Clear()

	if s.player == nil || s.player.Dead() {
		return
	}
	now := w.Clock().Now()
	aim := intent.Aim
	if _, ok := aim.Normalize(); !ok {
		aim = tr.Facing
	}

	if intent.Attack {
		s.basicAttack(w, tr, aim, now)
	}
	for _, id := range intent.Casts {
		s.cast(w, tr, aim, id, now)
	}
	for _, m := range intent.Moves {
		s.move(w, tr, intent, aim, m)
	}
}

func (s *AbilitySystem) basicAttack(w *ecs.World, tr *component.Transform, aim geom.Vec3, now time.Duration) {
	facing, ok := aim.Planar().Normalize()
	if !ok {
		return
	}
	if !s.gate.Ready(basicAttackKey, ability.BasicAttackCooldown, now) {
		return
	}
	tr.Facing = facing
	DamageArc(w, s.sink, tr.Position, facing, ability.BasicAttackArc, ability.BasicAttackRange, ability.BasicAttackDamage, combat.PlayerOwner)
}

func (s *AbilitySystem) cast(w *ecs.World, tr *component.Transform, aim geom.Vec3, id ability.ID, now time.Duration) {
	a, ok := ability.Lookup(id)
	if !ok || !s.player.HasUnlocked(id) {
		return
	}
	if a.EnergyCost > 0 && s.player.Energy < a.EnergyCost {
		return
	}

	ctx := ability.Context{
		Caster:    tr.Position,
		Direction: aim,
		Enemies:   LiveTargets(w),
		Spawn: func(req combat.SpawnRequest) {
			if s.spawner != nil {
				s.spawner.Spawn(w, req)
			}
		},
		Reposition: func(distance float64, dir geom.Vec3) {
			from := tr.Position
			tr.Position = from.Add(dir.Scale(distance))
			w.Events().Emit(combat.EventPlayerRepositioned, combat.PlayerRepositioned{From: from, To: tr.Position})
		},
		DamageArc: func(origin, dir geom.Vec3, arc, rng, damage float64) {
			DamageArc(w, s.sink, origin, dir, arc, rng, damage, combat.PlayerOwner)
		},
		Schedule: func(delay time.Duration, fn func()) {
			w.Deferred().Schedule(now+delay, combat.PlayerOwner, func(*ecs.World) { fn() })
		},
	}
	if !s.ledger.Execute(id, ctx, now) {
		return
	}
	if a.EnergyCost > 0 {
		s.player.ConsumeEnergy(a.EnergyCost)
	}
	w.Events().Emit(combat.EventAbilityCast, combat.AbilityCast{ID: string(a.ID), Name: a.Name})
	s.logger.Debug("ability cast", "ability", a.ID, "at", now)
}

func (s *AbilitySystem) move(w *ecs.World, tr *component.Transform, intent *component.Intent, aim geom.Vec3, m progression.Movement) {
	switch m {
	case progression.AirDash:
		if !intent.Airborne {
			return
		}
	case progression.Slide:
		if !intent.Moving || intent.Airborne {
			return
		}
	}
	spec, ok := progression.LookupMovement(m)
	if !ok {
		return
	}
	dir, ok := aim.Planar().Normalize()
	if !ok {
		dir = tr.Facing
	}
	if !s.player.TryMovement(m) {
		return
	}
	w.Events().Emit(combat.EventMovementRequested, combat.MovementRequested{
		Kind:      string(m),
		Direction: dir,
		Distance:  spec.Distance,
		Cooldown:  spec.Cooldown,
	})
}
