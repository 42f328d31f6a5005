package system

import (
	"log/slog"
	"math"

	"github.com/milk9111/elemental/combat"
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/geom"
	"github.com/milk9111/elemental/progression"
)

// WorldSink applies combat side effects to the world and the player's
// progression, and reports them on the world event queue.
type WorldSink struct {
	w      *ecs.World
	player *progression.Player
	logger *slog.Logger
}

func NewWorldSink(w *ecs.World, player *progression.Player, logger *slog.Logger) *WorldSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorldSink{w: w, player: player, logger: logger}
}

func (s *WorldSink) DamageActor(id string, amount float64) bool {
	e, actor, ok := findActor(s.w, id)
	if !ok {
		return false
	}
	health, ok := ecs.Get(s.w, e, component.HealthComponent.Kind())
	if !ok || !health.Apply(amount) {
		return false
	}

	var pos geom.Vec3
	if tr, ok := ecs.Get(s.w, e, component.TransformComponent.Kind()); ok {
		pos = tr.Position
	}
	now := s.w.Clock().Now()
	_ = ecs.Add(s.w, e, component.DeathFadeComponent.Kind(), &component.DeathFade{Since: now})
	s.w.Deferred().CancelOwner(actor.ID)
	s.w.Events().Emit(combat.EventActorKilled, combat.ActorKilled{ActorID: actor.ID, Position: pos})
	s.logger.Debug("actor killed", "actor", actor.ID, "kind", actor.Kind, "at", now)
	return true
}

func (s *WorldSink) DamagePlayer(amount float64) {
	if s.player == nil || s.player.Dead() {
		return
	}
	s.player.TakeDamage(amount)
	s.w.Events().Emit(combat.EventPlayerDamaged, combat.PlayerDamaged{Amount: amount, Health: s.player.Health})
	if s.player.Dead() {
		n := s.w.Deferred().CancelOwner(combat.PlayerOwner)
		s.logger.Info("player defeated", "cancelled", n)
	}
}

func (s *WorldSink) GrantXP(amount int) {
	if s.player == nil || amount <= 0 {
		return
	}
	ups := s.player.GainXP(amount)
	s.w.Events().Emit(combat.EventExperienceGranted, combat.ExperienceGranted{Amount: amount, Total: s.player.XP})
	for _, up := range ups {
		unlocked := make([]string, 0, len(up.Unlocked))
		for _, id := range up.Unlocked {
			unlocked = append(unlocked, string(id))
		}
		s.w.Events().Emit(combat.EventLevelUp, combat.LevelUp{Level: up.Level, Message: up.Message, Unlocked: unlocked})
		s.logger.Info("level up", "level", up.Level, "unlocked", unlocked)
	}
}

func (s *WorldSink) DamageNumber(pos geom.Vec3, amount float64, source string) {
	s.w.Events().Emit(combat.EventDamageNumber, combat.DamageNumber{
		Position: pos,
		Amount:   int(math.Round(amount)),
		Source:   source,
	})
}

var _ combat.Sink = (*WorldSink)(nil)
