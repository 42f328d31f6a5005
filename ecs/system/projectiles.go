package system

import (
	"github.com/milk9111/elemental/combat"
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/geom"
)

// ProjectileSystem advances projectiles and resolves the first terminal
// condition each one meets: timeout, range, ground, then collision.
type ProjectileSystem struct {
	sink combat.Sink
	// playerDead reports whether enemy shots should ignore the player.
	playerDead func() bool
}

func NewProjectileSystem(sink combat.Sink, playerDead func() bool) *ProjectileSystem {
	return &ProjectileSystem{sink: sink, playerDead: playerDead}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Clock().Now()
	dt := w.Clock().DeltaSeconds()

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Projectile, tr *component.Transform) {
		next := tr.Position.Add(p.Velocity.Scale(dt))

		var (
			reason combat.RemovalReason
			target string
		)
		switch {
		case now-p.SpawnedAt > combat.ProjectileTimeout:
			reason = combat.RemovedTimeout
		case next.Dist(p.Origin) > p.MaxDistance:
			reason = combat.RemovedRange
		case next.Y < combat.GroundLevel:
			reason = combat.RemovedGround
		default:
			if id, ok := s.collide(w, p, next); ok {
				reason, target = combat.RemovedHit, id
			}
		}

		if reason == "" {
			tr.Position = next
			return
		}
		id := p.ID
		ecs.DestroyEntity(w, e)
		w.Events().Emit(combat.EventProjectileRemoved, combat.ProjectileRemoved{ID: id, Reason: reason, Target: target})
	})
}

// collide applies at most one hit for p at pos and returns who was hit.
func (s *ProjectileSystem) collide(w *ecs.World, p *component.Projectile, pos geom.Vec3) (string, bool) {
	if s.sink == nil {
		return "", false
	}

	if p.Owner == combat.PlayerOwner {
		for _, t := range LiveTargets(w) {
			if !geom.SphereIntersect(pos, p.Radius, t.Position, combat.EnemyHitRadius) {
				continue
			}
			killed := s.sink.DamageActor(t.ID, p.Damage)
			s.sink.DamageNumber(t.Position, p.Damage, p.Owner)
			if killed {
				s.sink.GrantXP(combat.KillXP)
			}
			return t.ID, true
		}
		return "", false
	}

	if s.playerDead != nil && s.playerDead() {
		return "", false
	}
	_, ptr, _, ok := playerAvatar(w)
	if !ok || !geom.SphereIntersect(pos, p.Radius, ptr.Position, combat.PlayerHitRadius) {
		return "", false
	}
	s.sink.DamagePlayer(p.Damage)
	s.sink.DamageNumber(ptr.Position, p.Damage, p.Owner)
	return combat.PlayerOwner, true
}
