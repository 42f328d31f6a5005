package system

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/milk9111/elemental/combat"
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/entity"
)

// ProjectileSpawner turns spawn requests into projectile entities.
type ProjectileSpawner struct {
	ids    func() string
	logger *slog.Logger
}

// NewProjectileSpawner uses ids to name projectiles; nil means random UUIDs.
func NewProjectileSpawner(ids func() string, logger *slog.Logger) *ProjectileSpawner {
	if ids == nil {
		ids = uuid.NewString
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectileSpawner{ids: ids, logger: logger}
}

func (s *ProjectileSpawner) Spawn(w *ecs.World, req combat.SpawnRequest) (ecs.Entity, bool) {
	id := s.ids()
	e, err := entity.NewProjectile(w, id, req)
	if err != nil {
		s.logger.Warn("projectile spawn rejected", "owner", req.Owner, "type", req.Type, "err", err)
		return 0, false
	}
	w.Events().Emit(combat.EventProjectileSpawned, combat.ProjectileSpawned{ID: id, Owner: req.Owner, Type: req.Type})
	return e, true
}
