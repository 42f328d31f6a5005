package system

import (
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/progression"
)

// UpkeepSystem regenerates the player's energy and counts down movement
// ability cooldowns.
type UpkeepSystem struct {
	player *progression.Player
}

func NewUpkeepSystem(player *progression.Player) *UpkeepSystem {
	return &UpkeepSystem{player: player}
}

func (s *UpkeepSystem) Update(w *ecs.World) {
	if w == nil || s.player == nil || s.player.Dead() {
		return
	}
	s.player.Regenerate(w.Clock().Delta())
}
