// Package sim drives the combat core one tick at a time. It owns the ECS
// world, the player's progression and the ability ledger, and exposes
// frozen snapshots and per-tick events to the host.
package sim

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/milk9111/elemental/ability"
	"github.com/milk9111/elemental/ecs"
	"github.com/milk9111/elemental/ecs/component"
	"github.com/milk9111/elemental/ecs/entity"
	"github.com/milk9111/elemental/ecs/system"
	"github.com/milk9111/elemental/geom"
	"github.com/milk9111/elemental/prefabs"
	"github.com/milk9111/elemental/progression"
)

type Options struct {
	Logger *slog.Logger
	// Rand drives random spawns. Defaults to a time-seeded source.
	Rand *rand.Rand
	// Curve overrides the level curve.
	Curve progression.Curve
	// IDs names actors and projectiles. Defaults to random UUIDs.
	IDs func() string
	// Arena overrides the arena prefab.
	Arena *prefabs.ArenaSpec
}

type Simulation struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	player    *progression.Player
	ledger    *ability.Ledger
	sink      *system.WorldSink
	avatar    ecs.Entity
	arena     *prefabs.ArenaSpec

	prevKeys map[Key]bool
	lastPos  geom.Vec3
	hasLast  bool
	paused   bool

	rng    *rand.Rand
	ids    func() string
	logger *slog.Logger
}

func New(opts Options) (*Simulation, error) {
	arena := opts.Arena
	if arena == nil {
		loaded, err := prefabs.LoadArenaSpec()
		if err != nil {
			return nil, fmt.Errorf("sim: %w", err)
		}
		arena = loaded
	} else if err := arena.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	s := &Simulation{
		world:    ecs.NewWorld(),
		player:   progression.New(opts.Curve),
		ledger:   ability.NewLedger(),
		arena:    arena,
		prevKeys: make(map[Key]bool),
		rng:      opts.Rand,
		ids:      opts.IDs,
		logger:   opts.Logger,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.ids == nil {
		s.ids = uuid.NewString
	}
	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	avatar, err := entity.NewPlayer(s.world, arena.Player)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	s.avatar = avatar

	s.sink = system.NewWorldSink(s.world, s.player, s.logger)
	spawner := system.NewProjectileSpawner(s.ids, s.logger)
	s.scheduler = ecs.NewScheduler(
		system.NewUpkeepSystem(s.player),
		system.NewDeferredSystem(),
		system.NewAISystem(s.sink, spawner),
		system.NewAbilitySystem(s.player, s.ledger, s.sink, spawner, s.logger),
		system.NewProjectileSystem(s.sink, s.player.Dead),
		system.NewDeathFadeSystem(),
	)

	for _, spec := range arena.Actors {
		if _, err := entity.NewEnemy(s.world, s.ids(), spec); err != nil {
			return nil, fmt.Errorf("sim: spawn roster: %w", err)
		}
	}
	s.logger.Debug("simulation ready", "arena", arena.Name, "actors", len(arena.Actors))
	return s, nil
}

// Tick advances the simulation by dt and returns the events it produced.
// A paused simulation does nothing.
func (s *Simulation) Tick(dt time.Duration, in Input) []ecs.Event {
	if s.paused {
		return nil
	}
	s.world.Clock().Advance(dt)
	s.applyInput(dt, in)
	s.scheduler.Update(s.world)

	if tr, ok := ecs.Get(s.world, s.avatar, component.TransformComponent.Kind()); ok {
		s.lastPos, s.hasLast = tr.Position, true
	}
	return s.world.Events().Drain()
}

func (s *Simulation) applyInput(dt time.Duration, in Input) {
	tr, ok := ecs.Get(s.world, s.avatar, component.TransformComponent.Kind())
	if !ok {
		return
	}
	if in.Position.IsFinite() {
		tr.Position = in.Position
	}
	if aim, ok := in.Aim.Normalize(); ok {
		if planar, ok := aim.Planar().Normalize(); ok {
			tr.Facing = planar
		}
	}

	if marker, ok := ecs.Get(s.world, s.avatar, component.PlayerComponent.Kind()); ok {
		switch {
		case in.Velocity != nil && in.Velocity.IsFinite():
			marker.Velocity = *in.Velocity
		case s.hasLast && dt > 0:
			marker.Velocity = tr.Position.Sub(s.lastPos).Scale(1 / dt.Seconds())
		default:
			marker.Velocity = geom.Vec3{}
		}
	}

	intent, ok := ecs.Get(s.world, s.avatar, component.IntentComponent.Kind())
	if !ok {
		return
	}
	intent.Aim = in.Aim
	intent.Airborne = in.Airborne
	intent.Moving = in.Moving
	intent.Attack = s.pressed(in, KeyAttack)
	for _, k := range abilityKeys {
		if s.pressed(in, k.key) {
			intent.Casts = append(intent.Casts, k.id)
		}
	}
	for _, k := range movementKeys {
		if s.pressed(in, k.key) {
			intent.Moves = append(intent.Moves, k.m)
		}
	}

	clear(s.prevKeys)
	for k, down := range in.Keys {
		if down {
			s.prevKeys[k] = true
		}
	}
}

func (s *Simulation) pressed(in Input, k Key) bool {
	return in.Keys[k] && !s.prevKeys[k]
}

// SpawnActor adds one actor with the arena's spawn stats. An empty kind is
// drawn at random.
func (s *Simulation) SpawnActor(pos geom.Vec3, kind component.ActorKind) (string, error) {
	if kind == "" {
		kind = component.ActorRanged
		if s.rng.Float64() > 0.5 {
			kind = component.ActorMelee
		}
	}
	id := s.ids()
	_, err := entity.NewEnemy(s.world, id, prefabs.ActorSpec{
		Kind:        string(kind),
		Position:    prefabs.Vec3Spec{X: pos.X, Y: pos.Y, Z: pos.Z},
		Health:      s.arena.Spawn.Health,
		AggroRange:  s.arena.Spawn.AggroRange,
		AttackRange: s.arena.Spawn.AttackRange,
	})
	if err != nil {
		return "", fmt.Errorf("sim: spawn actor: %w", err)
	}
	return id, nil
}

// SetArena swaps the arena used for later spawns. Actors already in the
// world keep their stats.
func (s *Simulation) SetArena(arena *prefabs.ArenaSpec) error {
	if arena == nil {
		return fmt.Errorf("sim: nil arena")
	}
	if err := arena.Validate(); err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	s.arena = arena
	return nil
}

func (s *Simulation) Arena() *prefabs.ArenaSpec {
	return s.arena
}

// SpawnRandomActor spawns at the arena's default spawn point.
func (s *Simulation) SpawnRandomActor() (string, error) {
	return s.SpawnActor(entity.Vec3(s.arena.Spawn.Position), "")
}

func (s *Simulation) SetPaused(paused bool) {
	s.paused = paused
}

func (s *Simulation) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

func (s *Simulation) Paused() bool {
	return s.paused
}

// Player exposes the progression state for persistence.
func (s *Simulation) Player() *progression.Player {
	return s.player
}

func (s *Simulation) Ledger() *ability.Ledger {
	return s.ledger
}

func (s *Simulation) Now() time.Duration {
	return s.world.Clock().Now()
}

func (s *Simulation) World() *ecs.World {
	return s.world
}
