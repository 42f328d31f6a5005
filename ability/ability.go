// Package ability defines the player's elemental abilities and the ledger
// that decides when they may fire.
package ability

import (
	"math"
	"time"

	"github.com/milk9111/elemental/combat"
	"github.com/milk9111/elemental/geom"
)

type ID string

const (
	FlameCore   ID = "flame_core"
	ShadowOrb   ID = "shadow_orb"
	ThunderSeed ID = "thunder_seed"
)

// Ability is the static description of one ability.
type Ability struct {
	ID         ID
	Name       string
	Cooldown   time.Duration
	Damage     float64
	EnergyCost float64
	Color      string
}

const (
	AutoAimCone  = math.Pi / 12
	AutoAimRange = 15.0
	AimAssist    = 0.3

	FlameSpeed  = 20.0
	FlameRange  = 25.0
	FlameRadius = 0.8

	ShadowDash      = 5.0
	ShadowArc       = math.Pi / 2
	ShadowArcRange  = 3.0
	ShadowArcDelay  = 100 * time.Millisecond
	ThunderSpeed    = 12.0
	ThunderRange    = 30.0
	ThunderRadius   = 0.6
	ExecuteLock     = 200 * time.Millisecond
	castHeightBoost = 0.5
)

var (
	flame = Ability{
		ID:       FlameCore,
		Name:     "Flame Core",
		Cooldown: 3000 * time.Millisecond,
		Damage:   50,
		Color:    "#ff4400",
	}
	shadow = Ability{
		ID:       ShadowOrb,
		Name:     "Shadow Orb",
		Cooldown: 5000 * time.Millisecond,
		Damage:   75,
		Color:    "#4a0080",
	}
	thunder = Ability{
		ID:       ThunderSeed,
		Name:     "Thunder Seed",
		Cooldown: 8000 * time.Millisecond,
		Damage:   100,
		Color:    "#ffdd00",
	}
)

// Lookup returns the ability registered under id.
func Lookup(id ID) (Ability, bool) {
	switch id {
	case FlameCore:
		return flame, true
	case ShadowOrb:
		return shadow, true
	case ThunderSeed:
		return thunder, true
	default:
		return Ability{}, false
	}
}

// All lists every ability in slot order.
func All() []Ability {
	return []Ability{flame, shadow, thunder}
}

// Context is what an ability sees while executing. Spawn is required; the
// remaining capabilities are optional and their effect is skipped when nil.
type Context struct {
	Caster    geom.Vec3
	Direction geom.Vec3
	Enemies   []combat.Target

	Spawn      func(combat.SpawnRequest)
	Reposition func(distance float64, dir geom.Vec3)
	DamageArc  func(origin, dir geom.Vec3, arc, rng, damage float64)
	// Schedule runs fn after delay on the simulation clock. Without it,
	// delayed effects run immediately.
	Schedule func(delay time.Duration, fn func())
}

func (a Ability) execute(ctx Context, dir geom.Vec3) {
	switch a.ID {
	case FlameCore:
		castFlame(a, ctx, dir)
	case ShadowOrb:
		castShadow(a, ctx, dir)
	case ThunderSeed:
		castThunder(a, ctx, dir)
	}
}

func castPoint(ctx Context) geom.Vec3 {
	return ctx.Caster.Add(geom.V(0, castHeightBoost, 0))
}

// AimFlame bends dir 30% toward the nearest enemy inside the auto-aim cone.
func AimFlame(caster, dir geom.Vec3, enemies []combat.Target) geom.Vec3 {
	target, ok := geom.NearestInCone(caster, dir, enemies, combat.TargetPosition, AutoAimCone, AutoAimRange)
	if !ok {
		return dir
	}
	toTarget, ok := target.Position.Sub(caster).Normalize()
	if !ok {
		return dir
	}
	if bent, ok := dir.Lerp(toTarget, AimAssist).Normalize(); ok {
		return bent
	}
	return dir
}

func castFlame(a Ability, ctx Context, dir geom.Vec3) {
	if ctx.Spawn == nil {
		return
	}
	aim := AimFlame(ctx.Caster, dir, ctx.Enemies)
	ctx.Spawn(combat.SpawnRequest{
		Owner:       combat.PlayerOwner,
		Position:    castPoint(ctx),
		Velocity:    aim.Scale(FlameSpeed),
		Damage:      a.Damage,
		Type:        combat.ProjectileFlame,
		MaxDistance: FlameRange,
		Radius:      FlameRadius,
		Color:       "#ff5500",
	})
}

func castShadow(a Ability, ctx Context, dir geom.Vec3) {
	origin := ctx.Caster
	if ctx.Reposition != nil {
		if planar, ok := dir.Planar().Normalize(); ok {
			ctx.Reposition(ShadowDash, planar)
		}
	}
	if ctx.DamageArc == nil {
		return
	}
	strike := func() {
		ctx.DamageArc(origin, dir, ShadowArc, ShadowArcRange, a.Damage)
	}
	if ctx.Schedule == nil {
		strike()
		return
	}
	ctx.Schedule(ShadowArcDelay, strike)
}

func castThunder(a Ability, ctx Context, dir geom.Vec3) {
	if ctx.Spawn == nil {
		return
	}
	ctx.Spawn(combat.SpawnRequest{
		Owner:       combat.PlayerOwner,
		Position:    castPoint(ctx),
		Velocity:    dir.Scale(ThunderSpeed),
		Damage:      a.Damage,
		Type:        combat.ProjectileThunder,
		MaxDistance: ThunderRange,
		Radius:      ThunderRadius,
		Color:       "#ffdd00",
	})
}
