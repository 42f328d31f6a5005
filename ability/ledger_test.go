package ability

import (
	"math"
	"testing"
	"time"

	"github.com/milk9111/elemental/combat"
	"github.com/milk9111/elemental/geom"
	"pgregory.net/rapid"
)

const eps = 1e-9

func approxVec(a, b geom.Vec3) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

type recorder struct {
	spawns      []combat.SpawnRequest
	repositions []geom.Vec3
	arcs        []geom.Vec3
	scheduled   []time.Duration
	pending     []func()
}

func (r *recorder) context(caster, dir geom.Vec3, enemies ...combat.Target) Context {
	return Context{
		Caster:    caster,
		Direction: dir,
		Enemies:   enemies,
		Spawn:     func(req combat.SpawnRequest) { r.spawns = append(r.spawns, req) },
		Reposition: func(distance float64, d geom.Vec3) {
			r.repositions = append(r.repositions, d.Scale(distance))
		},
		DamageArc: func(origin, _ geom.Vec3, _, _, _ float64) {
			r.arcs = append(r.arcs, origin)
		},
		Schedule: func(delay time.Duration, fn func()) {
			r.scheduled = append(r.scheduled, delay)
			r.pending = append(r.pending, fn)
		},
	}
}

func TestLedgerCooldownBoundary(t *testing.T) {
	for _, a := range All() {
		t.Run(string(a.ID), func(t *testing.T) {
			l := NewLedger()
			r := &recorder{}
			start := 1 * time.Second
			if !l.Execute(a.ID, r.context(geom.Vec3{}, geom.V(0, 0, 1)), start) {
				t.Fatalf("execute should succeed on a fresh ledger")
			}
			if l.CanUse(a.ID, start) {
				t.Fatalf("ability should be unusable right after execute")
			}
			if l.CanUse(a.ID, start+a.Cooldown-time.Millisecond) {
				t.Fatalf("ability should still be cooling down")
			}
			if !l.CanUse(a.ID, start+a.Cooldown) {
				t.Fatalf("ability should be ready exactly at cooldown")
			}
		})
	}
}

func TestLedgerLock(t *testing.T) {
	l := NewLedger()
	r := &recorder{}
	ctx := r.context(geom.Vec3{}, geom.V(0, 0, 1))

	if !l.Execute(FlameCore, ctx, 0) {
		t.Fatalf("flame should fire")
	}
	if l.CanUse(ThunderSeed, 100*time.Millisecond) {
		t.Fatalf("lock should block other abilities")
	}
	if !l.CanUse(ThunderSeed, ExecuteLock) {
		t.Fatalf("lock should release after %v", ExecuteLock)
	}
}

func TestLedgerRejectsWithoutMutation(t *testing.T) {
	cases := []struct {
		name  string
		setup func(l *Ledger)
		id    ID
		dir   geom.Vec3
	}{
		{"unknown", func(*Ledger) {}, ID("ice_lance"), geom.V(0, 0, 1)},
		{"zero_direction", func(*Ledger) {}, FlameCore, geom.Vec3{}},
		{"nan_direction", func(*Ledger) {}, ThunderSeed, geom.V(math.NaN(), 0, 1)},
		{
			"cooling_down",
			func(l *Ledger) {
				l.Execute(FlameCore, (&recorder{}).context(geom.Vec3{}, geom.V(1, 0, 0)), 0)
			},
			FlameCore,
			geom.V(0, 0, 1),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := NewLedger()
			c.setup(l)
			before, hadBefore := l.ReadyAt(c.id)
			lockBefore := l.lockedUntil

			r := &recorder{}
			if l.Execute(c.id, r.context(geom.Vec3{}, c.dir), time.Second) {
				t.Fatalf("execute should be rejected")
			}
			after, hadAfter := l.ReadyAt(c.id)
			if before != after || hadBefore != hadAfter || lockBefore != l.lockedUntil {
				t.Fatalf("ledger mutated: %v/%v -> %v/%v", before, hadBefore, after, hadAfter)
			}
			if len(r.spawns) != 0 {
				t.Fatalf("unexpected spawn %+v", r.spawns)
			}
		})
	}
}

func TestFlameAutoAim(t *testing.T) {
	forward := geom.V(0, 0, 1)
	at := func(deg float64) geom.Vec3 {
		rad := deg * math.Pi / 180
		return geom.V(10*math.Sin(rad), 0, 10*math.Cos(rad))
	}

	t.Run("bends_inside_cone", func(t *testing.T) {
		r := &recorder{}
		enemy := combat.Target{ID: "a", Position: at(5)}
		if !NewLedger().Execute(FlameCore, r.context(geom.Vec3{}, forward, enemy), 0) {
			t.Fatalf("flame should fire")
		}
		toTarget, _ := enemy.Position.Normalize()
		want, _ := forward.Lerp(toTarget, AimAssist).Normalize()
		got, _ := r.spawns[0].Velocity.Normalize()
		if !approxVec(got, want) {
			t.Fatalf("direction = %+v, want %+v", got, want)
		}
	})

	t.Run("straight_outside_cone", func(t *testing.T) {
		r := &recorder{}
		enemy := combat.Target{ID: "a", Position: at(10)}
		NewLedger().Execute(FlameCore, r.context(geom.Vec3{}, forward, enemy), 0)
		if !approxVec(r.spawns[0].Velocity, forward.Scale(FlameSpeed)) {
			t.Fatalf("velocity = %+v", r.spawns[0].Velocity)
		}
	})

	t.Run("spawn_shape", func(t *testing.T) {
		r := &recorder{}
		NewLedger().Execute(FlameCore, r.context(geom.V(1, 1, 1), forward), 0)
		req := r.spawns[0]
		if req.Owner != combat.PlayerOwner || req.Type != combat.ProjectileFlame {
			t.Fatalf("unexpected owner/type %q/%q", req.Owner, req.Type)
		}
		if req.Damage != 50 || req.MaxDistance != FlameRange || req.Radius != FlameRadius {
			t.Fatalf("unexpected stats %+v", req)
		}
		if !approxVec(req.Position, geom.V(1, 1.5, 1)) {
			t.Fatalf("spawn position = %+v", req.Position)
		}
	})
}

func TestShadowOrb(t *testing.T) {
	r := &recorder{}
	caster := geom.V(2, 1, 2)
	if !NewLedger().Execute(ShadowOrb, r.context(caster, geom.V(0, 3, 4)), 0) {
		t.Fatalf("shadow should fire")
	}
	if len(r.repositions) != 1 || !approxVec(r.repositions[0], geom.V(0, 0, ShadowDash)) {
		t.Fatalf("reposition = %+v", r.repositions)
	}
	if len(r.arcs) != 0 {
		t.Fatalf("arc damage should wait for the schedule")
	}
	if len(r.scheduled) != 1 || r.scheduled[0] != ShadowArcDelay {
		t.Fatalf("scheduled = %v", r.scheduled)
	}
	r.pending[0]()
	if len(r.arcs) != 1 || r.arcs[0] != caster {
		t.Fatalf("arc origin = %+v, want cast position %+v", r.arcs, caster)
	}
}

func TestShadowOrbOptionalCapabilities(t *testing.T) {
	ctx := Context{Caster: geom.Vec3{}, Direction: geom.V(1, 0, 0)}
	if !NewLedger().Execute(ShadowOrb, ctx, 0) {
		t.Fatalf("shadow should still consume its cooldown without capabilities")
	}
}

func TestThunderSeed(t *testing.T) {
	r := &recorder{}
	enemy := combat.Target{ID: "a", Position: geom.V(0.5, 0, 10)}
	NewLedger().Execute(ThunderSeed, r.context(geom.Vec3{}, geom.V(0, 0, 2), enemy), 0)
	req := r.spawns[0]
	if !approxVec(req.Velocity, geom.V(0, 0, ThunderSpeed)) {
		t.Fatalf("thunder should fly straight, got %+v", req.Velocity)
	}
	if req.Damage != 100 || req.Type != combat.ProjectileThunder || req.MaxDistance != ThunderRange {
		t.Fatalf("unexpected request %+v", req)
	}
}

func TestGate(t *testing.T) {
	var g Gate
	if !g.Ready("attack", BasicAttackCooldown, 0) {
		t.Fatalf("first trigger should pass")
	}
	if g.Ready("attack", BasicAttackCooldown, BasicAttackCooldown) {
		t.Fatalf("trigger exactly at cooldown should be refused")
	}
	if !g.Ready("attack", BasicAttackCooldown, BasicAttackCooldown+time.Millisecond) {
		t.Fatalf("trigger after cooldown should pass")
	}
}

func TestLedgerReadinessProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ids := []ID{FlameCore, ShadowOrb, ThunderSeed}
		id := ids[rapid.IntRange(0, len(ids)-1).Draw(t, "id")]
		start := time.Duration(rapid.Int64Range(0, int64(time.Hour)).Draw(t, "start"))
		later := time.Duration(rapid.Int64Range(0, int64(10*time.Second)).Draw(t, "later"))

		l := NewLedger()
		a, _ := Lookup(id)
		if !l.Execute(id, Context{Direction: geom.V(0, 0, 1), Spawn: func(combat.SpawnRequest) {}}, start) {
			t.Fatalf("fresh ledger refused %s", id)
		}
		if got, want := l.CanUse(id, start+later), later >= a.Cooldown; got != want {
			t.Fatalf("CanUse after %v = %v, want %v", later, got, want)
		}
	})
}
