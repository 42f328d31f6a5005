package progression

import (
	"math"
	"testing"
	"time"

	"github.com/milk9111/elemental/ability"
	"github.com/milk9111/elemental/prefabs"
	"pgregory.net/rapid"
)

func TestNewDefaults(t *testing.T) {
	p := New(nil)
	if p.Health != 100 || p.MaxHealth != 100 || p.Energy != 100 || p.MaxEnergy != 100 {
		t.Fatalf("unexpected resources %+v", p)
	}
	if p.Level != 1 || p.XP != 0 || p.XPToNext != 100 || len(p.Unlocked) != 0 {
		t.Fatalf("unexpected progression %+v", p)
	}
}

func TestGainXP(t *testing.T) {
	cases := []struct {
		name      string
		gain      []int
		level     int
		xp        int
		toNext    int
		maxHealth float64
		unlocked  []ability.ID
	}{
		{"below_threshold", []int{50}, 1, 50, 100, 100, nil},
		{"exact_threshold", []int{50, 50}, 2, 0, 150, 120, []ability.ID{ability.FlameCore}},
		{"carry_over", []int{130}, 2, 30, 150, 120, []ability.ID{ability.FlameCore}},
		{"multiple_levels", []int{250}, 3, 0, 225, 140, []ability.ID{ability.FlameCore}},
		{"reach_four", []int{100, 150, 225}, 4, 0, 337, 160, []ability.ID{ability.FlameCore, ability.ShadowOrb}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := New(nil)
			p.TakeDamage(40)
			for _, g := range c.gain {
				p.GainXP(g)
			}
			if p.Level != c.level || p.XP != c.xp || p.XPToNext != c.toNext || p.MaxHealth != c.maxHealth {
				t.Fatalf("got level=%d xp=%d next=%d max=%v", p.Level, p.XP, p.XPToNext, p.MaxHealth)
			}
			if len(p.Unlocked) != len(c.unlocked) {
				t.Fatalf("unlocked = %v, want %v", p.Unlocked, c.unlocked)
			}
			for i, id := range c.unlocked {
				if p.Unlocked[i] != id {
					t.Fatalf("unlocked = %v, want %v", p.Unlocked, c.unlocked)
				}
			}
			if c.level > 1 && p.Health != p.MaxHealth {
				t.Fatalf("level up should refill health, got %v/%v", p.Health, p.MaxHealth)
			}
		})
	}
}

func TestLevelUpMessage(t *testing.T) {
	p := New(nil)
	ups := p.GainXP(100)
	if len(ups) != 1 {
		t.Fatalf("expected one level up, got %d", len(ups))
	}
	if want := "Level Up! You are now level 2! Unlocked: Flame Core!"; ups[0].Message != want {
		t.Fatalf("message = %q, want %q", ups[0].Message, want)
	}
	ups = p.GainXP(150)
	if want := "Level Up! You are now level 3!"; ups[0].Message != want || len(ups[0].Unlocked) != 0 {
		t.Fatalf("unexpected level up %+v", ups[0])
	}
}

func TestMovement(t *testing.T) {
	p := New(nil)
	if !p.TryMovement(Dash) {
		t.Fatalf("dash should be available")
	}
	if p.Energy != 80 {
		t.Fatalf("energy = %v, want 80", p.Energy)
	}
	if p.TryMovement(Dash) {
		t.Fatalf("dash should be cooling down")
	}
	if p.Energy != 80 {
		t.Fatalf("refused dash must not spend energy")
	}

	p.Regenerate(1500 * time.Millisecond)
	if p.MovementCooldown(Dash) != 0 {
		t.Fatalf("cooldown should have elapsed, got %v", p.MovementCooldown(Dash))
	}
	if p.Energy != 95 {
		t.Fatalf("energy = %v, want 95", p.Energy)
	}

	p.Energy = 10
	if p.TryMovement(Slide) {
		t.Fatalf("slide needs 15 energy")
	}
	if p.MovementCooldown(Slide) != 0 {
		t.Fatalf("refused slide must not start cooldown")
	}
}

func TestRegenerateCapsAtMax(t *testing.T) {
	p := New(nil)
	p.Energy = 95
	p.Regenerate(time.Second)
	if p.Energy != p.MaxEnergy {
		t.Fatalf("energy = %v, want cap %v", p.Energy, p.MaxEnergy)
	}
}

func TestRecordRestore(t *testing.T) {
	p := New(nil)
	p.GainXP(350)
	p.TakeDamage(12.5)
	p.Energy = 40

	r := p.Record()
	q := New(nil)
	q.Restore(r)

	if q.Level != p.Level || q.XP != p.XP || q.XPToNext != p.XPToNext {
		t.Fatalf("progression mismatch %+v vs %+v", q, p)
	}
	if q.Health != p.Health || q.MaxHealth != p.MaxHealth || q.Energy != 40 {
		t.Fatalf("resources mismatch %+v vs %+v", q, p)
	}
	if !q.HasUnlocked(ability.FlameCore) {
		t.Fatalf("unlocks should survive restore")
	}
}

func TestRestoreSanitizes(t *testing.T) {
	p := New(nil)
	p.Restore(Record{
		Health:            500,
		MaxHealth:         -1,
		Energy:            math.NaN(),
		Level:             0,
		XP:                900,
		XPToNextLevel:     0,
		UnlockedAbilities: []string{"thunder_seed", "bogus", "thunder_seed"},
	})
	if p.MaxHealth != DefaultHealth || p.Health != DefaultHealth {
		t.Fatalf("health = %v/%v", p.Health, p.MaxHealth)
	}
	if p.Energy != p.MaxEnergy {
		t.Fatalf("energy = %v", p.Energy)
	}
	if p.Level != 1 || p.XPToNext != DefaultXPToNext || p.XP != 900 {
		t.Fatalf("progression = %d/%d/%d", p.Level, p.XP, p.XPToNext)
	}
	if len(p.Unlocked) != 1 || p.Unlocked[0] != ability.ThunderSeed {
		t.Fatalf("unlocked = %v", p.Unlocked)
	}
}

func TestScriptCurveMatchesDefault(t *testing.T) {
	src, err := prefabs.LoadScript("progression.tengo")
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	curve, err := NewScriptCurve(src, nil)
	if err != nil {
		t.Fatalf("NewScriptCurve: %v", err)
	}

	xp, health := DefaultXPToNext, DefaultHealth
	for level := 2; level <= 8; level++ {
		got := curve.Step(level, xp, health)
		want := DefaultCurve{}.Step(level, xp, health)
		if got != want {
			t.Fatalf("level %d: script %+v, default %+v", level, got, want)
		}
		xp, health = want.XPToNext, want.MaxHealth
	}
}

func TestScriptCurveErrors(t *testing.T) {
	if _, err := NewScriptCurve([]byte("next_xp := ("), nil); err == nil {
		t.Fatalf("expected compile error")
	}
	if _, err := NewScriptCurve([]byte("next_xp := 1"), nil); err == nil {
		t.Fatalf("expected missing output error")
	}

	if _, err := NewScriptCurve([]byte("next_health := 1.0\nnext_xp := undefined"), nil); err == nil {
		t.Fatalf("expected undefined output error")
	}

	curve, err := NewScriptCurve([]byte("next_xp := 0\nnext_health := 0.0\nunlock := \"\""), nil)
	if err != nil {
		t.Fatalf("NewScriptCurve: %v", err)
	}
	if got, want := curve.Step(2, 100, 100), (DefaultCurve{}).Step(2, 100, 100); got != want {
		t.Fatalf("invalid output should fall back, got %+v", got)
	}
}

func TestScriptCurveDeclaredOutputs(t *testing.T) {
	curve, err := NewScriptCurve([]byte("next_xp := xp_to_next * 2\nnext_health := max_health + 20.0\nunlock := \"\""), nil)
	if err != nil {
		t.Fatalf("NewScriptCurve: %v", err)
	}
	want := Step{XPToNext: 300, MaxHealth: 140}
	if got := curve.Step(3, 150, 120); got != want {
		t.Fatalf("step = %+v, want %+v", got, want)
	}

	// unlock is optional.
	curve, err = NewScriptCurve([]byte("next_xp := xp_to_next + level\nnext_health := max_health"), nil)
	if err != nil {
		t.Fatalf("NewScriptCurve without unlock: %v", err)
	}
	want = Step{XPToNext: 104, MaxHealth: 100}
	if got := curve.Step(4, 100, 100); got != want {
		t.Fatalf("step = %+v, want %+v", got, want)
	}
}

func TestScriptCurveDrivesPlayer(t *testing.T) {
	src, err := prefabs.LoadScript("progression.tengo")
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	curve, err := NewScriptCurve(src, nil)
	if err != nil {
		t.Fatalf("NewScriptCurve: %v", err)
	}
	p := New(curve)
	p.GainXP(100)
	if p.Level != 2 || p.XPToNext != 150 || p.MaxHealth != 120 {
		t.Fatalf("after level up: %+v", p)
	}
	if len(p.Unlocked) != 1 || p.Unlocked[0] != ability.FlameCore {
		t.Fatalf("unlocked = %v", p.Unlocked)
	}
}

type flatCurve struct{}

func (flatCurve) Step(level, xpToNext int, maxHealth float64) Step {
	return Step{XPToNext: xpToNext, MaxHealth: maxHealth + 1}
}

func TestSetCurve(t *testing.T) {
	p := New(nil)
	p.SetCurve(flatCurve{})
	p.GainXP(200)
	if p.Level != 3 || p.XPToNext != 100 || p.MaxHealth != 102 || len(p.Unlocked) != 0 {
		t.Fatalf("custom curve ignored: %+v", p)
	}

	p.SetCurve(nil)
	p.GainXP(100)
	if p.XPToNext != 150 {
		t.Fatalf("nil curve should restore the default, next=%d", p.XPToNext)
	}
}

func TestHealthStaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := New(nil)
		hits := rapid.SliceOf(rapid.Float64Range(-50, 200)).Draw(t, "hits")
		for _, h := range hits {
			p.TakeDamage(h)
			if p.Health < 0 || p.Health > p.MaxHealth {
				t.Fatalf("health %v outside [0, %v]", p.Health, p.MaxHealth)
			}
		}
	})
}
