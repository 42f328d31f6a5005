package geom

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func approxVec(a, b Vec3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func TestSphereIntersect(t *testing.T) {
	cases := []struct {
		name string
		a, b Vec3
		ra   float64
		rb   float64
		want bool
	}{
		{"overlap", V(0, 0, 0), V(1.4, 0, 0), 1, 0.5, true},
		{"touching", V(0, 0, 0), V(1.5, 0, 0), 1, 0.5, false},
		{"apart", V(0, 0, 0), V(0, 5, 0), 1, 1, false},
		{"same_point", V(3, 3, 3), V(3, 3, 3), 0.1, 0.1, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := SphereIntersect(c.a, c.ra, c.b, c.rb); got != c.want {
				t.Fatalf("SphereIntersect = %v, want %v", got, c.want)
			}
		})
	}
}

func TestInArc(t *testing.T) {
	forward := V(0, 0, 1)
	cases := []struct {
		name   string
		facing Vec3
		target Vec3
		want   bool
	}{
		{"ahead", forward, V(0, 0, 2), true},
		{"side", forward, V(2, 0, 0), false},
		{"behind", forward, V(0, 0, -2), false},
		{"out_of_range", forward, V(0, 0, 4), false},
		{"at_range", forward, V(0, 0, 3), true},
		{"point_blank_behind", forward, V(0, 0, -0.05), true},
		{"zero_facing", Vec3{}, V(0, 0, 2), false},
		{"zero_facing_point_blank", Vec3{}, V(0.01, 0, 0), true},
		{"inside_half_angle", forward, V(1, 0, 2), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := InArc(Vec3{}, c.facing, math.Pi/2, 3, c.target); got != c.want {
				t.Fatalf("InArc = %v, want %v", got, c.want)
			}
		})
	}
}

func TestNearestInCone(t *testing.T) {
	type enemy struct {
		name string
		pos  Vec3
	}
	pos := func(e enemy) Vec3 { return e.pos }

	t.Run("closest_wins", func(t *testing.T) {
		enemies := []enemy{
			{"far", V(0, 0, 10)},
			{"near", V(0, 0, 4)},
			{"outside", V(5, 0, 0)},
		}
		got, ok := NearestInCone(Vec3{}, V(0, 0, 1), enemies, pos, math.Pi/12, 15)
		if !ok || got.name != "near" {
			t.Fatalf("expected near, got %v ok=%v", got, ok)
		}
	})

	t.Run("first_wins_ties", func(t *testing.T) {
		enemies := []enemy{
			{"left", V(-1, 0, 2)},
			{"right", V(1, 0, 2)},
		}
		got, ok := NearestInCone(Vec3{}, V(0, 0, 1), enemies, pos, math.Pi/2, 15)
		if !ok || got.name != "left" {
			t.Fatalf("expected left, got %v ok=%v", got, ok)
		}
	})

	t.Run("none", func(t *testing.T) {
		got, ok := NearestInCone(Vec3{}, V(0, 0, 1), []enemy{{"back", V(0, 0, -3)}}, pos, math.Pi/12, 15)
		if ok {
			t.Fatalf("expected no target, got %v", got)
		}
	})
}

func TestStepPlanar(t *testing.T) {
	cases := []struct {
		name     string
		from, to Vec3
		step     float64
		want     Vec3
	}{
		{"partial", V(0, 1, 0), V(10, 5, 0), 3, V(3, 1, 0)},
		{"clamped", V(0, 1, 0), V(2, 0, 0), 3, V(2, 1, 0)},
		{"no_step", V(1, 1, 1), V(5, 1, 5), 0, V(1, 1, 1)},
		{"directly_above", V(1, 0, 1), V(1, 4, 1), 2, V(1, 0, 1)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := StepPlanar(c.from, c.to, c.step); !approxVec(got, c.want) {
				t.Fatalf("StepPlanar = %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestPredictPosition(t *testing.T) {
	got := PredictPosition(V(1, 0, 1), V(2, 0, -4), 0.5)
	if !approxVec(got, V(2, 0, -1)) {
		t.Fatalf("PredictPosition = %+v", got)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	for _, v := range []Vec3{{}, V(math.NaN(), 0, 1), V(math.Inf(1), 0, 0)} {
		if _, ok := v.Normalize(); ok {
			t.Fatalf("Normalize(%+v) should fail", v)
		}
	}
}

func coord(t *rapid.T, label string) float64 {
	return rapid.Float64Range(-100, 100).Draw(t, label)
}

func vec(t *rapid.T, label string) Vec3 {
	return V(coord(t, label+".x"), coord(t, label+".y"), coord(t, label+".z"))
}

func TestSphereIntersectSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a, b := vec(t, "a"), vec(t, "b")
		ra := rapid.Float64Range(0, 10).Draw(t, "ra")
		rb := rapid.Float64Range(0, 10).Draw(t, "rb")
		if SphereIntersect(a, ra, b, rb) != SphereIntersect(b, rb, a, ra) {
			t.Fatalf("asymmetric for %+v/%v %+v/%v", a, ra, b, rb)
		}
	})
}

func TestInArcPointBlank(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		origin, facing := vec(t, "origin"), vec(t, "facing")
		offset := V(
			rapid.Float64Range(-0.05, 0.05).Draw(t, "dx"),
			rapid.Float64Range(-0.05, 0.05).Draw(t, "dy"),
			rapid.Float64Range(-0.05, 0.05).Draw(t, "dz"),
		)
		arc := rapid.Float64Range(0, 2*math.Pi).Draw(t, "arc")
		if !InArc(origin, facing, arc, 1, origin.Add(offset)) {
			t.Fatalf("point blank target rejected")
		}
	})
}

func TestStepPlanarNeverOvershoots(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		from, to := vec(t, "from"), vec(t, "to")
		step := rapid.Float64Range(0, 50).Draw(t, "step")
		before := from.Planar().Dist(to.Planar())
		got := StepPlanar(from, to, step)
		after := got.Planar().Dist(to.Planar())
		if after > before+1e-9 {
			t.Fatalf("moved away: before=%v after=%v", before, after)
		}
		if got.Y != from.Y {
			t.Fatalf("height changed: %v -> %v", from.Y, got.Y)
		}
	})
}
