package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadArenaSpec(t *testing.T) {
	spec, err := LoadArenaSpec()
	if err != nil {
		t.Fatalf("LoadArenaSpec: %v", err)
	}
	if len(spec.Actors) != 5 {
		t.Fatalf("expected 5 actors, got %d", len(spec.Actors))
	}

	first := spec.Actors[0]
	if first.Kind != "ranged" || first.Position != (Vec3Spec{X: 10, Y: 1, Z: 10}) || first.AttackRange != 8 {
		t.Fatalf("unexpected first actor %+v", first)
	}
	for i, a := range spec.Actors {
		if a.Health != 100 || a.AggroRange != 15 {
			t.Fatalf("actor %d: unexpected stats %+v", i, a)
		}
		if a.Kind == "melee" && a.AttackRange != 3 {
			t.Fatalf("actor %d: melee attack range %v", i, a.AttackRange)
		}
	}
	if spec.Spawn.AttackRange != 5 {
		t.Fatalf("spawn attack range = %v", spec.Spawn.AttackRange)
	}

	want := color.NRGBA{R: 0xd0, G: 0x40, B: 0x40, A: 0xff}
	if got := spec.Color("melee", color.White); got != want {
		t.Fatalf("melee color = %v, want %v", got, want)
	}
	if got := spec.Color("missing", color.White); got != color.White {
		t.Fatalf("fallback color = %v", got)
	}
}

func TestArenaValidate(t *testing.T) {
	valid := func() ArenaSpec {
		return ArenaSpec{
			Spawn:  SpawnSpec{Health: 100, AggroRange: 15, AttackRange: 5},
			Actors: []ActorSpec{{Kind: "melee", Health: 100, AggroRange: 15, AttackRange: 3}},
		}
	}

	cases := []struct {
		name   string
		mutate func(a *ArenaSpec)
		ok     bool
	}{
		{"valid", func(*ArenaSpec) {}, true},
		{"bad_kind", func(a *ArenaSpec) { a.Actors[0].Kind = "flying" }, false},
		{"no_health", func(a *ArenaSpec) { a.Actors[0].Health = 0 }, false},
		{"aggro_below_attack", func(a *ArenaSpec) { a.Actors[0].AggroRange = 1 }, false},
		{"no_spawn_stats", func(a *ArenaSpec) { a.Spawn = SpawnSpec{} }, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := valid()
			c.mutate(&a)
			err := a.Validate()
			if c.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !c.ok && !errors.Is(err, ErrInvalidRoster) {
				t.Fatalf("expected ErrInvalidRoster, got %v", err)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"#ff4400", color.NRGBA{R: 0xff, G: 0x44, A: 0xff}, true},
		{"4a008080", color.NRGBA{R: 0x4a, B: 0x80, A: 0x80}, true},
		{"#fff", color.NRGBA{}, false},
		{"#gg0000", color.NRGBA{}, false},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseHexColor(c.in)
			if (err == nil) != c.ok {
				t.Fatalf("err = %v", err)
			}
			if c.ok && got != c.want {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"progression.tengo", "scripts/progression.tengo", "prefabs/scripts/progression.tengo"} {
		if _, err := LoadScript(name); err != nil {
			t.Fatalf("LoadScript(%q): %v", name, err)
		}
	}
}

func TestWatcherReportsPrefabWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "arena.yaml")
	if err := os.WriteFile(target, []byte("name: test\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got.Path != target || got.Kind != ChangeSpec {
			t.Fatalf("change %+v, want spec change for %q", got, target)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for %s", target)
	}
}
