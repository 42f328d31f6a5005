package save

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/elemental/ability"
	"github.com/milk9111/elemental/progression"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "slot", "save.yaml"))
	s.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestSaveLoad(t *testing.T) {
	s := newTestStore(t)

	p := progression.New(nil)
	p.GainXP(260)
	p.TakeDamage(30)

	rec, err := s.Save(p)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !rec.SavedAt.Equal(s.now()) {
		t.Fatalf("SavedAt = %v", rec.SavedAt)
	}

	q := progression.New(nil)
	loaded, err := s.Load(q)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.SavedAt.Equal(rec.SavedAt) {
		t.Fatalf("loaded SavedAt = %v, want %v", loaded.SavedAt, rec.SavedAt)
	}
	if q.Level != p.Level || q.XP != p.XP || q.XPToNext != p.XPToNext || q.Health != p.Health || q.MaxHealth != p.MaxHealth {
		t.Fatalf("restored %+v, want %+v", q, p)
	}
	if !q.HasUnlocked(ability.FlameCore) {
		t.Fatalf("unlocks lost: %v", q.Unlocked)
	}
}

func TestLoadMissing(t *testing.T) {
	s := newTestStore(t)
	p := progression.New(nil)
	p.GainXP(10)

	if _, err := s.Load(p); !errors.Is(err, ErrNoSave) {
		t.Fatalf("expected ErrNoSave, got %v", err)
	}
	if p.XP != 10 {
		t.Fatalf("player should be untouched, xp=%d", p.XP)
	}
}

func TestLoadCorrupt(t *testing.T) {
	s := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(s.Path()), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.Path(), []byte("player: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := s.Load(progression.New(nil))
	if err == nil || errors.Is(err, ErrNoSave) {
		t.Fatalf("expected unmarshal error, got %v", err)
	}
}

func TestReset(t *testing.T) {
	s := newTestStore(t)
	p := progression.New(nil)
	p.GainXP(120)
	if _, err := s.Save(p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := s.Reset(p); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if p.Level != 1 || p.XP != 0 || len(p.Unlocked) != 0 {
		t.Fatalf("player not reset: %+v", p)
	}
	if _, err := os.Stat(s.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("save file should be gone, stat err = %v", err)
	}
	if err := s.Reset(p); err != nil {
		t.Fatalf("second Reset: %v", err)
	}
}
