// Package save persists the player's progression record as a YAML file.
package save

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/elemental/progression"
)

var ErrNoSave = errors.New("save: no save data")

const DefaultFile = "elemental_isles_save.yaml"

type file struct {
	Player progression.Record `yaml:"player"`
}

// Store reads and writes one save file.
type Store struct {
	path string
	now  func() time.Time
}

func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFile
	}
	return &Store{path: path, now: time.Now}
}

func (s *Store) Path() string {
	return s.path
}

// Save writes p's record, stamped with the current wall-clock time. The
// file is replaced atomically.
func (s *Store) Save(p *progression.Player) (progression.Record, error) {
	rec := p.Record()
	rec.SavedAt = s.now().UTC()

	data, err := yaml.Marshal(file{Player: rec})
	if err != nil {
		return rec, fmt.Errorf("save: marshal: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return rec, fmt.Errorf("save: create %s: %w", dir, err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return rec, fmt.Errorf("save: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return rec, fmt.Errorf("save: rename %s: %w", tmp, err)
	}
	return rec, nil
}

// Load restores p from the save file. It returns ErrNoSave when there is
// nothing to load, leaving p untouched.
func (s *Store) Load(p *progression.Player) (progression.Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return progression.Record{}, ErrNoSave
	}
	if err != nil {
		return progression.Record{}, fmt.Errorf("save: read %s: %w", s.path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return progression.Record{}, fmt.Errorf("save: unmarshal %s: %w", s.path, err)
	}
	p.Restore(f.Player)
	return f.Player, nil
}

// Reset deletes the save file and returns p to its starting state.
func (s *Store) Reset(p *progression.Player) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("save: remove %s: %w", s.path, err)
	}
	p.Reset()
	return nil
}
