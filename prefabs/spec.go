package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidRoster = errors.New("prefabs: invalid roster")

const ArenaFile = "arena.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ArenaSpec is the starting layout of a combat arena.
type ArenaSpec struct {
	Name   string               `yaml:"name"`
	Player PlayerSpec           `yaml:"player"`
	Spawn  SpawnSpec            `yaml:"spawn"`
	Colors map[string]YAMLColor `yaml:"colors"`
	Actors []ActorSpec          `yaml:"actors"`
}

type PlayerSpec struct {
	Position Vec3Spec `yaml:"position"`
	Facing   Vec3Spec `yaml:"facing"`
}

// SpawnSpec holds the stats given to actors spawned one at a time.
type SpawnSpec struct {
	Health      float64  `yaml:"health"`
	AggroRange  float64  `yaml:"aggro_range"`
	AttackRange float64  `yaml:"attack_range"`
	Position    Vec3Spec `yaml:"position"`
}

type ActorSpec struct {
	Kind        string   `yaml:"kind"`
	Position    Vec3Spec `yaml:"position"`
	Health      float64  `yaml:"health"`
	AggroRange  float64  `yaml:"aggro_range"`
	AttackRange float64  `yaml:"attack_range"`
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func LoadArenaSpec() (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec](ArenaFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate rejects rosters the simulation cannot run.
func (a *ArenaSpec) Validate() error {
	if a.Spawn.Health <= 0 || a.Spawn.AggroRange <= 0 || a.Spawn.AttackRange <= 0 {
		return fmt.Errorf("%w: spawn stats must be positive", ErrInvalidRoster)
	}
	for i, actor := range a.Actors {
		switch actor.Kind {
		case "melee", "ranged":
		default:
			return fmt.Errorf("%w: actor %d has kind %q", ErrInvalidRoster, i, actor.Kind)
		}
		if actor.Health <= 0 {
			return fmt.Errorf("%w: actor %d has health %v", ErrInvalidRoster, i, actor.Health)
		}
		if actor.AttackRange <= 0 || actor.AggroRange < actor.AttackRange {
			return fmt.Errorf("%w: actor %d ranges aggro=%v attack=%v", ErrInvalidRoster, i, actor.AggroRange, actor.AttackRange)
		}
	}
	return nil
}

// Color returns the configured color for key, or fallback.
func (a *ArenaSpec) Color(key string, fallback color.Color) color.Color {
	if c, ok := a.Colors[key]; ok && c.Color != nil {
		return c.Color
	}
	return fallback
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

// ParseHexColor parses #rrggbb or #rrggbbaa.
func ParseHexColor(v string) (color.NRGBA, error) {
	s := strings.TrimPrefix(v, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, err
		}
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
