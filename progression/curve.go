package progression

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/elemental/ability"
)

// Step is what reaching a new level changes.
type Step struct {
	XPToNext  int
	MaxHealth float64
	Unlock    ability.ID
}

// Curve computes the step for reaching level, given the threshold and max
// health the player had before it.
type Curve interface {
	Step(level, xpToNext int, maxHealth float64) Step
}

const HealthPerLevel = 20

var unlockLevels = map[int]ability.ID{
	2: ability.FlameCore,
	4: ability.ShadowOrb,
	6: ability.ThunderSeed,
}

type DefaultCurve struct{}

func (DefaultCurve) Step(level, xpToNext int, maxHealth float64) Step {
	return Step{
		XPToNext:  int(math.Floor(float64(xpToNext) * 1.5)),
		MaxHealth: maxHealth + HealthPerLevel,
		Unlock:    unlockLevels[level],
	}
}

// ScriptCurve evaluates a tengo script that reads level, xp_to_next and
// max_health and assigns next_xp, next_health and unlock. Any script
// failure falls back to DefaultCurve.
type ScriptCurve struct {
	compiled *tengo.Compiled
	logger   *slog.Logger
}

func NewScriptCurve(src []byte, logger *slog.Logger) (*ScriptCurve, error) {
	if logger == nil {
		logger = slog.Default()
	}
	script := tengo.NewScript(src)
	_ = script.Add("level", 0)
	_ = script.Add("xp_to_next", 0)
	_ = script.Add("max_health", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("progression: compile curve: %w", err)
	}
	// Globals the script declares stay undefined until it has run once.
	c := &ScriptCurve{compiled: compiled, logger: logger}
	if err := c.run(2, DefaultXPToNext, DefaultHealth); err != nil {
		return nil, fmt.Errorf("progression: curve script: %w", err)
	}
	return c, nil
}

func (c *ScriptCurve) Step(level, xpToNext int, maxHealth float64) Step {
	step, err := c.eval(level, xpToNext, maxHealth)
	if err != nil {
		c.logger.Warn("progression: curve script failed, using default", "level", level, "err", err)
		return DefaultCurve{}.Step(level, xpToNext, maxHealth)
	}
	return step
}

// run sets the inputs and executes the script once. unlock may be left
// undefined for levels that unlock nothing.
func (c *ScriptCurve) run(level, xpToNext int, maxHealth float64) error {
	if c == nil || c.compiled == nil {
		return fmt.Errorf("nil curve script")
	}
	if err := c.compiled.Set("level", level); err != nil {
		return err
	}
	if err := c.compiled.Set("xp_to_next", xpToNext); err != nil {
		return err
	}
	if err := c.compiled.Set("max_health", maxHealth); err != nil {
		return err
	}
	if err := c.compiled.Run(); err != nil {
		return err
	}
	for _, name := range []string{"next_xp", "next_health"} {
		if !c.compiled.IsDefined(name) {
			return fmt.Errorf("does not define %q", name)
		}
	}
	return nil
}

func (c *ScriptCurve) eval(level, xpToNext int, maxHealth float64) (Step, error) {
	if err := c.run(level, xpToNext, maxHealth); err != nil {
		return Step{}, err
	}

	step := Step{
		XPToNext:  c.compiled.Get("next_xp").Int(),
		MaxHealth: c.compiled.Get("next_health").Float(),
	}
	if step.XPToNext <= 0 || step.MaxHealth <= 0 {
		return Step{}, fmt.Errorf("curve produced next_xp=%d next_health=%v", step.XPToNext, step.MaxHealth)
	}
	if v := c.compiled.Get("unlock"); !v.IsUndefined() {
		step.Unlock = ability.ID(strings.TrimSpace(v.String()))
	}
	return step, nil
}
