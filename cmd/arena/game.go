package main

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/elemental/ability"
	"github.com/milk9111/elemental/combat"
	"github.com/milk9111/elemental/geom"
	"github.com/milk9111/elemental/prefabs"
	"github.com/milk9111/elemental/save"
	"github.com/milk9111/elemental/sim"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	pixelsPerUnit = 20.0
	walkSpeed     = 6.0
	jumpDuration  = 600 * time.Millisecond
	bannerTime    = 3 * time.Second
)

var abilitySlots = []struct {
	key sim.Key
	id  ability.ID
	btn ebiten.Key
}{
	{sim.KeyAbility1, ability.FlameCore, ebiten.Key1},
	{sim.KeyAbility2, ability.ShadowOrb, ebiten.Key2},
	{sim.KeyAbility3, ability.ThunderSeed, ebiten.Key3},
}

type Game struct {
	sim     *sim.Simulation
	arena   *prefabs.ArenaSpec
	store   *save.Store
	reloads <-chan reload
	logger  *slog.Logger

	pos       geom.Vec3
	aim       geom.Vec3
	jumpUntil time.Duration

	numbers *damageNumbers
	banner  string
	bannerT time.Duration
	snap    sim.Snapshot
}

func NewGame(s *sim.Simulation, arena *prefabs.ArenaSpec, store *save.Store, reloads <-chan reload, logger *slog.Logger) *Game {
	snap := s.Snapshot()
	return &Game{
		sim:     s,
		arena:   arena,
		store:   store,
		reloads: reloads,
		logger:  logger,
		pos:     snap.Player.Position,
		aim:     snap.Player.Facing,
		numbers: newDamageNumbers(),
		snap:    snap,
	}
}

func (g *Game) Update() error {
	dt := time.Second / time.Duration(ebiten.TPS())
	g.drainReloads()
	g.handleCommands()

	if g.sim.Paused() {
		g.snap = g.sim.Snapshot()
		return nil
	}

	in := g.readInput(dt)
	for _, e := range g.sim.Tick(dt, in) {
		g.handleEvent(e.Data)
	}
	g.numbers.Update(dt)
	if g.bannerT > 0 {
		g.bannerT -= dt
	}
	g.snap = g.sim.Snapshot()
	return nil
}

func (g *Game) drainReloads() {
	for {
		select {
		case r := <-g.reloads:
			if r.arena != nil {
				if err := g.sim.SetArena(r.arena); err != nil {
					g.logger.Warn("reload arena", "err", err)
				} else {
					g.arena = r.arena
				}
			}
			if r.curve != nil {
				g.sim.Player().SetCurve(r.curve)
			}
		default:
			return
		}
	}
}

func (g *Game) handleCommands() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sim.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if _, err := g.store.Save(g.sim.Player()); err != nil {
			g.logger.Warn("save", "err", err)
		} else {
			g.show("Game saved")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		switch _, err := g.store.Load(g.sim.Player()); {
		case errors.Is(err, save.ErrNoSave):
			g.show("No save found")
		case err != nil:
			g.logger.Warn("load", "err", err)
		default:
			g.show("Game loaded")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if _, err := g.sim.SpawnRandomActor(); err != nil {
			g.logger.Warn("spawn actor", "err", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.sim.Player().Dead() {
		g.sim.Player().Reset()
		g.show("Respawned")
	}
}

func (g *Game) readInput(dt time.Duration) sim.Input {
	var move geom.Vec3
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		move.Z++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		move.Z--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		move.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		move.X--
	}
	dir, moving := move.Normalize()
	if moving && !g.sim.Player().Dead() {
		g.pos = g.pos.Add(dir.Scale(walkSpeed * dt.Seconds()))
	}

	now := g.sim.Now()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && now >= g.jumpUntil {
		g.jumpUntil = now + jumpDuration
	}

	mx, my := ebiten.CursorPosition()
	cursor := g.toWorld(float64(mx), float64(my))
	if aim, ok := geom.PlanarDirection(g.pos, cursor); ok {
		g.aim = aim
	}

	keys := map[sim.Key]bool{
		sim.KeyAttack:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		sim.KeyDash:    ebiten.IsKeyPressed(ebiten.KeyQ),
		sim.KeyAirDash: ebiten.IsKeyPressed(ebiten.KeyE),
		sim.KeySlide:   ebiten.IsKeyPressed(ebiten.KeyControlLeft),
	}
	for _, slot := range abilitySlots {
		keys[slot.key] = ebiten.IsKeyPressed(slot.btn)
	}

	return sim.Input{
		Position: g.pos,
		Aim:      g.aim,
		Keys:     keys,
		Airborne: now < g.jumpUntil,
		Moving:   moving,
	}
}

func (g *Game) handleEvent(data any) {
	switch d := data.(type) {
	case combat.PlayerRepositioned:
		g.pos = d.To
	case combat.MovementRequested:
		g.pos = g.pos.Add(d.Direction.Scale(d.Distance))
	case combat.DamageNumber:
		g.numbers.Add(d)
	case combat.LevelUp:
		g.show(d.Message)
	case combat.PlayerDamaged:
		if d.Health <= 0 {
			g.show("Defeated! Press R to respawn")
		}
	}
}

func (g *Game) show(msg string) {
	g.banner, g.bannerT = msg, bannerTime
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x18, G: 0x1c, B: 0x24, A: 0xff})
	g.drawGrid(screen)

	for _, a := range g.snap.Actors {
		clr := g.arena.Color(a.Kind, color.RGBA{R: 0xd0, G: 0x40, B: 0x40, A: 0xff})
		if a.Dead {
			clr = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
		}
		g.drawBody(screen, a.Position, a.Facing, combat.EnemyHitRadius*a.Scale, clr)
		g.drawBar(screen, a.Position, a.Health/a.MaxHealth)
	}
	for _, p := range g.snap.Projectiles {
		clr, err := prefabs.ParseHexColor(p.Color)
		if err != nil {
			clr = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		}
		g.drawBody(screen, p.Position, geom.Vec3{}, p.Radius, clr)
	}
	player := g.snap.Player
	g.drawBody(screen, player.Position, player.Facing, combat.PlayerHitRadius, g.arena.Color("player", color.RGBA{R: 0x40, G: 0xa0, B: 0xff, A: 0xff}))

	g.numbers.Draw(screen, g.toScreen)
	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	p := g.snap.Player
	hud := fmt.Sprintf("HP %.0f/%.0f  EN %.0f/%.0f  LV %d  XP %d/%d  FPS %.0f",
		p.Health, p.MaxHealth, p.Energy, p.MaxEnergy, p.Level, p.XP, p.XPToNext, ebiten.ActualFPS())
	for i, slot := range abilitySlots {
		a, _ := ability.Lookup(slot.id)
		state := "locked"
		if g.sim.Player().HasUnlocked(slot.id) {
			state = "ready"
			if cd := p.AbilityCooldowns[string(slot.id)]; cd > 0 {
				state = fmt.Sprintf("%.1fs", cd.Seconds())
			}
		}
		hud += fmt.Sprintf("\n[%d] %s: %s", i+1, a.Name, state)
	}
	if g.snap.Paused {
		hud += "\nPAUSED"
	}
	ebitenutil.DebugPrint(screen, hud)

	if g.bannerT > 0 {
		ebitenutil.DebugPrintAt(screen, g.banner, baseWidth/2-len(g.banner)*3, 40)
	}
}

func (g *Game) toScreen(v geom.Vec3) (float64, float64) {
	cam := g.snap.Player.Position
	return baseWidth/2 + (v.X-cam.X)*pixelsPerUnit, baseHeight/2 - (v.Z-cam.Z)*pixelsPerUnit
}

func (g *Game) toWorld(x, y float64) geom.Vec3 {
	cam := g.snap.Player.Position
	return geom.V(cam.X+(x-baseWidth/2)/pixelsPerUnit, cam.Y, cam.Z-(y-baseHeight/2)/pixelsPerUnit)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return geom.Clamp(v, 0, 1)
}
