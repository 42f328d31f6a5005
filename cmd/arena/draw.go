package main

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/elemental/combat"
	"github.com/milk9111/elemental/geom"
)

const (
	gridExtent      = 40
	numberLifetime  = time.Second
	numberRiseSpeed = 1.5
)

func (g *Game) drawGrid(screen *ebiten.Image) {
	line := color.RGBA{R: 0x2a, G: 0x30, B: 0x3c, A: 0xff}
	for i := -gridExtent; i <= gridExtent; i += 5 {
		x0, y0 := g.toScreen(geom.V(float64(i), 0, -gridExtent))
		x1, y1 := g.toScreen(geom.V(float64(i), 0, gridExtent))
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, line, false)
		x0, y0 = g.toScreen(geom.V(-gridExtent, 0, float64(i)))
		x1, y1 = g.toScreen(geom.V(gridExtent, 0, float64(i)))
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, line, false)
	}
}

// drawBody draws a top-down disc with a facing tick.
func (g *Game) drawBody(screen *ebiten.Image, pos, facing geom.Vec3, radius float64, clr color.Color) {
	if radius <= 0 {
		return
	}
	x, y := g.toScreen(pos)
	r := radius * pixelsPerUnit
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), clr, true)

	if dir, ok := facing.Planar().Normalize(); ok {
		tx, ty := g.toScreen(pos.Add(dir.Scale(radius * 1.4)))
		vector.StrokeLine(screen, float32(x), float32(y), float32(tx), float32(ty), 2, color.White, true)
	}
}

func (g *Game) drawBar(screen *ebiten.Image, pos geom.Vec3, frac float64) {
	x, y := g.toScreen(pos)
	w := 2 * combat.EnemyHitRadius * pixelsPerUnit
	top := y - combat.EnemyHitRadius*pixelsPerUnit - 8
	vector.FillRect(screen, float32(x-w/2), float32(top), float32(w), 4, color.RGBA{R: 0x40, A: 0xff}, false)
	vector.FillRect(screen, float32(x-w/2), float32(top), float32(w*clampUnit(frac)), 4, color.RGBA{R: 0x40, G: 0xd0, B: 0x40, A: 0xff}, false)
}

type floatingNumber struct {
	pos    geom.Vec3
	label  string
	source string
	age    time.Duration
}

// damageNumbers rise and fade over their lifetime.
type damageNumbers struct {
	face  text.Face
	items []floatingNumber
}

func newDamageNumbers() *damageNumbers {
	return &damageNumbers{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (d *damageNumbers) Add(n combat.DamageNumber) {
	d.items = append(d.items, floatingNumber{
		pos:    n.Position,
		label:  fmt.Sprintf("%d", n.Amount),
		source: n.Source,
	})
}

func (d *damageNumbers) Update(dt time.Duration) {
	kept := d.items[:0]
	for _, n := range d.items {
		n.age += dt
		if n.age < numberLifetime {
			kept = append(kept, n)
		}
	}
	d.items = kept
}

func (d *damageNumbers) Draw(screen *ebiten.Image, project func(geom.Vec3) (float64, float64)) {
	for _, n := range d.items {
		t := n.age.Seconds() / numberLifetime.Seconds()
		x, y := project(n.pos)
		y -= t * numberRiseSpeed * pixelsPerUnit

		clr := color.RGBA{R: 0xff, G: 0xe0, B: 0x40, A: 0xff}
		if n.source != combat.PlayerOwner {
			clr = color.RGBA{R: 0xff, G: 0x50, B: 0x50, A: 0xff}
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(clr)
		op.ColorScale.ScaleAlpha(float32(math.Max(0, 1-t)))
		text.Draw(screen, n.label, d.face, op)
	}
}
