package main

import (
	"fmt"
	"image/color"

	"github.com/automoto/fightcore/assets/animations"
	"github.com/automoto/fightcore/components"
	"github.com/automoto/fightcore/match"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorBackground = color.RGBA{24, 24, 32, 255}
	colorFloor      = color.RGBA{90, 90, 100, 255}
	colorHurtbox    = color.RGBA{0, 160, 255, 255}
	colorStunned    = color.RGBA{255, 80, 80, 255}
	colorHealth     = color.RGBA{80, 220, 120, 255}
	colorHealthBack = color.RGBA{60, 20, 20, 255}
	colorFlash      = color.RGBA{255, 255, 255, 40}
)

var phaseColors = map[animations.Phase]color.RGBA{
	animations.PhaseStartup:  {255, 255, 0, 100},  // Yellow
	animations.PhaseActive:   {255, 0, 255, 140},  // Magenta
	animations.PhaseRecovery: {255, 128, 0, 100},  // Orange
}

func drawArena(screen *ebiten.Image, g *Game) {
	screen.Fill(colorBackground)
	width := float32(g.cfg.Arena.Width)
	vector.FillRect(screen, 0, float32(g.floorY), width, 4, colorFloor, false)

	views := g.match.Views()
	for i, v := range views {
		drawCombatant(screen, v, g.settings.ShowBoxes)
		drawHealthBar(screen, v, i, width)
	}

	if g.flash > 0 {
		vector.FillRect(screen, 0, 0, width, float32(g.cfg.Arena.Height), colorFlash, false)
	}
	if g.winner != "" {
		ebitenutil.DebugPrintAt(screen, g.winner+" wins - press R", int(width)/2-80, g.cfg.Arena.Height/3)
	}
	ebitenutil.DebugPrintAt(screen, "tab: boxes  r: reset  f11: fullscreen  esc: quit", 16, g.cfg.Arena.Height-24)
}

func drawCombatant(screen *ebiten.Image, v match.View, boxes bool) {
	body := colorHurtbox
	if v.Stunned {
		body = colorStunned
	}
	if c, ok := phaseColors[v.Phase]; ok && boxes {
		r := v.Hurtbox
		drawOutline(screen, components.Rect{X: r.X - 2, Y: r.Y - 2, W: r.W + 4, H: r.H + 4}, c)
	}
	drawOutline(screen, v.Hurtbox, body)

	if boxes && v.Hitbox != nil {
		h := v.Hitbox
		vector.FillRect(screen, float32(h.X), float32(h.Y), float32(h.W), float32(h.H), phaseColors[animations.PhaseActive], false)
	}

	label := fmt.Sprintf("%s\n%s f%d %s\nsprite %d", v.Character, v.State, v.Frame, v.Phase, v.Sprite)
	ebitenutil.DebugPrintAt(screen, label, int(v.Hurtbox.X), int(v.Hurtbox.Y)-48)
}

func drawOutline(screen *ebiten.Image, r components.Rect, c color.Color) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}

func drawHealthBar(screen *ebiten.Image, v match.View, slot int, width float32) {
	const barW, barH = 400, 16
	x := float32(32)
	if slot == 1 {
		x = width - 32 - barW
	}
	vector.FillRect(screen, x, 32, barW, barH, colorHealthBack, false)
	if v.MaxHealth > 0 {
		fill := barW * float32(v.Health) / float32(v.MaxHealth)
		vector.FillRect(screen, x, 32, fill, barH, colorHealth, false)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %d/%d", v.Character, v.Health, v.MaxHealth), int(x), 52)
}
