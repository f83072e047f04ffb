package main

import (
	"errors"
	"fmt"

	"github.com/automoto/fightcore/assets"
	"github.com/automoto/fightcore/components"
	"github.com/automoto/fightcore/config"
	"github.com/automoto/fightcore/match"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

type seat struct {
	id     donburi.Entity
	name   string
	speed  float64
	scheme ControlScheme
}

type Game struct {
	cfg      *config.Config
	log      *zap.Logger
	store    *settingsStore
	settings SavedSettings

	match  *match.Match
	seats  [2]seat
	floorY float64
	winner string
	flash  int // ticks left on the last hit flash
}

func NewGame(cfg *config.Config, log *zap.Logger, store *settingsStore, settings SavedSettings) (*Game, error) {
	g := &Game{
		cfg:      cfg,
		log:      log,
		store:    store,
		settings: settings,
		floorY:   float64(cfg.Arena.Height) * 0.8,
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) reset() error {
	m, err := match.New(g.cfg, g.log)
	if err != nil {
		return err
	}

	schemes := [2]ControlScheme{SchemeWASD, SchemeArrows}
	starts := [2]float64{float64(g.cfg.Arena.Width)/2 - 160, float64(g.cfg.Arena.Width)/2 + 128}
	facings := [2]float64{1, -1}

	for i, name := range g.settings.Fighters {
		ch, err := assets.Character(name)
		if err != nil {
			return err
		}
		id, err := m.Spawn(ch, starts[i], g.floorY-ch.Hurtbox.Height, facings[i])
		if err != nil {
			return err
		}
		g.seats[i] = seat{id: id, name: fmt.Sprintf("P%d %s", i+1, ch.Name), speed: ch.Speed, scheme: schemes[i]}
	}

	m.OnHit(func(components.HitEvent) { g.flash = 6 })
	m.OnKnockout(func(ev components.KnockoutEvent) {
		for _, s := range g.seats {
			if s.id == ev.Attacker {
				g.winner = s.name
			}
		}
		g.log.Info("knockout", zap.String("winner", g.winner))
	})

	g.match = m
	g.winner = ""
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.settings.ShowBoxes = !g.settings.ShowBoxes
		g.store.Save(g.settings)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		g.settings.Fullscreen = !g.settings.Fullscreen
		ebiten.SetFullscreen(g.settings.Fullscreen)
		g.store.Save(g.settings)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return g.reset()
	}

	if g.winner == "" {
		for i := range g.seats {
			g.drive(i)
		}
	}
	g.match.Tick()
	if g.flash > 0 {
		g.flash--
	}
	return nil
}

// drive turns one seat's keys into a request and applies movement only when
// the request was accepted.
func (g *Game) drive(i int) {
	s := g.seats[i]
	v, err := g.match.View(s.id)
	if err != nil {
		return
	}
	opponent, err := g.match.View(g.seats[1-i].id)
	if err == nil && !v.State.IsAttack() {
		v.Facing = 1
		if opponent.Position.X < v.Position.X {
			v.Facing = -1
		}
		if err := g.match.SetFacing(s.id, v.Facing); err != nil {
			g.log.Warn("set facing", zap.Error(err))
		}
	}

	state, dir := s.scheme.intent(v.Facing)
	if !g.match.Request(s.id, state) {
		return
	}
	if state != config.Forward && state != config.Backward {
		return
	}

	x := v.Position.X + dir*s.speed
	x = max(0, min(x, float64(g.cfg.Arena.Width)-v.Hurtbox.W))
	if err := g.match.SetPosition(s.id, x, v.Position.Y); err != nil && !errors.Is(err, match.ErrUnknownCombatant) {
		g.log.Warn("set position", zap.Error(err))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawArena(screen, g)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.cfg.Arena.Width, g.cfg.Arena.Height
}
