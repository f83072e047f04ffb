package main

import (
	"github.com/automoto/fightcore/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ActionID represents a logical fighter action
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionJump
	ActionCrouch
	ActionBlock
	ActionLight
	ActionHeavy
	ActionCount
)

// ControlScheme binds actions to keys for one seat.
type ControlScheme map[ActionID][]ebiten.Key

var (
	SchemeWASD = ControlScheme{
		ActionMoveLeft:  {ebiten.KeyA},
		ActionMoveRight: {ebiten.KeyD},
		ActionJump:      {ebiten.KeyW},
		ActionCrouch:    {ebiten.KeyS},
		ActionBlock:     {ebiten.KeyE},
		ActionLight:     {ebiten.KeyF},
		ActionHeavy:     {ebiten.KeyG},
	}
	SchemeArrows = ControlScheme{
		ActionMoveLeft:  {ebiten.KeyLeft},
		ActionMoveRight: {ebiten.KeyRight},
		ActionJump:      {ebiten.KeyUp},
		ActionCrouch:    {ebiten.KeyDown},
		ActionBlock:     {ebiten.KeyNumpad0, ebiten.KeyM},
		ActionLight:     {ebiten.KeyNumpad1, ebiten.KeyK},
		ActionHeavy:     {ebiten.KeyNumpad2, ebiten.KeyL},
	}
)

func (s ControlScheme) pressed(a ActionID) bool {
	for _, k := range s[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (s ControlScheme) justPressed(a ActionID) bool {
	for _, k := range s[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// intent maps the held keys to one move request. Attacks win over movement;
// horizontal input is relative to facing. dir is the raw horizontal input.
func (s ControlScheme) intent(facing float64) (state config.StateID, dir float64) {
	if s.pressed(ActionMoveLeft) {
		dir--
	}
	if s.pressed(ActionMoveRight) {
		dir++
	}

	switch {
	case s.justPressed(ActionHeavy):
		return config.HeavyAttack, dir
	case s.justPressed(ActionLight):
		return config.LightAttack, dir
	case s.pressed(ActionBlock):
		return config.Block, dir
	case s.pressed(ActionJump):
		return config.Jump, dir
	case s.pressed(ActionCrouch):
		return config.Crouch, dir
	case dir*facing > 0:
		return config.Forward, dir
	case dir*facing < 0:
		return config.Backward, dir
	}
	return config.Idle, dir
}
