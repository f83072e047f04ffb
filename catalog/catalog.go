// Package catalog holds the static frame data a character is spawned from.
// Values are produced by a loader and never mutated at runtime; clips are
// shared by pointer between every combatant using the same character.
package catalog

import (
	"errors"
	"fmt"

	"github.com/automoto/fightcore/config"
)

var (
	ErrCatalogIncomplete = errors.New("catalog incomplete")
	ErrEmptyClip         = errors.New("clip has no frames")
	ErrInvalidRate       = errors.New("clip rate must be positive")
	ErrWindowOverflow    = errors.New("frame window exceeds clip length")
	ErrInvalidWindow     = errors.New("frame window counts must not be negative")
	ErrMissingAttack     = errors.New("attack state has no attack data")
)

// FrameWindow splits an attack clip into startup, active and recovery phases,
// counted in animation frames.
type FrameWindow struct {
	Startup  int `yaml:"startup"`
	Active   int `yaml:"active"`
	Recovery int `yaml:"recovery"`
}

// Total is the last frame index covered by the window.
func (w FrameWindow) Total() int {
	return w.Startup + w.Active + w.Recovery
}

// Box is an axis-aligned rectangle relative to a combatant's origin.
type Box struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AnimationClip is an ordered list of sprite indexes played at Rate.
// Rate is the number of simulation steps each sprite is held for at the
// configured tick rate (a rate of 6 at 60 Hz shows each sprite for 0.1s).
type AnimationClip struct {
	Frames []int        `yaml:"frames"`
	Rate   int          `yaml:"rate"`
	Window *FrameWindow `yaml:"window,omitempty"`
}

// LastIndex is the cursor position of the final frame.
func (c *AnimationClip) LastIndex() int {
	return len(c.Frames) - 1
}

// Validate reports catalog errors for a single clip.
func (c *AnimationClip) Validate() error {
	if c == nil || len(c.Frames) == 0 {
		return ErrEmptyClip
	}
	if c.Rate <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRate, c.Rate)
	}
	if w := c.Window; w != nil {
		if w.Startup < 0 || w.Active < 0 || w.Recovery < 0 {
			return fmt.Errorf("%w: %+v", ErrInvalidWindow, *w)
		}
		// The window's last frame index must exist in the clip.
		if w.Total() > c.LastIndex() {
			return fmt.Errorf("%w: window ends at frame %d, clip ends at %d", ErrWindowOverflow, w.Total(), c.LastIndex())
		}
	}
	return nil
}

// Attack is the offensive data bound to an attack state.
type Attack struct {
	Damage  uint32         `yaml:"damage"`
	HitStun int            `yaml:"hit_stun"` // frames at the simulation tick rate
	Clip    *AnimationClip `yaml:"animation"`
	Hitbox  Box            `yaml:"hitbox"`
}

// Move pairs the clip played in a state with its attack, if any.
type Move struct {
	Clip   *AnimationClip
	Attack *Attack
}

// Character is the full definition a combatant is spawned from.
type Character struct {
	Name        string
	SpriteSheet string
	Speed       float64
	Health      int
	Hurtbox     Box
	Moves       map[config.StateID]Move
}

// Move returns the catalog entry for state.
func (c *Character) Move(state config.StateID) (Move, bool) {
	m, ok := c.Moves[state]
	return m, ok
}

// Validate checks that the character covers every required state and that
// each clip is playable.
func (c *Character) Validate() error {
	for _, state := range config.RequiredStates {
		if _, ok := c.Moves[state]; !ok {
			return fmt.Errorf("%w: %s has no %s move", ErrCatalogIncomplete, c.Name, state)
		}
	}
	for state, move := range c.Moves {
		if err := move.Clip.Validate(); err != nil {
			return fmt.Errorf("%s %s: %w", c.Name, state, err)
		}
		if state.IsAttack() && move.Attack == nil {
			return fmt.Errorf("%w: %s %s", ErrMissingAttack, c.Name, state)
		}
		if move.Attack != nil && move.Attack.HitStun < 0 {
			return fmt.Errorf("%s %s: hit_stun must not be negative", c.Name, state)
		}
	}
	return nil
}
