package components

import (
	"errors"
	"fmt"

	"github.com/automoto/fightcore/assets/animations"
	"github.com/automoto/fightcore/catalog"
	"github.com/automoto/fightcore/config"
	"github.com/yohamta/donburi"
)

var ErrAnimationMissing = errors.New("no animation for current state")

// Move is one state's running clip plus the attack it carries, if any.
type Move struct {
	Animation *animations.Animation
	Attack    *catalog.Attack
}

// CombatantData is the combat state machine of a single fighter. Every
// runtime in Moves is owned by this combatant alone.
type CombatantData struct {
	Character    *catalog.Character
	State        config.StateID
	Buffered     config.StateID // StateNone when empty
	Moves        map[config.StateID]*Move
	Hurtbox      catalog.Box
	CancelWindow int
	Sprite       int

	// Run counts state starts. Hitboxes remember the run they were opened
	// for so a restarted attack never reuses an old activation.
	Run int

	Hitbox  *HitboxData
	HitStun *HitStunData
}

// NewCombatant builds a combatant at rest with one runtime per catalog move.
func NewCombatant(ch *catalog.Character, tickRate, cancelWindow int) (CombatantData, error) {
	if err := ch.Validate(); err != nil {
		return CombatantData{}, err
	}

	c := CombatantData{
		Character:    ch,
		State:        config.DefaultState,
		Buffered:     config.StateNone,
		Moves:        make(map[config.StateID]*Move, len(ch.Moves)),
		Hurtbox:      ch.Hurtbox,
		CancelWindow: cancelWindow,
	}
	for state, m := range ch.Moves {
		c.Moves[state] = &Move{
			Animation: animations.NewAnimation(m.Clip, tickRate),
			Attack:    m.Attack,
		}
	}
	c.start(config.DefaultState)
	return c, nil
}

// Request asks for a transition to state and reports whether it was taken
// or buffered. A rejected request changes nothing.
func (c *CombatantData) Request(state config.StateID) bool {
	if c.Stunned() {
		return false
	}
	if _, ok := c.Moves[state]; !ok {
		return false
	}

	if c.State.IsAttack() {
		if c.HasBuffered() || !state.IsAttack() {
			return false
		}
		if !c.Current().Animation.InRecovery(c.CancelWindow) {
			return false
		}
		c.Buffered = state
		return true
	}

	if state != c.State {
		c.start(state)
	}
	return true
}

// Shift ends the current clip: the buffered state takes over, otherwise the
// combatant returns to rest.
func (c *CombatantData) Shift() {
	next := config.DefaultState
	if c.HasBuffered() {
		next = c.Buffered
		c.Buffered = config.StateNone
	}
	c.start(next)
}

func (c *CombatantData) HasBuffered() bool {
	return c.Buffered != config.StateNone
}

func (c *CombatantData) Stunned() bool {
	return c.HitStun != nil
}

// Current returns the running move. A missing entry means the combatant was
// built from an incomplete catalog and panics.
func (c *CombatantData) Current() *Move {
	m, ok := c.Moves[c.State]
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrAnimationMissing, c.State))
	}
	return m
}

// Attack returns the attack of the current state, or nil.
func (c *CombatantData) Attack() *catalog.Attack {
	return c.Current().Attack
}

func (c *CombatantData) Phase() animations.Phase {
	return c.Current().Animation.Phase()
}

// SyncSprite copies the current runtime's sprite index into Sprite. An out of
// range cursor is an engine bug and panics.
func (c *CombatantData) SyncSprite() {
	idx, err := c.Current().Animation.SpriteIndex()
	if err != nil {
		panic(fmt.Errorf("%s %s: %w", c.Character.Name, c.State, err))
	}
	c.Sprite = idx
}

func (c *CombatantData) start(state config.StateID) {
	c.State = state
	c.Run++
	c.Current().Animation.Restart()
	c.SyncSprite()
}

var Combatant = donburi.NewComponentType[CombatantData]()
