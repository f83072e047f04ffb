// Package match runs a set of combatants through the fixed per-tick combat
// pipeline: snapshot positions, apply requests, advance animations, scan
// hitboxes, resolve damage.
package match

import (
	"errors"
	"slices"
	"sort"
	"sync"

	"github.com/automoto/fightcore/assets/animations"
	"github.com/automoto/fightcore/catalog"
	"github.com/automoto/fightcore/components"
	"github.com/automoto/fightcore/config"
	"github.com/automoto/fightcore/systems"
	"github.com/automoto/fightcore/systems/factory"
	"github.com/automoto/fightcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

var ErrUnknownCombatant = errors.New("unknown combatant")

// View is a read-only snapshot of one combatant for renderers and UIs.
type View struct {
	ID        donburi.Entity
	Character string
	State     config.StateID
	Buffered  config.StateID
	Frame     int
	Phase     animations.Phase
	Sprite    int
	Health    int
	MaxHealth int
	Stunned   bool
	Position  math.Vec2
	Facing    float64
	Hurtbox   components.Rect
	Hitbox    *components.Rect
}

// Match owns one world. All methods are safe for concurrent use; callbacks
// registered with OnHit and OnKnockout run after the tick that produced them,
// outside the match lock.
type Match struct {
	ecs    *ecs.ECS
	cfg    *config.Config
	logger *zap.Logger

	mu        sync.Mutex
	onHit     []func(components.HitEvent)
	onKO      []func(components.KnockoutEvent)
	hits      []components.HitEvent
	knockouts []components.KnockoutEvent

	qmu    sync.Mutex
	queued map[donburi.Entity]config.StateID
}

// New builds an empty match. A nil cfg uses config.C and a nil logger
// discards output.
func New(cfg *config.Config, logger *zap.Logger) (*Match, error) {
	if cfg == nil {
		cfg = config.C
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	world := donburi.NewWorld()
	e := ecs.NewECS(world)

	e.AddSystem(systems.UpdateSnapshots)
	e.AddSystem(systems.UpdateIntents)
	e.AddSystem(systems.UpdateAnimations)
	e.AddSystem(systems.UpdateCombatHitboxes)
	e.AddSystem(systems.UpdateCombat)

	factory.CreateSimulation(e, cfg.Combat, logger)
	factory.CreateSpace(e, cfg.Arena)

	m := &Match{
		ecs:    e,
		cfg:    cfg,
		logger: logger,
		queued: make(map[donburi.Entity]config.StateID),
	}

	systems.RegisterCombatHandlers(world)
	components.HitEventType.Subscribe(world, m.collectHit)
	components.KnockoutEventType.Subscribe(world, m.collectKnockout)

	return m, nil
}

// Spawn adds a combatant at rest. facing is +1 (right) or -1 (left).
func (m *Match) Spawn(ch *catalog.Character, x, y, facing float64) (donburi.Entity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, err := factory.CreateCombatant(m.ecs, ch, x, y, facing)
	if err != nil {
		return 0, err
	}
	m.logger.Info("combatant spawned",
		zap.String("character", ch.Name),
		zap.Uint64("entity", uint64(entry.Entity())),
		zap.Float64("x", x),
		zap.Float64("y", y),
	)
	return entry.Entity(), nil
}

// Remove tears a combatant down together with its collision objects.
func (m *Match) Remove(id donburi.Entity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entry(id)
	if !ok {
		return ErrUnknownCombatant
	}
	factory.DestroyCombatant(m.ecs, entry)

	m.qmu.Lock()
	delete(m.queued, id)
	m.qmu.Unlock()
	return nil
}

// Request applies a move request immediately. Call it between ticks; it
// returns false for rejected requests and unknown combatants.
func (m *Match) Request(id donburi.Entity, state config.StateID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entry(id)
	if !ok {
		return false
	}
	return components.Combatant.Get(entry).Request(state)
}

// Queue records a request to be applied at the start of the next tick. Only
// the latest request per combatant is kept.
func (m *Match) Queue(id donburi.Entity, state config.StateID) {
	m.qmu.Lock()
	defer m.qmu.Unlock()
	m.queued[id] = state
}

// Accepted reports the outcome of the last queued request that was applied.
// resolved is false until one has been.
func (m *Match) Accepted(id donburi.Entity) (accepted, resolved bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entry(id)
	if !ok {
		return false, false
	}
	intent := components.Intent.Get(entry)
	return intent.Accepted, intent.Resolved
}

// Tick advances the match by one fixed step.
func (m *Match) Tick() {
	m.mu.Lock()
	m.drainQueue()
	m.ecs.Update()

	sim := systems.GetOrCreateSimulation(m.ecs)
	sim.Tick++

	hits, kos := m.hits, m.knockouts
	m.hits, m.knockouts = nil, nil
	onHit := slices.Clone(m.onHit)
	onKO := slices.Clone(m.onKO)
	m.mu.Unlock()

	for _, ev := range hits {
		for _, fn := range onHit {
			fn(ev)
		}
	}
	for _, ev := range kos {
		for _, fn := range onKO {
			fn(ev)
		}
	}
}

// Step runs n ticks.
func (m *Match) Step(n int) {
	for i := 0; i < n; i++ {
		m.Tick()
	}
}

// Ticks is the number of completed ticks.
func (m *Match) Ticks() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return systems.GetOrCreateSimulation(m.ecs).Tick
}

func (m *Match) OnHit(fn func(components.HitEvent)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onHit = append(m.onHit, fn)
}

func (m *Match) OnKnockout(fn func(components.KnockoutEvent)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onKO = append(m.onKO, fn)
}

// SetPosition moves a combatant's origin. The hurtbox follows at the start of
// the next tick.
func (m *Match) SetPosition(id donburi.Entity, x, y float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entry(id)
	if !ok {
		return ErrUnknownCombatant
	}
	pos := components.Position.Get(entry)
	pos.X, pos.Y = x, y
	return nil
}

// SetFacing turns a combatant; any value below zero faces left.
func (m *Match) SetFacing(id donburi.Entity, facing float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entry(id)
	if !ok {
		return ErrUnknownCombatant
	}
	pos := components.Position.Get(entry)
	pos.Facing = 1
	if facing < 0 {
		pos.Facing = -1
	}
	return nil
}

func (m *Match) Position(id donburi.Entity) math.Vec2 {
	v, _ := m.View(id)
	return v.Position
}

// SpriteIndex is the sprite the renderer should show this tick.
func (m *Match) SpriteIndex(id donburi.Entity) int {
	v, _ := m.View(id)
	return v.Sprite
}

func (m *Match) State(id donburi.Entity) config.StateID {
	v, err := m.View(id)
	if err != nil {
		return config.StateNone
	}
	return v.State
}

func (m *Match) Health(id donburi.Entity) int {
	v, _ := m.View(id)
	return v.Health
}

func (m *Match) Stunned(id donburi.Entity) bool {
	v, _ := m.View(id)
	return v.Stunned
}

func (m *Match) HitboxActive(id donburi.Entity) bool {
	v, _ := m.View(id)
	return v.Hitbox != nil
}

// View snapshots one combatant.
func (m *Match) View(id donburi.Entity) (View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entry(id)
	if !ok {
		return View{}, ErrUnknownCombatant
	}
	return viewOf(entry), nil
}

// Views snapshots every combatant, ordered by id.
func (m *Match) Views() []View {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []View
	tags.Combatant.Each(m.ecs.World, func(e *donburi.Entry) {
		out = append(out, viewOf(e))
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Standing lists the combatants whose health is above zero.
func (m *Match) Standing() []donburi.Entity {
	var out []donburi.Entity
	for _, v := range m.Views() {
		if v.Health > 0 {
			out = append(out, v.ID)
		}
	}
	return out
}

func viewOf(e *donburi.Entry) View {
	c := components.Combatant.Get(e)
	pos := components.Position.Get(e)
	hp := components.Health.Get(e)
	anim := c.Current().Animation

	v := View{
		ID:        e.Entity(),
		Character: c.Character.Name,
		State:     c.State,
		Buffered:  c.Buffered,
		Frame:     anim.Frame(),
		Phase:     anim.Phase(),
		Sprite:    c.Sprite,
		Health:    hp.Current,
		MaxHealth: hp.Max,
		Stunned:   c.Stunned(),
		Position:  pos.Vec2,
		Facing:    pos.Facing,
		Hurtbox:   components.Place(c.Hurtbox, pos.Vec2, pos.Facing),
	}
	if c.Hitbox.Open() {
		r := components.RectOf(c.Hitbox.Object)
		v.Hitbox = &r
	}
	return v
}

func (m *Match) entry(id donburi.Entity) (*donburi.Entry, bool) {
	if !m.ecs.World.Valid(id) {
		return nil, false
	}
	entry := m.ecs.World.Entry(id)
	if !entry.HasComponent(components.Combatant) {
		return nil, false
	}
	return entry, true
}

func (m *Match) drainQueue() {
	m.qmu.Lock()
	defer m.qmu.Unlock()

	for id, state := range m.queued {
		if entry, ok := m.entry(id); ok {
			components.Intent.Get(entry).Pending = state
		}
		delete(m.queued, id)
	}
}

func (m *Match) collectHit(_ donburi.World, ev components.HitEvent) {
	m.hits = append(m.hits, ev)
}

func (m *Match) collectKnockout(_ donburi.World, ev components.KnockoutEvent) {
	m.knockouts = append(m.knockouts, ev)
}
