package match

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/automoto/fightcore/assets"
	"github.com/automoto/fightcore/assets/animations"
	"github.com/automoto/fightcore/catalog"
	"github.com/automoto/fightcore/components"
	"github.com/automoto/fightcore/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// At 60 Hz a rate-6 clip holds each sprite for six ticks.
const ticksPerFrame = 6

func newMatch(t *testing.T) *Match {
	m, err := New(config.Default(), nil)
	require.NoError(t, err)
	return m
}

func spawn(t *testing.T, m *Match, name string, x, facing float64) donburi.Entity {
	id, err := m.Spawn(assets.MustCharacter(name), x, 500, facing)
	require.NoError(t, err)
	return id
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Combat.TickRate = 0
	_, err := New(cfg, nil)
	assert.Error(t, err)
}

func TestSpawn_IncompleteCatalog(t *testing.T) {
	m := newMatch(t)
	ch := &catalog.Character{
		Name: "half",
		Moves: map[config.StateID]catalog.Move{
			config.Idle: {Clip: &catalog.AnimationClip{Frames: []int{0}, Rate: 6}},
		},
	}
	_, err := m.Spawn(ch, 0, 0, 1)
	assert.ErrorIs(t, err, catalog.ErrCatalogIncomplete)
	assert.Empty(t, m.Views())
}

func TestLightAttack_EndToEnd(t *testing.T) {
	m := newMatch(t)
	id := spawn(t, m, "brawler", 100, 1)

	require.True(t, m.Request(id, config.LightAttack))
	v, err := m.View(id)
	require.NoError(t, err)
	assert.Equal(t, config.LightAttack, v.State)
	assert.Equal(t, 0, v.Frame)
	assert.Equal(t, 18, v.Sprite)

	m.Step(ticksPerFrame - 1)
	v, _ = m.View(id)
	assert.Equal(t, 0, v.Frame, "frame 0 is held for six ticks")

	m.Step(1)
	v, _ = m.View(id)
	assert.Equal(t, 1, v.Frame)
	assert.Equal(t, animations.PhaseActive, v.Phase)
	assert.Equal(t, 19, v.Sprite)

	m.Step(ticksPerFrame)
	assert.Equal(t, 2, mustView(t, m, id).Frame)
	m.Step(ticksPerFrame)
	v = mustView(t, m, id)
	assert.Equal(t, 3, v.Frame)
	assert.Equal(t, config.LightAttack, v.State)

	m.Step(ticksPerFrame)
	v = mustView(t, m, id)
	assert.Equal(t, config.Idle, v.State)
	assert.Equal(t, 0, v.Frame)
	assert.Equal(t, 0, v.Sprite)
	assert.Equal(t, uint64(4*ticksPerFrame), m.Ticks())
}

func TestHitboxExistsOnlyWhileActive(t *testing.T) {
	m := newMatch(t)
	id := spawn(t, m, "brawler", 100, 1)

	// heavy_attack: 7 frames, window {2, 2, 2}
	require.True(t, m.Request(id, config.HeavyAttack))
	for tick := 1; tick < 7*ticksPerFrame; tick++ {
		m.Tick()
		v := mustView(t, m, id)
		frame := tick / ticksPerFrame
		require.Equal(t, frame, v.Frame)
		active := frame >= 2 && frame <= 4
		assert.Equal(t, active, v.Hitbox != nil, "frame %d", frame)
		assert.Equal(t, active, v.Phase == animations.PhaseActive, "frame %d", frame)
	}
	m.Tick()
	assert.Equal(t, config.Idle, m.State(id))
	assert.False(t, m.HitboxActive(id))
}

func TestHit_OncePerActivationAndStun(t *testing.T) {
	m := newMatch(t)
	attacker := spawn(t, m, "brawler", 100, 1)
	victim := spawn(t, m, "brawler", 140, -1)

	var hits []components.HitEvent
	m.OnHit(func(ev components.HitEvent) { hits = append(hits, ev) })

	require.True(t, m.Request(attacker, config.LightAttack))
	m.Step(ticksPerFrame)
	require.Len(t, hits, 1)
	assert.Equal(t, attacker, hits[0].Attacker)
	assert.Equal(t, victim, hits[0].Victim)
	assert.Equal(t, config.LightAttack, hits[0].State)
	assert.Equal(t, 92, m.Health(victim))
	assert.True(t, m.Stunned(victim))

	// Two active frames overlap the victim for twelve ticks; still one hit.
	m.Step(2*ticksPerFrame - 1)
	assert.Len(t, hits, 1)
	assert.Equal(t, 92, m.Health(victim))

	// hit_stun 12 frames: installed on tick 6, released on tick 18.
	assert.True(t, m.Stunned(victim))
	assert.False(t, m.Request(victim, config.Forward))
	assert.Equal(t, config.Idle, m.State(victim))

	m.Tick()
	assert.False(t, m.Stunned(victim))
	assert.True(t, m.Request(victim, config.Forward))
}

func TestBufferedAttackLandsWithNewActivation(t *testing.T) {
	m := newMatch(t)
	attacker := spawn(t, m, "brawler", 100, 1)
	victim := spawn(t, m, "brawler", 140, -1)

	var hits []components.HitEvent
	m.OnHit(func(ev components.HitEvent) { hits = append(hits, ev) })

	require.True(t, m.Request(attacker, config.LightAttack))
	m.Step(3 * ticksPerFrame)
	require.Equal(t, animations.PhaseRecovery, mustView(t, m, attacker).Phase)

	assert.False(t, m.Request(attacker, config.Forward))
	assert.True(t, m.Request(attacker, config.LightAttack))
	assert.False(t, m.Request(attacker, config.HeavyAttack))
	assert.Equal(t, config.LightAttack, mustView(t, m, attacker).Buffered)

	m.Step(ticksPerFrame)
	v := mustView(t, m, attacker)
	assert.Equal(t, config.LightAttack, v.State)
	assert.Equal(t, config.StateNone, v.Buffered)
	assert.Equal(t, 0, v.Frame)

	m.Step(ticksPerFrame)
	require.Len(t, hits, 2)
	assert.NotEqual(t, hits[0].Activation, hits[1].Activation)
	assert.Equal(t, 84, m.Health(victim))
}

func TestHit_VictimKeepsSwinging(t *testing.T) {
	m := newMatch(t)
	a := spawn(t, m, "brawler", 100, 1)
	b := spawn(t, m, "brawler", 140, -1)

	var hits []components.HitEvent
	m.OnHit(func(ev components.HitEvent) { hits = append(hits, ev) })

	// a's light lands on tick 6, while b's heavy is still in startup.
	require.True(t, m.Request(b, config.HeavyAttack))
	require.True(t, m.Request(a, config.LightAttack))
	m.Step(ticksPerFrame)
	require.Len(t, hits, 1)
	assert.Equal(t, a, hits[0].Attacker)
	assert.True(t, m.Stunned(b))

	// Stun does not cancel the swing: b's heavy goes active on tick 12 and
	// lands on a.
	m.Step(ticksPerFrame)
	v := mustView(t, m, b)
	assert.Equal(t, config.HeavyAttack, v.State)
	assert.Equal(t, animations.PhaseActive, v.Phase)
	assert.NotNil(t, v.Hitbox)
	require.Len(t, hits, 2)
	assert.Equal(t, b, hits[1].Attacker)
	assert.Equal(t, a, hits[1].Victim)
	assert.Equal(t, 80, m.Health(a))

	// The rest of b's active frames overlap a without hitting again.
	m.Step(3 * ticksPerFrame)
	assert.Len(t, hits, 2)
	assert.Equal(t, 80, m.Health(a))
	assert.Equal(t, 92, m.Health(b))
}

func TestHit_SimultaneousTrade(t *testing.T) {
	for _, bFirst := range []bool{false, true} {
		t.Run(fmt.Sprintf("b spawned first=%v", bFirst), func(t *testing.T) {
			m := newMatch(t)
			var a, b donburi.Entity
			if bFirst {
				b = spawn(t, m, "brawler", 140, -1)
				a = spawn(t, m, "brawler", 100, 1)
			} else {
				a = spawn(t, m, "brawler", 100, 1)
				b = spawn(t, m, "brawler", 140, -1)
			}

			var hits []components.HitEvent
			m.OnHit(func(ev components.HitEvent) { hits = append(hits, ev) })

			require.True(t, m.Request(a, config.LightAttack))
			require.True(t, m.Request(b, config.LightAttack))
			m.Step(ticksPerFrame)

			require.Len(t, hits, 2)
			attackers := map[donburi.Entity]donburi.Entity{}
			for _, ev := range hits {
				attackers[ev.Attacker] = ev.Victim
			}
			assert.Equal(t, map[donburi.Entity]donburi.Entity{a: b, b: a}, attackers)
			assert.Equal(t, 92, m.Health(a))
			assert.Equal(t, 92, m.Health(b))
			assert.True(t, m.Stunned(a))
			assert.True(t, m.Stunned(b))

			// Both hitboxes reopen on the second active frame without a rehit.
			m.Step(1)
			assert.True(t, m.HitboxActive(a))
			assert.True(t, m.HitboxActive(b))
			m.Step(2 * ticksPerFrame)
			assert.Len(t, hits, 2)
			assert.Equal(t, 92, m.Health(a))
			assert.Equal(t, 92, m.Health(b))
		})
	}
}

func TestCallbacksRunAfterTheTick(t *testing.T) {
	m := newMatch(t)
	attacker := spawn(t, m, "brawler", 100, 1)
	victim := spawn(t, m, "brawler", 140, -1)

	var seen []int
	m.OnHit(func(ev components.HitEvent) {
		seen = append(seen, m.Health(ev.Victim))
	})
	m.OnHit(func(ev components.HitEvent) {
		seen = append(seen, int(m.Ticks()))
	})

	require.True(t, m.Request(attacker, config.LightAttack))
	m.Step(ticksPerFrame)
	assert.Equal(t, []int{92, ticksPerFrame}, seen)
	assert.Equal(t, 92, m.Health(victim))
}

func TestKnockout(t *testing.T) {
	m := newMatch(t)
	attacker := spawn(t, m, "brawler", 100, 1)

	fragile := *assets.MustCharacter("brawler")
	fragile.Health = 5
	victim, err := m.Spawn(&fragile, 140, 500, -1)
	require.NoError(t, err)

	var kos []components.KnockoutEvent
	m.OnKnockout(func(ev components.KnockoutEvent) { kos = append(kos, ev) })

	require.True(t, m.Request(attacker, config.LightAttack))
	m.Step(ticksPerFrame)

	assert.Equal(t, 0, m.Health(victim))
	require.Len(t, kos, 1)
	assert.Equal(t, victim, kos[0].Victim)
	assert.Equal(t, attacker, kos[0].Attacker)
	assert.Equal(t, []donburi.Entity{attacker}, m.Standing())
}

func TestFacingMirrorsHitbox(t *testing.T) {
	m := newMatch(t)
	attacker := spawn(t, m, "brawler", 200, -1)
	behind := spawn(t, m, "brawler", 260, 1)

	var hits []components.HitEvent
	m.OnHit(func(ev components.HitEvent) { hits = append(hits, ev) })

	require.True(t, m.Request(attacker, config.LightAttack))
	m.Step(ticksPerFrame)
	v := mustView(t, m, attacker)
	require.NotNil(t, v.Hitbox)
	assert.Equal(t, components.Rect{X: 144, Y: 516, W: 24, H: 12}, *v.Hitbox)
	assert.Empty(t, hits)
	assert.Equal(t, 100, m.Health(behind))
}

func TestQueue(t *testing.T) {
	m := newMatch(t)
	id := spawn(t, m, "striker", 100, 1)

	m.Queue(id, config.Backward)
	m.Queue(id, config.Forward)
	_, resolved := m.Accepted(id)
	assert.False(t, resolved)

	m.Tick()
	accepted, resolved := m.Accepted(id)
	assert.True(t, resolved)
	assert.True(t, accepted)
	assert.Equal(t, config.Forward, m.State(id))

	m.Queue(id, config.Jump)
	m.Tick()
	accepted, resolved = m.Accepted(id)
	assert.True(t, resolved)
	assert.False(t, accepted, "striker has no jump")
	assert.Equal(t, config.Forward, m.State(id))
}

func TestUnknownCombatant(t *testing.T) {
	m := newMatch(t)
	id := spawn(t, m, "striker", 100, 1)
	require.NoError(t, m.Remove(id))

	assert.False(t, m.Request(id, config.Forward))
	_, err := m.View(id)
	assert.ErrorIs(t, err, ErrUnknownCombatant)
	assert.ErrorIs(t, m.Remove(id), ErrUnknownCombatant)
	assert.ErrorIs(t, m.SetPosition(id, 0, 0), ErrUnknownCombatant)
	assert.Equal(t, config.StateNone, m.State(id))

	m.Queue(id, config.Forward)
	assert.NotPanics(t, m.Tick)
}

func TestRun_StopsOnCancel(t *testing.T) {
	m := newMatch(t)
	id := spawn(t, m, "brawler", 100, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for ctx.Err() == nil {
			m.Queue(id, config.Forward)
			time.Sleep(5 * time.Millisecond)
		}
	}()

	require.NoError(t, m.Run(ctx))
	wg.Wait()
	assert.Positive(t, m.Ticks())

	m.Queue(id, config.Backward)
	m.Tick()
	accepted, resolved := m.Accepted(id)
	assert.True(t, resolved)
	assert.True(t, accepted)
}

func mustView(t *testing.T, m *Match, id donburi.Entity) View {
	t.Helper()
	v, err := m.View(id)
	require.NoError(t, err)
	return v
}
