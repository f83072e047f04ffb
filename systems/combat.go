package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/fightcore/assets/animations"
	"github.com/automoto/fightcore/components"
	"github.com/automoto/fightcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

var ErrHitWithoutAttack = errors.New("hit event from a state without an attack")

// RegisterCombatHandlers subscribes the damage resolver. It must be the first
// hit subscriber so later consumers observe post-damage health.
func RegisterCombatHandlers(w donburi.World) {
	components.HitEventType.Subscribe(w, ApplyHit)
}

// UpdateCombat expires finished hit-stuns, then drains this tick's hit
// events and any knockouts they caused.
func UpdateCombat(ecs *ecs.ECS) {
	sim := GetOrCreateSimulation(ecs)
	log := logger(sim)

	tags.Combatant.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Combatant.Get(e)
		if c.HitStun == nil {
			return
		}
		c.HitStun.Timer.Tick(sim.Step)
		if c.HitStun.Timer.Finished() {
			c.HitStun = nil
			log.Debug("hit stun expired", zap.Uint64("tick", sim.Tick), entityField(e.Entity()))
		}
	})

	components.HitEventType.ProcessEvents(ecs.World)
	components.KnockoutEventType.ProcessEvents(ecs.World)
}

// ApplyHit resolves one hit: saturating damage, the victim's own hitbox is
// closed for the rest of this tick, and hit-stun is installed.
func ApplyHit(w donburi.World, ev components.HitEvent) {
	attacker := w.Entry(ev.Attacker)
	victim := w.Entry(ev.Victim)
	if !victim.Valid() {
		return
	}

	attack := components.Combatant.Get(attacker).Attack()
	if attack == nil {
		panic(fmt.Errorf("%w: attacker %d", ErrHitWithoutAttack, ev.Attacker))
	}

	sim := simulationOf(w)
	hp := components.Health.Get(victim)
	wasStanding := !hp.KnockedOut()
	hp.Damage(attack.Damage)

	vc := components.Combatant.Get(victim)
	closeHitbox(spaceOf(w), vc)
	if attack.HitStun > 0 {
		vc.HitStun = components.NewHitStun(animations.FrameDuration(attack.HitStun, sim.TickRate))
	}

	logger(sim).Debug("hit",
		zap.Uint64("tick", ev.Tick),
		zap.Uint64("attacker", uint64(ev.Attacker)),
		zap.Uint64("victim", uint64(ev.Victim)),
		zap.Stringer("attack", ev.State),
		zap.Uint32("damage", attack.Damage),
		zap.Int("health", hp.Current),
		zap.String("activation", ev.Activation.String()),
	)

	if wasStanding && hp.KnockedOut() {
		components.KnockoutEventType.Publish(w, components.KnockoutEvent{
			Tick:     ev.Tick,
			Attacker: ev.Attacker,
			Victim:   ev.Victim,
		})
	}
}
