package systems

import (
	"github.com/automoto/fightcore/components"
	"github.com/automoto/fightcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombatHitboxes opens and closes hitboxes from the current phase of
// every combatant, then scans them against hurtboxes and publishes hits.
// All hitboxes are synced before any scan so the result does not depend on
// iteration order.
func UpdateCombatHitboxes(ecs *ecs.ECS) {
	space := GetOrCreateSpace(ecs)
	sim := GetOrCreateSimulation(ecs)

	tags.Combatant.Each(ecs.World, func(e *donburi.Entry) {
		syncHitbox(space, e)
	})
	tags.Combatant.Each(ecs.World, func(e *donburi.Entry) {
		checkHitboxCollisions(ecs.World, sim, e)
	})
}

func syncHitbox(space *resolv.Space, e *donburi.Entry) {
	c := components.Combatant.Get(e)
	move := c.Current()
	if move.Attack == nil || !move.Animation.IsActive() {
		removeHitbox(space, c)
		return
	}

	pos := components.Position.Get(e)
	rect := components.Place(move.Attack.Hitbox, pos.Vec2, pos.Facing)
	if c.Hitbox != nil && c.Hitbox.Run == c.Run {
		if c.Hitbox.Open() {
			components.MoveTo(c.Hitbox.Object, rect)
			return
		}
		// Closed by a hit last tick: same activation, same victims.
		c.Hitbox.Object = newHitboxObject(space, e, rect)
		return
	}

	removeHitbox(space, c)
	c.Hitbox = components.NewHitbox(c.Run, move.Attack.Hitbox, newHitboxObject(space, e, rect))
}

func newHitboxObject(space *resolv.Space, e *donburi.Entry, rect components.Rect) *resolv.Object {
	obj := resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, tags.ResolvHitbox)
	obj.Data = e // Linked for O(1) lookup
	space.Add(obj)
	return obj
}

// closeHitbox takes the hitbox out of the space until the next sync but keeps
// its activation.
func closeHitbox(space *resolv.Space, c *components.CombatantData) {
	if !c.Hitbox.Open() {
		return
	}
	if space != nil {
		space.Remove(c.Hitbox.Object)
	}
	c.Hitbox.Object = nil
}

func removeHitbox(space *resolv.Space, c *components.CombatantData) {
	closeHitbox(space, c)
	c.Hitbox = nil
}

func checkHitboxCollisions(w donburi.World, sim *components.SimulationData, attacker *donburi.Entry) {
	c := components.Combatant.Get(attacker)
	hitbox := c.Hitbox
	if !hitbox.Open() {
		return
	}

	check := hitbox.Object.Check(0, 0, tags.ResolvHurtbox)
	if check == nil {
		return
	}
	hitRect := components.RectOf(hitbox.Object)
	for _, obj := range check.Objects {
		victim, ok := obj.Data.(*donburi.Entry)
		if !ok || !shouldHitTarget(attacker, victim, hitbox) {
			continue
		}
		if !hitRect.Overlaps(components.RectOf(obj)) {
			continue
		}

		hitbox.HitEntities[victim.Entity()] = true
		components.HitEventType.Publish(w, components.HitEvent{
			Tick:       sim.Tick,
			Attacker:   attacker.Entity(),
			Victim:     victim.Entity(),
			State:      c.State,
			Activation: hitbox.Activation,
		})
	}
}

func shouldHitTarget(attacker, victim *donburi.Entry, hitbox *components.HitboxData) bool {
	if attacker.Entity() == victim.Entity() || !victim.Valid() {
		return false
	}
	return !hitbox.HitEntities[victim.Entity()]
}
