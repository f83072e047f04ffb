package components

import (
	"github.com/automoto/fightcore/config"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// HitEvent is published once per (activation, victim) overlap.
type HitEvent struct {
	Tick       uint64
	Attacker   donburi.Entity
	Victim     donburi.Entity
	State      config.StateID // attacker's state when the hit landed
	Activation uuid.UUID
}

// KnockoutEvent is published when a victim's health first reaches zero.
type KnockoutEvent struct {
	Tick     uint64
	Attacker donburi.Entity
	Victim   donburi.Entity
}

var (
	HitEventType      = events.NewEventType[HitEvent]()
	KnockoutEventType = events.NewEventType[KnockoutEvent]()
)
