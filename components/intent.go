package components

import (
	"github.com/automoto/fightcore/config"
	"github.com/yohamta/donburi"
)

// IntentData carries one queued request into the tick and its outcome out.
type IntentData struct {
	Pending  config.StateID // StateNone when nothing is queued
	Accepted bool
	Resolved bool // Accepted holds the result of the last applied request
}

var Intent = donburi.NewComponentType[IntentData]()
