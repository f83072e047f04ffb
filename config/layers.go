package config

import "github.com/yohamta/donburi/ecs"

// LayerDefault holds every simulation entity. The match has no draw pass, so
// no other layers are defined.
const LayerDefault ecs.LayerID = 0
