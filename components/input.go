package components

import (
	"github.com/yohamta/donburi"

	"github.com/arcadebit/streetduel/config"
)

// IntentData is the abstract intent surface the simulation consumes:
// per-tick active/inactive flags plus the previous tick for edges. Tests
// drive the fight by writing these directly.
type IntentData struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool
}

var Intent = donburi.NewComponentType[IntentData]()

// Held reports whether the action is active this tick.
func (i *IntentData) Held(a config.ActionID) bool {
	return i.Current[a]
}

// JustPressed reports a rising edge.
func (i *IntentData) JustPressed(a config.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}
