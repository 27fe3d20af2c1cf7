package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID enumerates the abstract intents the simulation consumes. The
// fight core never reads the keyboard directly; it only sees these.
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionAttack
	ActionTaunt
	ActionStart
	ActionRestart

	ActionCount
)

// Binding maps an action to the keys that trigger it.
type Binding struct {
	Keys []ebiten.Key
}

// InputConfig contains the keyboard bindings.
type InputConfig struct {
	Bindings map[ActionID]Binding
}

var Input = InputConfig{
	Bindings: map[ActionID]Binding{
		ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
		ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
		ActionAttack:    {Keys: []ebiten.Key{ebiten.KeyJ, ebiten.KeySpace}},
		ActionTaunt:     {Keys: []ebiten.Key{ebiten.KeyK, ebiten.KeyT}},
		ActionStart:     {Keys: []ebiten.Key{ebiten.KeyEnter}},
		ActionRestart:   {Keys: []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter}},
	},
}
