package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/arcadebit/streetduel/components"
	cfg "github.com/arcadebit/streetduel/config"
)

// UpdateInput polls the keyboard into the player's intent surface. The
// rest of the simulation only ever reads intents, so feeding synthetic
// sequences in tests bypasses this system entirely.
func UpdateInput(e *ecs.ECS) {
	entry, ok := components.Intent.First(e.World)
	if !ok {
		return
	}
	intent := components.Intent.Get(entry)

	intent.Previous = intent.Current
	intent.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				intent.Current[actionID] = true
				break
			}
		}
	}
}
