package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/arcadebit/streetduel/components"
)

// UpdateFighters advances both fighters' animations by the tick delta
// and mirrors their hurtboxes into the collision space. Animations keep
// playing in every match state; what is gated per state is input, AI and
// hit resolution, not playback.
func UpdateFighters(e *ecs.ECS) {
	t := tick(e)
	fighterEach(e, func(f *components.FighterData) {
		f.Update(t.DeltaMs)
		f.SyncObject()
	})
}
