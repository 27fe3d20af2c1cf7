package components

import "github.com/yohamta/donburi"

// TickData is the simulation clock singleton. DeltaMs is the host tick
// delta after clamping; NowMs accumulates it into the synthetic match
// clock every timestamp in the simulation is compared against.
type TickData struct {
	DeltaMs float64
	NowMs   float64
}

var Tick = donburi.NewComponentType[TickData]()

// Advance applies one tick of deltaMs. Used directly by tests in place
// of the wall-clock system.
func (t *TickData) Advance(deltaMs float64) {
	t.DeltaMs = deltaMs
	t.NowMs += deltaMs
}
